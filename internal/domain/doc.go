// Package domain contains the core entities and value objects for sigcrop.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, codecs, logging, rendering) and
// contains only the data model and its invariants.
//
// # Entities
//
//   - [Recording]: sensors, sampling interval and the row-major sample grid
//   - [Window]: half-open slice bounds on the sample axis
//   - [Bounds]: trigger and guard indices produced by the resolver
//
// # Errors
//
// Sentinels ([ErrShape], [ErrNoTrigger], ...) are matched with errors.Is.
// Typed errors ([ShapeError], [NoTriggerError], [StageError]) carry the
// detail needed to diagnose a file without re-running it.
package domain
