// Package ports defines the interfaces that connect the batch driver to
// infrastructure adapters.
//
// # Port Interfaces
//
//   - [CodecResolver]: picks the record codec for an input path
//   - [Renderer]: draws the diagnostic figure
//   - [OutputStore]: persists output artifacts
//   - [StateRepository]: loads and saves the incremental-run manifest
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters, pkg/record, pkg/diagplot, pkg/state) provide
// the concrete implementations. Tests substitute in-memory fakes.
package ports
