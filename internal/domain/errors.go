package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the sigcrop domain.
// They can be checked with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("sigcrop: invalid configuration")

	// ErrShape is returned for empty or ragged grids and non-numeric readings.
	ErrShape = errors.New("sigcrop: invalid data shape")

	// ErrNoTrigger is returned when no sample reaches the trigger threshold.
	ErrNoTrigger = errors.New("sigcrop: no trigger found")

	// ErrDecode is returned when an input file cannot be parsed.
	ErrDecode = errors.New("sigcrop: decode failed")

	// ErrWrite is returned when an output artifact cannot be persisted.
	ErrWrite = errors.New("sigcrop: write failed")
)

// ShapeError describes a grid that violates the recording invariants.
type ShapeError struct {
	// Row is the offending row, or -1 when the grid itself is empty
	Row int

	// Col is the offending column for a bad reading
	Col int

	// Want and Got are the expected and actual row widths for ragged rows
	Want int
	Got  int

	Reason string
}

func (e *ShapeError) Error() string {
	switch {
	case e.Row < 0:
		return "invalid data shape: " + e.Reason
	case e.Want != e.Got:
		return fmt.Sprintf("invalid data shape: %s at row %d: want %d readings, got %d", e.Reason, e.Row, e.Want, e.Got)
	default:
		return fmt.Sprintf("invalid data shape: %s at row %d col %d", e.Reason, e.Row, e.Col)
	}
}

// Is reports whether target is ErrShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// NoTriggerError is returned when the trigger set is empty.
type NoTriggerError struct {
	Threshold float64
	Peak      float64
}

func (e *NoTriggerError) Error() string {
	return fmt.Sprintf("no trigger found: threshold %g, peak gradient %g", e.Threshold, e.Peak)
}

// Is reports whether target is ErrNoTrigger.
func (e *NoTriggerError) Is(target error) bool {
	return target == ErrNoTrigger
}

// Stage names the step of per-file processing that failed.
type Stage string

const (
	StageRead   Stage = "read"
	StageDecode Stage = "decode"
	StageCrop   Stage = "crop"
	StageEncode Stage = "encode"
	StageWrite  Stage = "write"
	StageRender Stage = "render"
)

// StageError attaches the file and processing stage to an underlying error.
type StageError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
