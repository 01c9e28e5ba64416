package app

import (
	"errors"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// Outcome is the result of processing one input file.
// Exactly one of Err, Skipped, or a successful crop holds.
type Outcome struct {
	// Rel is the input path relative to the input root, slash-separated
	Rel string

	Input  string
	Output string
	Image  string

	// Samples and Kept are the sample counts before and after the crop
	Samples int
	Kept    int

	Bounds domain.Bounds
	Window domain.Window

	// Skipped is set when an incremental run found the input unchanged
	Skipped bool

	// Err is a *domain.StageError when processing failed
	Err error
}

// OK reports whether the file was cropped and written.
func (o Outcome) OK() bool {
	return o.Err == nil && !o.Skipped
}

// Stage returns the failing stage, or "" on success.
func (o Outcome) Stage() domain.Stage {
	var se *domain.StageError
	if errors.As(o.Err, &se) {
		return se.Stage
	}
	return ""
}

// Summary aggregates the outcomes of a run.
type Summary struct {
	Found   int
	Cropped int
	Failed  int
	Skipped int

	Outcomes []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch {
	case o.Err != nil:
		s.Failed++
	case o.Skipped:
		s.Skipped++
	default:
		s.Cropped++
	}
}
