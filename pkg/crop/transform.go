package crop

import "github.com/bft-labs/sigcrop/internal/domain"

// Apply returns a copy of rec holding only the samples inside w.
// Out-of-range bounds are clamped to [0, SampleCount]; an inverted window
// yields an empty grid. Rows are shared with rec, not copied.
func Apply(rec domain.Recording, w domain.Window) domain.Recording {
	w = w.Clamp(rec.SampleCount())
	return rec.WithValues(rec.Values[w.Left:w.Right:w.Right])
}
