package crop

import (
	"fmt"

	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/pkg/sigmath"
)

// Result is everything Crop derived from one recording.
type Result struct {
	// Source is the recording as given
	Source domain.Recording

	// Recording is the cropped copy
	Recording domain.Recording

	// Magnitude and Gradient have one entry per source sample
	Magnitude []float64
	Gradient  []float64

	// Threshold is the gradient level a sample had to reach
	Threshold float64

	Bounds domain.Bounds

	// Window is the clamped slice actually applied to Source
	Window domain.Window
}

// Crop trims rec to its active window.
func Crop(rec domain.Recording, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := rec.Validate(); err != nil {
		return Result{}, err
	}

	mag, err := sigmath.Magnitude(rec.Values)
	if err != nil {
		return Result{}, err
	}
	grad := sigmath.AbsGradient(mag)

	bounds, threshold, err := Resolve(grad, p, rec.SampleCount(), rec.ChannelCount())
	if err != nil {
		return Result{}, fmt.Errorf("resolve window: %w", err)
	}

	window := bounds.Window().Clamp(rec.SampleCount())
	return Result{
		Source:    rec,
		Recording: Apply(rec, window),
		Magnitude: mag,
		Gradient:  grad,
		Threshold: threshold,
		Bounds:    bounds,
		Window:    window,
	}, nil
}
