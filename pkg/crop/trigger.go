package crop

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// Resolve finds the trigger and guard indices for a gradient series.
//
// samples is the recording length used to size the guard band and channels
// is the channel count. The right-hand bounds are raised to channels when
// they fall below it; they are not compared against samples, so a right
// guard past the end is left for the slice to clamp.
//
// It returns the bounds and the threshold that was applied.
func Resolve(gradient []float64, p Params, samples, channels int) (domain.Bounds, float64, error) {
	if len(gradient) == 0 {
		return domain.Bounds{}, 0, &domain.ShapeError{Row: -1, Reason: "empty gradient"}
	}

	peak := floats.Max(gradient)
	threshold := peak * p.TriggerPercentage

	// A flat signal has no activity to trigger on.
	if peak <= 0 && p.TriggerPercentage > 0 {
		return domain.Bounds{}, threshold, &domain.NoTriggerError{Threshold: threshold, Peak: peak}
	}

	left, right := -1, -1
	for i, g := range gradient {
		if g >= threshold {
			if left < 0 {
				left = i
			}
			right = i
		}
	}
	if left < 0 {
		return domain.Bounds{}, threshold, &domain.NoTriggerError{Threshold: threshold, Peak: peak}
	}

	guard := GuardSize(samples, p.GuardsPercentage)

	b := domain.Bounds{
		LeftTrigger:  max(left, 0),
		RightTrigger: right,
		LeftGuard:    max(left-guard, 0),
		RightGuard:   right + guard,
	}
	if b.RightTrigger < channels {
		b.RightTrigger = channels
	}
	if b.RightGuard < channels {
		b.RightGuard = channels
	}
	return b, threshold, nil
}

// GuardSize returns round(samples * percentage), rounding halves to even.
func GuardSize(samples int, percentage float64) int {
	return int(math.RoundToEven(float64(samples) * percentage))
}
