package crop

import (
	"fmt"
	"math"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// Default parameter values.
const (
	DefaultTriggerPercentage = 0.1
	DefaultGuardsPercentage  = 0.05
)

// Params controls trigger detection and guard expansion.
type Params struct {
	// TriggerPercentage is the fraction of the peak gradient a sample must
	// reach to count as a trigger, in [0, 1].
	TriggerPercentage float64

	// GuardsPercentage is the fraction of the sample count kept on each side
	// of the triggers, in [0, 1].
	GuardsPercentage float64
}

// DefaultParams returns Params with the default percentages.
func DefaultParams() Params {
	return Params{
		TriggerPercentage: DefaultTriggerPercentage,
		GuardsPercentage:  DefaultGuardsPercentage,
	}
}

// Validate checks that both percentages lie in [0, 1].
func (p Params) Validate() error {
	if !inUnit(p.TriggerPercentage) {
		return fmt.Errorf("%w: trigger percentage %v out of [0, 1]", domain.ErrInvalidConfig, p.TriggerPercentage)
	}
	if !inUnit(p.GuardsPercentage) {
		return fmt.Errorf("%w: guards percentage %v out of [0, 1]", domain.ErrInvalidConfig, p.GuardsPercentage)
	}
	return nil
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
