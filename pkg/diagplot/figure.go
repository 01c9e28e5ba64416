package diagplot

import (
	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/pkg/crop"
)

// Figure is the data needed to draw the diagnostic panels.
type Figure struct {
	// Title is shown above the first panel, typically the input path
	Title string

	ChannelNames []string
	IntervalMs   float64

	Raw       [][]float64
	Gradient  []float64
	Threshold float64
	Bounds    domain.Bounds
	Cropped   [][]float64
}

// FromResult builds a Figure from a crop result.
func FromResult(title string, res crop.Result) Figure {
	return Figure{
		Title:        title,
		ChannelNames: res.Source.SensorNames(),
		IntervalMs:   res.Source.IntervalMs,
		Raw:          res.Source.Values,
		Gradient:     res.Gradient,
		Threshold:    res.Threshold,
		Bounds:       res.Bounds,
		Cropped:      res.Recording.Values,
	}
}
