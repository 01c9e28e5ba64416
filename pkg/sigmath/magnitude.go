package sigmath

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bft-labs/sigcrop/internal/domain"
)

// Magnitude returns one scalar per row of values.
// Rows must all have the width of the first row.
func Magnitude(values [][]float64) ([]float64, error) {
	if err := domain.ValidateGrid(values, 0); err != nil {
		return nil, err
	}

	channels := len(values[0])
	exp := 1 / float64(channels)

	out := make([]float64, len(values))
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &domain.ShapeError{Row: i, Col: j, Reason: "non-finite reading"}
			}
		}
		out[i] = math.Pow(floats.Dot(row, row), exp)
	}
	return out, nil
}
