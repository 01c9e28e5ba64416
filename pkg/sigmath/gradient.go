package sigmath

import "math"

// Gradient returns the discrete derivative of f with unit spacing.
// Interior points use (f[i+1]-f[i-1])/2, the ends use one-sided differences.
// A single-point series has gradient 0; an empty series yields nil.
func Gradient(f []float64) []float64 {
	n := len(f)
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{0}
	}

	g := make([]float64, n)
	g[0] = f[1] - f[0]
	g[n-1] = f[n-1] - f[n-2]
	for i := 1; i < n-1; i++ {
		g[i] = (f[i+1] - f[i-1]) / 2
	}
	return g
}

// AbsGradient returns |Gradient(f)| element-wise.
func AbsGradient(f []float64) []float64 {
	g := Gradient(f)
	for i, v := range g {
		g[i] = math.Abs(v)
	}
	return g
}
