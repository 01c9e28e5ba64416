package sigmath_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/pkg/sigmath"
)

// TestMagnitude_TwoChannels: [3,4] => (9+16)^(1/2) = 5.
func TestMagnitude_TwoChannels(t *testing.T) {
	m, err := sigmath.Magnitude([][]float64{{3, 4}, {0, 0}, {-3, -4}})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{5, 0, 5}, m, 1e-12)
}

// TestMagnitude_SingleChannel: the 1/C exponent gives x², not |x|.
func TestMagnitude_SingleChannel(t *testing.T) {
	m, err := sigmath.Magnitude([][]float64{{3}, {-2}, {0.5}})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{9, 4, 0.25}, m, 1e-12)
}

// TestMagnitude_ThreeChannels: (1+4+4)^(1/3) = 9^(1/3).
func TestMagnitude_ThreeChannels(t *testing.T) {
	m, err := sigmath.Magnitude([][]float64{{1, 2, 2}})
	require.NoError(t, err)
	require.InDelta(t, math.Cbrt(9), m[0], 1e-12)
}

func TestMagnitude_ShapeErrors(t *testing.T) {
	cases := map[string][][]float64{
		"empty":       {},
		"ragged":      {{1, 2}, {3}},
		"no channels": {{}},
		"nan":         {{1, math.NaN()}},
		"inf":         {{math.Inf(1)}},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sigmath.Magnitude(values)
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrShape), "error must be ErrShape, got %v", err)
		})
	}
}

// TestGradient_Convention checks one-sided ends and centered interior.
func TestGradient_Convention(t *testing.T) {
	f := []float64{1, 2, 4, 7, 11}
	require.Equal(t, []float64{1, 1.5, 2.5, 3.5, 4}, sigmath.Gradient(f))
}

func TestGradient_Short(t *testing.T) {
	require.Nil(t, sigmath.Gradient(nil))
	require.Equal(t, []float64{0}, sigmath.Gradient([]float64{42}))
	require.Equal(t, []float64{-3, -3}, sigmath.Gradient([]float64{5, 2}))
}

// TestAbsGradient_NonNegative holds for arbitrary series.
func TestAbsGradient_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(64)
		f := make([]float64, n)
		for i := range f {
			f[i] = rng.NormFloat64() * 100
		}
		g := sigmath.AbsGradient(f)
		require.Len(t, g, n)
		for i, v := range g {
			require.GreaterOrEqual(t, v, 0.0, "trial %d index %d", trial, i)
		}
	}
}
