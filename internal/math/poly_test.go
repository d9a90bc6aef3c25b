package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {

	type test struct {
		x      []float64
		y      []float64
		degree int
		coeffs []float64
	}

	tests := map[string]test{
		"line": {
			x:      []float64{0, 1, 2, 3},
			y:      []float64{1, 3, 5, 7},
			degree: 1,
			coeffs: []float64{1, 2},
		},
		"parabola": {
			x:      []float64{-2, -1, 0, 1, 2},
			y:      []float64{4, 1, 0, 1, 4},
			degree: 2,
			coeffs: []float64{0, 0, 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cc, err := Fit(tt.x, tt.y, tt.degree)
			require.NoError(t, err)
			require.Len(t, cc, len(tt.coeffs))
			for i, c := range tt.coeffs {
				assert.InDelta(t, c, cc[i], 1e-9)
			}
		})
	}
}

func TestFit_NotEnoughPoints(t *testing.T) {
	_, err := Fit([]float64{1}, []float64{1}, 1)
	assert.Error(t, err)

	_, err = Fit([]float64{1, 2}, []float64{1}, 1)
	assert.Error(t, err)
}

func TestTrend(t *testing.T) {
	slope, err := Trend([]float64{4, 3, 2, 1})
	require.NoError(t, err)
	assert.InDelta(t, -1.0, slope, 1e-9)

	_, err = Trend([]float64{4})
	assert.Error(t, err)
}
