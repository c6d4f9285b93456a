package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitOLS_ExactLine(t *testing.T) {
	// P7: x_i = i, y_i = 3 + 5*x_i exactly.
	var x, y []float64
	for i := 1; i <= 10; i++ {
		xi := float64(i)
		x = append(x, xi)
		y = append(y, 3+5*xi)
	}

	fit, err := FitOLS(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, fit.Intercept, 1e-9)
	assert.InDelta(t, 5.0, fit.Slope, 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-9)
	assert.InDelta(t, 0.0, fit.SEMSlope, 1e-9)
}

func TestFitOLS_NoisyData(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}

	fit, err := FitOLS(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 0.2)
	assert.Greater(t, fit.RSquared, 0.95)
	assert.Greater(t, fit.SEMSlope, 0.0)
}

func TestFitOLS_RejectsDegenerateInput(t *testing.T) {
	_, err := FitOLS([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = FitOLS([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrMismatchedLengths)

	_, err = FitOLS([]float64{5, 5, 5}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerateFit)
}
