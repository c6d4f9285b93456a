package bench

import (
	"fmt"
	"math"

	"github.com/ja7ad/benchkit/pkg/bench/internal/mathutil"
)

// OLSFit is the closed-form result of fitting y ~ a + b*x by ordinary least
// squares (spec §4.4).
type OLSFit struct {
	Intercept float64 // a
	Slope     float64 // b
	RSquared  float64 // r^2, in terms of sample variance
	SEMSlope  float64 // standard error of b
}

// FitOLS fits y ~ a + b*x by ordinary least squares. x and y must have
// equal length >= 2, and x must have nonzero variance; the engine
// guarantees both before calling this (Phase E always accumulates at least
// two rows with distinct evaluations before fitting).
func FitOLS(x, y []float64) (OLSFit, error) {
	n := len(x)
	if n != len(y) {
		return OLSFit{}, fmt.Errorf("%w: %d vs %d", ErrMismatchedLengths, n, len(y))
	}
	if n < 2 {
		return OLSFit{}, fmt.Errorf("%w: got %d", ErrInsufficientPoints, n)
	}

	xMean := mathutil.Mean(x)
	yMean := mathutil.Mean(y)

	var sXX, sXY float64
	for i := range x {
		dx := x[i] - xMean
		sXX += dx * dx
		sXY += dx * (y[i] - yMean)
	}
	if sXX == 0 {
		return OLSFit{}, ErrDegenerateFit
	}

	b := sXY / sXX
	a := yMean - b*xMean

	var residSS float64
	for i := range x {
		resid := y[i] - (a + b*x[i])
		residSS += resid * resid
	}

	yVar := mathutil.Variance(y)
	var rSquared float64
	if yVar > 0 {
		// residual variance over the same sample-variance divisor (n-1)
		// cancels against yVar's divisor, so this is equivalent to
		// 1 - var(a+b*x-y)/var(y) as spec §4.4 states it.
		residVar := residSS / float64(n-1)
		rSquared = 1 - residVar/yVar
	} else {
		rSquared = 1
	}

	semB := math.Sqrt((residSS / float64(n-2)) / sXX)

	return OLSFit{
		Intercept: a,
		Slope:     b,
		RSquared:  rSquared,
		SEMSlope:  semB,
	}, nil
}
