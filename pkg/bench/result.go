package bench

import (
	"time"

	"github.com/ja7ad/benchkit/pkg/bench/internal/mathutil"
)

// Results is the immutable outcome of one execute call (spec §3).
type Results struct {
	Precompiled      bool
	MultipleSamples  bool
	SearchPerformed  bool
	Samples          *SampleStore
	TimeUsed         time.Duration
}

// Bound is a nullable confidence bound: Present is false when no interval
// is computable, distinguishing "no CI" from a degenerate zero-width one.
type Bound struct {
	Value   float64
	Present bool
}

// present returns a Bound holding v.
func present(v float64) Bound { return Bound{Value: v, Present: true} }

// Summary is a derived, immutable view computed from a Results (spec §3/§4.6).
type Summary struct {
	N             int
	NEvaluations  float64
	Center        float64 // per-evaluation elapsed time, nanoseconds
	Lower         Bound
	Upper         Bound
	GCCenter      float64 // percent of elapsed time spent in GC
	GCLower       Bound
	GCUpper       Bound
	BytesPerEval  uint64
	AllocsPerEval uint64
	RSquared      Bound
}

// Summarize derives a Summary from r, case-splitting on its flags exactly
// as spec §4.6 describes. Returns ErrInsufficientData if r has zero
// retained samples; execute itself never produces such a Results.
func Summarize(r Results) (Summary, error) {
	if r.Samples == nil || r.Samples.Len() == 0 {
		return Summary{}, ErrInsufficientData
	}

	s := r.Samples
	n := s.Len()
	evals := s.Evaluations()
	elapsed := s.ElapsedTime()
	gc := s.GCTime()

	var nEvalSum float64
	for _, e := range evals {
		nEvalSum += e
	}

	bytesPerEval, allocsPerEval := minRatioMemory(s)

	summary := Summary{
		N:             n,
		NEvaluations:  nEvalSum,
		BytesPerEval:  bytesPerEval,
		AllocsPerEval: allocsPerEval,
	}

	switch {
	case r.SearchPerformed:
		fit, err := FitOLS(evals, elapsed)
		if err != nil {
			return Summary{}, err
		}
		summary.Center = fit.Slope
		lower := fit.Slope - 6*fit.SEMSlope
		summary.Lower = present(mathutil.Max0(lower))
		summary.Upper = present(fit.Slope + 6*fit.SEMSlope)
		summary.RSquared = present(fit.RSquared)
		gcCenter, gcLower, gcUpper := gcRatioStats(elapsed, gc)
		summary.GCCenter = gcCenter
		summary.GCLower = gcLower
		summary.GCUpper = gcUpper

	case r.MultipleSamples:
		m := mathutil.Mean(elapsed)
		sem := mathutil.SEM(elapsed)
		summary.Center = m
		summary.Lower = present(mathutil.Max0(m - 6*sem))
		summary.Upper = present(m + 6*sem)
		gcCenter, gcLower, gcUpper := gcRatioStats(elapsed, gc)
		summary.GCCenter = gcCenter
		summary.GCLower = gcLower
		summary.GCUpper = gcUpper

	default:
		summary.Center = elapsed[0]
		if elapsed[0] > 0 {
			summary.GCCenter = mathutil.ClampPercent(100 * gc[0] / elapsed[0])
		}
	}

	return summary, nil
}

// gcRatioStats computes the GC-time-as-percent-of-elapsed-time statistic
// used by both the multi-sample and search-performed cases of Summarize:
// per-sample ratio sequence, its mean, and a 6-sigma interval clipped to
// [0, 100].
func gcRatioStats(elapsed, gc []float64) (center float64, lower, upper Bound) {
	ratios := make([]float64, len(elapsed))
	for i := range elapsed {
		ratios[i] = 100 * mathutil.SafeDiv(gc[i], elapsed[i])
	}
	g := mathutil.Mean(ratios)
	sem := mathutil.SEM(ratios)
	center = mathutil.ClampPercent(g)
	lower = present(mathutil.ClampPercent(g - 6*sem))
	upper = present(mathutil.ClampPercent(g + 6*sem))
	return
}

// minRatioMemory returns the per-evaluation bytes and allocation counts
// from the minimum-ratio sample (spec §4.6): the row minimizing
// bytes_allocated/evaluations, which is never downward-biased below the
// true per-evaluation allocation cost.
func minRatioMemory(s *SampleStore) (bytesPerEval, allocsPerEval uint64) {
	evals := s.Evaluations()
	bytesCol := s.BytesAllocated()
	allocsCol := s.Allocations()

	bestIdx := -1
	bestRatio := 0.0
	for i, e := range evals {
		ratio := float64(bytesCol[i]) / e
		if bestIdx == -1 || ratio < bestRatio {
			bestIdx = i
			bestRatio = ratio
		}
	}
	if bestIdx == -1 {
		return 0, 0
	}
	e := evals[bestIdx]
	return uint64(float64(bytesCol[bestIdx]) / e), uint64(float64(allocsCol[bestIdx]) / e)
}
