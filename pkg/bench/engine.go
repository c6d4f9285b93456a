package bench

import (
	"fmt"
	"math"
	"time"
)

// Config holds the adaptive sampling engine's tunables, with the defaults
// named in spec §4.5 and §6.
type Config struct {
	// Samples is the target number of retained samples. Default 100.
	Samples int
	// BudgetSeconds bounds total wall time execute may consume. Default 10.
	BudgetSeconds float64
	// Tau is the OLS r^2 threshold at which Phase E's geometric search is
	// considered converged. Default 0.95.
	Tau float64
	// Alpha is the growth factor applied to n_evals each Phase E
	// iteration. Default 1.1.
	Alpha float64
	// OLSSamples is how many rows Phase E accumulates per iteration.
	// Default 100.
	OLSSamples int
	// Verbose, when non-nil, receives progress messages during execute.
	// The engine never imports a logging package itself (spec: it is a
	// pure library); callers route this through their own logger (e.g.
	// log/slog) if they want it.
	Verbose func(format string, args ...any)
	// ClockResolutionNanos overrides the measured clock resolution, for
	// tests that need a deterministic Phase D/E boundary. Zero means
	// "measure it via ClockResolutionNanos".
	ClockResolutionNanos float64
	// PhaseDThreshold is the policy constant from spec §4.5/§9: direct
	// sampling (Phase D) is trusted once a sample spans at least this many
	// clock ticks; below it, the engine falls back to the geometric search
	// (Phase E). Spec §9 flags this as a heuristic with no formal
	// justification and asks that it be kept configurable. Default 1000.
	PhaseDThreshold float64
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Samples:         100,
		BudgetSeconds:   10,
		Tau:             0.95,
		Alpha:           1.1,
		OLSSamples:      100,
		PhaseDThreshold: 1000,
	}
}

func (c Config) log(format string, args ...any) {
	if c.Verbose != nil {
		c.Verbose(format, args...)
	}
}

// Execute runs the adaptive sampling engine against f and returns the
// resulting Results. It never re-runs on statistical failure (spec §1
// Non-goals); an unconverged outcome is surfaced via the returned flags and
// the caller's own inspection of Summarize's R-squared.
func Execute(f Benchmarkable, cfg Config) (Results, error) {
	if cfg.Samples <= 0 {
		cfg.Samples = DefaultConfig().Samples
	}
	if cfg.BudgetSeconds <= 0 {
		cfg.BudgetSeconds = DefaultConfig().BudgetSeconds
	}
	if cfg.Tau <= 0 {
		cfg.Tau = DefaultConfig().Tau
	}
	if cfg.Alpha <= 1 {
		cfg.Alpha = DefaultConfig().Alpha
	}
	if cfg.OLSSamples <= 0 {
		cfg.OLSSamples = DefaultConfig().OLSSamples
	}
	if cfg.PhaseDThreshold <= 0 {
		cfg.PhaseDThreshold = DefaultConfig().PhaseDThreshold
	}

	start := time.Now()
	budget := time.Duration(cfg.BudgetSeconds * float64(time.Second))
	store := NewSampleStore(cfg.Samples)

	elapsedSince := func() time.Duration { return time.Since(start) }
	remaining := func() time.Duration {
		r := budget - elapsedSince()
		if r < 0 {
			return 0
		}
		return r
	}

	// finish derives MultipleSamples from the store's actual length rather
	// than trusting the caller's say-so: spec §3 defines it as "more than
	// one retained sample exists", and a tight budget can make Phase D
	// append zero extra rows even though the phase itself was entered.
	finish := func(precompiled, search bool) (Results, error) {
		return Results{
			Precompiled:     precompiled,
			MultipleSamples: store.Len() > 1,
			SearchPerformed: search,
			Samples:         store,
			TimeUsed:        elapsedSince(),
		}, nil
	}

	// Phase A — first call, possibly biased by one-shot compilation.
	if err := invoke(f, store, 1, 1); err != nil {
		return Results{}, err
	}
	biasedTime := store.ElapsedTime()[0]
	cfg.log("phase A: biased_time=%.0fns", biasedTime)

	if elapsedSince() > budget {
		return finish(false, false)
	}

	// Phase B — affordability check.
	maxSamples := int(float64(remaining()) / biasedTime)
	if maxSamples < 1 {
		return finish(false, false)
	}

	// Phase C — unbiased first sample.
	store.Clear()
	if err := invoke(f, store, 1, 1); err != nil {
		return Results{}, err
	}
	debiasedTime := store.ElapsedTime()[0]
	cfg.log("phase C: debiased_time=%.0fns", debiasedTime)

	if elapsedSince() > budget || cfg.Samples == 1 {
		return finish(true, false)
	}

	// Resolve the clock resolution before deciding between Phase D and E.
	resolution := cfg.ClockResolutionNanos
	if resolution == 0 {
		r, err := ClockResolutionNanos(0)
		if err != nil {
			return Results{}, err
		}
		resolution = r
	}

	// Phase D — direct sampling test.
	if debiasedTime > cfg.PhaseDThreshold*resolution {
		maxSamples = int(float64(remaining()) / debiasedTime)
		n := cfg.Samples - 1
		if maxSamples < n {
			n = maxSamples
		}
		if n > 0 {
			if err := invoke(f, store, n, 1); err != nil {
				return Results{}, err
			}
		}
		cfg.log("phase D: direct sampling, n=%d", n)
		return finish(true, false)
	}

	// Phase E — geometric search: the expression is too fast to measure
	// one evaluation at a time, so fold a growing number of evaluations
	// into each sample until the OLS fit across all accumulated rows is
	// confident, or the budget runs out.
	nEvals := 2.0
	for {
		ceilEvals := int(math.Ceil(nEvals))
		if err := invoke(f, store, cfg.OLSSamples, ceilEvals); err != nil {
			return Results{}, err
		}

		fit, err := FitOLS(store.Evaluations(), store.ElapsedTime())
		if err != nil {
			return Results{}, err
		}
		cfg.log("phase E: n_evals=%d r2=%.4f", ceilEvals, fit.RSquared)

		if fit.RSquared > cfg.Tau || elapsedSince() > budget {
			break
		}

		next := nEvals * cfg.Alpha
		// P5: ceil(n_evals) must strictly increase each iteration.
		if int(math.Ceil(next)) <= ceilEvals {
			next = float64(ceilEvals + 1)
		}
		nEvals = next
	}

	return finish(true, true)
}

// MustExecute is a convenience that panics on error, mirroring the
// teacher's cgroup.MustDetect. Intended for demo/example code and the CLI's
// built-in suite, not for library callers, who should handle Execute's
// error themselves.
func MustExecute(f Benchmarkable, cfg Config) Results {
	r, err := Execute(f, cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// invoke wraps a Benchmarkable call, translating any failure into
// ErrBenchmarkableFailure per spec §7's error taxonomy.
func invoke(f Benchmarkable, store *SampleStore, nSamples, nEvals int) error {
	if err := f.Invoke(store, nSamples, nEvals); err != nil {
		return fmt.Errorf("%w: %w", ErrBenchmarkableFailure, err)
	}
	return nil
}
