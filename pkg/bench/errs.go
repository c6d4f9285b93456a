package bench

import "errors"

var (
	// ErrNonMonotonicClock means the resolution probe observed a
	// nonpositive difference between two immediately successive clock
	// reads taken in the same direction, i.e. the clock went backwards or
	// failed to advance across every trial.
	ErrNonMonotonicClock = errors.New("bench: clock did not advance across any trial")

	// ErrBenchmarkableFailure wraps an error raised by user setup, core,
	// or teardown code. execute propagates it without recording partial
	// results.
	ErrBenchmarkableFailure = errors.New("bench: benchmarkable failed")

	// ErrInsufficientData means Summarize was called on a Results with
	// zero retained samples. execute itself can never produce such a
	// Results (Phase A always records one row), so this can only arise
	// from a Results constructed some other way (e.g. in tests).
	ErrInsufficientData = errors.New("bench: no retained samples to summarize")

	// ErrInvalidEvaluations means SampleStore.Append was called with
	// evaluations < 1; every row must fold at least one evaluation.
	ErrInvalidEvaluations = errors.New("bench: evaluations must be >= 1")

	// ErrInvalidSample means SampleStore.Append was called with a
	// gc_time/elapsed_time pair outside 0 <= gc_time <= elapsed_time.
	ErrInvalidSample = errors.New("bench: invalid sample: want 0 <= gc_time <= elapsed_time")

	// ErrMismatchedLengths means FitOLS was called with x and y slices of
	// different lengths.
	ErrMismatchedLengths = errors.New("bench: FitOLS: x and y have different lengths")

	// ErrInsufficientPoints means FitOLS was called with fewer than two
	// points, below which a line is undefined.
	ErrInsufficientPoints = errors.New("bench: FitOLS: need at least 2 points")

	// ErrDegenerateFit means FitOLS was called with an x series of zero
	// variance, making the slope undefined.
	ErrDegenerateFit = errors.New("bench: FitOLS: x has zero variance")
)
