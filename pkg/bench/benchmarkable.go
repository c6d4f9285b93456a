package bench

import (
	"runtime"
	"time"
)

// Benchmarkable is any callable meeting the contract of spec §4.1: given a
// store and a Plan, it performs exactly nSamples outer iterations, each
// folding nEvals inner evaluations of the user expression, and appends one
// row per outer iteration. A single call to Invoke performs setup once,
// loops, then performs teardown once.
//
// The engine is the only caller of Invoke; user code never calls it
// directly. Build one with Func or Expr.
type Benchmarkable interface {
	Invoke(store *SampleStore, nSamples int, nEvals int) error
}

// BenchmarkableFunc adapts a plain func to the Benchmarkable interface,
// mirroring the standard library's http.HandlerFunc pattern.
type BenchmarkableFunc func(store *SampleStore, nSamples int, nEvals int) error

// Invoke calls f.
func (f BenchmarkableFunc) Invoke(store *SampleStore, nSamples int, nEvals int) error {
	return f(store, nSamples, nEvals)
}

// sink absorbs a benchmark's return value so the compiler cannot prove the
// loop body dead. Declared package-level (not a local var) so escape
// analysis can't reason the store is unobserved; see consumeResult.
var sink any

// consumeResult is the inlining barrier mandated by §4.1 and §9: it sits
// between the loop and the user's inner call so the compiler cannot hoist,
// fold, or dead-code-eliminate the call it wraps. The real Go toolchain
// honors this via the compiler's cost-based inliner; go:noinline pins it.
//
//go:noinline
func consumeResult(v any) {
	sink = v
}

// Func builds a Benchmarkable from the three lifecycle hooks named in
// §4.1: setup runs once, core runs nEvals times per sample for nSamples
// samples (its return value is funneled through consumeResult so it cannot
// be eliminated), teardown runs once. setup and teardown may be nil.
//
// Each hook returns an error so user code has a clean way to signal failure
// (spec §4.1's "Errors" paragraph, §7's BenchmarkableFailure taxonomy entry)
// instead of panicking the process. The first non-nil error from setup,
// core, or teardown aborts the run; teardown still runs (via defer) even
// when setup or core failed, but its own error, if any, is what Invoke
// returns only when neither setup nor core failed.
//
// core receives no arguments and returns a single value plus an error; any
// non-constant state core needs must be captured by the closure the caller
// builds, exactly as an ordinary Go closure capture — the dynamic-typing
// workaround described in spec §9 (copying captures into typed locals
// before the loop) is unnecessary in a statically typed language, but the
// caller should still avoid capturing an interface{}-typed variable whose
// concrete type varies between calls, since that reintroduces a dynamic
// dispatch the spec's "concretely typed path" requirement is meant to rule
// out.
func Func(setup func() error, core func() (any, error), teardown func() error) Benchmarkable {
	return BenchmarkableFunc(func(store *SampleStore, nSamples int, nEvals int) (err error) {
		defer func() {
			if teardown == nil {
				return
			}
			if tErr := teardown(); tErr != nil && err == nil {
				err = tErr
			}
		}()
		if setup != nil {
			if err := setup(); err != nil {
				return err
			}
		}

		for i := 0; i < nSamples; i++ {
			var memBefore, memAfter runtime.MemStats
			runtime.ReadMemStats(&memBefore)
			gcBefore := gcNanos(&memBefore)

			start := time.Now()
			for j := 0; j < nEvals; j++ {
				v, err := core()
				if err != nil {
					return err
				}
				consumeResult(v)
			}
			elapsed := time.Since(start)

			runtime.ReadMemStats(&memAfter)
			gcAfter := gcNanos(&memAfter)

			gcDelta := float64(gcAfter - gcBefore)
			elapsedNs := float64(elapsed)
			if gcDelta > elapsedNs {
				// A GC that straddles the sample boundary can be charged
				// almost entirely to this window; clip rather than violate
				// the store's 0 <= gc_time <= elapsed_time invariant.
				gcDelta = elapsedNs
			}
			bytesDelta := memAfter.TotalAlloc - memBefore.TotalAlloc
			allocDelta := memAfter.Mallocs - memBefore.Mallocs

			if err := store.Append(float64(nEvals), elapsedNs, gcDelta, bytesDelta, allocDelta); err != nil {
				return err
			}
		}
		return nil
	})
}

// gcNanos returns the cumulative stop-the-world GC pause time
// (PauseTotalNs), in nanoseconds, from a MemStats snapshot; time the
// collector spends running concurrently with the program is not included.
func gcNanos(m *runtime.MemStats) uint64 {
	return m.PauseTotalNs
}

// Expr builds a Benchmarkable from a single niladic, infallible expression,
// with empty setup and teardown — the Go-native analogue of spec §6's
// `bench(expr)` convenience entry point (there is no macro layer to splice
// an expression into a closure in Go; the caller supplies the closure
// directly). Use Func directly when core can fail.
func Expr(core func() any) Benchmarkable {
	return Func(nil, func() (any, error) { return core(), nil }, nil)
}
