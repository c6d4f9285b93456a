// Package bench is an adaptive micro-benchmarking engine: given a
// Benchmarkable and a time budget, it decides how many evaluations must be
// folded into a single sample to overcome clock granularity, collects
// enough samples to say something statistically meaningful, and returns an
// immutable Results that a Summary can be derived from.
//
// # Overview
//
//   - Benchmarkable contract:
//     Invoke(store *SampleStore, nSamples, nEvals int) error
//
//     One call performs setup once, then nSamples outer iterations each
//     folding nEvals evaluations of the user's expression, appending one
//     row per outer iteration to store. Build one with Func or Expr.
//
//   - Execute(f Benchmarkable, cfg Config) (Results, error) drives the
//     five-phase controller described below and returns once a plan has
//     been decided and run, or the budget is exhausted.
//
//   - Phases (spec §4.5):
//     A. First call, plan (1,1) — may carry one-shot compilation cost.
//     B. Affordability check — bail out if even one more sample won't fit
//     in the remaining budget.
//     C. Unbiased first sample, plan (1,1), replacing the biased row.
//     D. Direct sampling — if a single evaluation is slower than
//     ~1000 clock ticks, sample once per evaluation and summarize with
//     ordinary mean/stderr.
//     E. Geometric search — otherwise, grow evaluations-per-sample by a
//     factor alpha each round, fitting OLS across all accumulated rows,
//     until r^2 clears tau or the budget runs out.
//
//   - Results captures which phases ran (Precompiled, MultipleSamples,
//     SearchPerformed), the accumulated SampleStore, and TimeUsed.
//
//   - Summarize(Results) (Summary, error) derives center/bound estimates
//     for per-evaluation time and percent-in-GC, plus per-evaluation
//     memory/allocation counts from the minimum-ratio sample.
//
// # Example
//
//	/*
//	b := bench.Expr(func() any { return strings.Repeat("x", 16) })
//	res, err := bench.Execute(b, bench.DefaultConfig())
//	if err != nil { log.Fatal(err) }
//	sum, err := bench.Summarize(res)
//	if err != nil { log.Fatal(err) }
//	fmt.Printf("%.1fns/eval (search=%v, r2=%v)\n", sum.Center, res.SearchPerformed, sum.RSquared)
//	*/
//
// # Concurrency
//
// The engine is single-threaded and sequential: it does not suspend,
// await, or yield, and it never mutates a SampleStore concurrently with
// the Benchmarkable it drives. Determinism: given identical inputs, the
// control-flow path through the five phases is deterministic; only the
// numeric observations vary with host noise.
//
// # See also
//
//   - pkg/envinfo for capturing the host/environment record that
//     accompanies a benchmark run.
//   - pkg/samplecsv for serializing a SampleStore.
//   - pkg/report for pretty-printing a Summary.
package bench
