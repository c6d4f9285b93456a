// Command benchkit is the CLI front-end for pkg/bench. Since Go has no
// source-level macro facility to splice an arbitrary user expression into a
// benchmarkable (spec §6/§9), this binary demonstrates the engine against a
// small built-in suite; embedding programs register their own
// bench.Benchmarkable values against a bench.Suite the same way.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/benchkit/pkg/bench"
	"github.com/ja7ad/benchkit/pkg/envinfo"
	"github.com/ja7ad/benchkit/pkg/report"
	"github.com/ja7ad/benchkit/pkg/samplecsv"
)

type opts struct {
	samples         int
	budget          float64
	tau             float64
	alpha           float64
	olsSamples      int
	phaseDThreshold float64
	verbose         bool

	csvPath    string
	envCSVPath string
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "benchkit [benchmark...]",
		Short: "Adaptive micro-benchmarking harness",
		Long: `benchkit measures the per-evaluation wall-clock time of an expression,
adaptively deciding how many evaluations to fold into a sample and how many
samples to collect within a time budget, then reports a center estimate with
a confidence interval, GC overhead, and per-evaluation memory cost.

With no arguments, it runs every benchmark in the built-in demo suite.
Pass one or more names to run a subset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args)
		},
	}

	root.Flags().IntVarP(&o.samples, "samples", "s", bench.DefaultConfig().Samples, "target number of retained samples")
	root.Flags().Float64VarP(&o.budget, "budget", "b", bench.DefaultConfig().BudgetSeconds, "time budget in seconds")
	root.Flags().Float64Var(&o.tau, "tau", bench.DefaultConfig().Tau, "OLS r² convergence threshold for the geometric search phase")
	root.Flags().Float64Var(&o.alpha, "alpha", bench.DefaultConfig().Alpha, "evaluations-per-sample growth factor in the geometric search phase")
	root.Flags().IntVar(&o.olsSamples, "ols-samples", bench.DefaultConfig().OLSSamples, "samples collected per geometric search iteration")
	root.Flags().Float64Var(&o.phaseDThreshold, "phase-d-threshold", bench.DefaultConfig().PhaseDThreshold, "clock-ticks multiplier above which direct sampling is trusted over geometric search")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log phase transitions")

	root.Flags().StringVar(&o.csvPath, "samples-csv", "", "write raw samples to this CSV file (one per benchmark, suffixed with its name)")
	root.Flags().StringVar(&o.envCSVPath, "env-csv", "", "write the environment record to this CSV file")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	suite := demoSuite()
	names := suite.Names()
	if len(args) > 0 {
		wanted := make(map[string]bool, len(args))
		for _, a := range args {
			wanted[a] = true
		}
		filtered := names[:0]
		for _, n := range names {
			if wanted[n] {
				filtered = append(filtered, n)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("benchkit: no matching benchmarks among %v (available: %v)", args, names)
		}
		names = filtered
	}
	sort.Strings(names)

	cfg := bench.Config{
		Samples:         o.samples,
		BudgetSeconds:   o.budget,
		Tau:             o.tau,
		Alpha:           o.alpha,
		OLSSamples:      o.olsSamples,
		PhaseDThreshold: o.phaseDThreshold,
	}
	if o.verbose {
		cfg.Verbose = func(format string, a ...any) {
			slog.Info(fmt.Sprintf(format, a...))
		}
	}

	if o.envCSVPath != "" {
		f, err := os.Create(o.envCSVPath)
		if err != nil {
			return fmt.Errorf("benchkit: env csv: %w", err)
		}
		defer f.Close()
		if err := envinfo.WriteCSV(f, envinfo.Capture(), false); err != nil {
			return fmt.Errorf("benchkit: env csv: %w", err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, _ := suite.Lookup(name)
		res, err := bench.Execute(b, cfg)
		if err != nil {
			return fmt.Errorf("benchkit: %s: %w", name, err)
		}

		summary, err := bench.Summarize(res)
		if err != nil {
			return fmt.Errorf("benchkit: %s: %w", name, err)
		}

		if err := report.Print(os.Stdout, name, res, summary); err != nil {
			return fmt.Errorf("benchkit: %s: print: %w", name, err)
		}

		if o.csvPath != "" {
			path := withNameSuffix(o.csvPath, name)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("benchkit: %s: samples csv: %w", name, err)
			}
			err = samplecsv.Write(f, res.Samples, false)
			f.Close()
			if err != nil {
				return fmt.Errorf("benchkit: %s: samples csv: %w", name, err)
			}
		}
	}

	return nil
}

// withNameSuffix inserts "-name" before path's extension, e.g.
// "out.csv" + "fib20" -> "out-fib20.csv".
func withNameSuffix(path, name string) string {
	if dot := strings.LastIndex(path, "."); dot >= 0 {
		return path[:dot] + "-" + name + path[dot:]
	}
	return path + "-" + name
}

// demoSuite is the built-in set of example benchmarks this binary ships
// with, standing in for the user-authored expressions spec §6 describes
// registering via the (absent, in Go) macro facility.
func demoSuite() *bench.Suite {
	s := bench.NewSuite()

	s.Register("sleep-1ms", bench.Expr(func() any {
		time.Sleep(time.Millisecond)
		return nil
	}))

	s.Register("fib-20", bench.Expr(func() any {
		return fib(20)
	}))

	s.Register("alloc-1kb", bench.Expr(func() any {
		return make([]byte, 1024)
	}))

	s.Register("const", bench.Expr(func() any {
		return 42
	}))

	return s
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
