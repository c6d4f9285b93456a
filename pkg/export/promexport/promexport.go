// Package promexport exports the most recent bench.Summary for one or more
// named benchmarks as Prometheus gauges, for callers embedding the engine
// in a long-running service who want to scrape benchmark drift over time.
//
// This component is additive: pkg/bench.Execute and the CLI's default path
// never touch it. It is grounded on etalazz-vsa's use of
// github.com/prometheus/client_golang (a Gauge/Counter pair registered
// once and updated from request handlers).
//
// Per spec §1's Non-goals, this never compares two benchmarks against one
// another — it only ever exports the latest Summary for each name.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ja7ad/benchkit/pkg/bench"
)

// Exporter holds the three gauges this package maintains, labeled by
// benchmark name.
type Exporter struct {
	timePerEval *prometheus.GaugeVec
	gcPercent   *prometheus.GaugeVec
	bytesPerEval *prometheus.GaugeVec
}

// NewExporter registers the exporter's gauges on reg. Passing nil uses
// prometheus.DefaultRegisterer.
func NewExporter(reg prometheus.Registerer) *Exporter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	e := &Exporter{
		timePerEval: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchkit_time_per_eval_seconds",
			Help: "Estimated per-evaluation wall-clock time of the last run, in seconds.",
		}, []string{"benchmark"}),
		gcPercent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchkit_gc_percent",
			Help: "Estimated percent of elapsed time spent in garbage collection.",
		}, []string{"benchmark"}),
		bytesPerEval: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "benchkit_bytes_per_eval",
			Help: "Estimated per-evaluation heap bytes allocated.",
		}, []string{"benchmark"}),
	}

	reg.MustRegister(e.timePerEval, e.gcPercent, e.bytesPerEval)
	return e
}

// Observe sets name's gauges from s. Time is converted from nanoseconds to
// seconds, matching Prometheus's convention for time-valued gauges.
func (e *Exporter) Observe(name string, s bench.Summary) {
	e.timePerEval.WithLabelValues(name).Set(s.Center / 1e9)
	e.gcPercent.WithLabelValues(name).Set(s.GCCenter)
	e.bytesPerEval.WithLabelValues(name).Set(float64(s.BytesPerEval))
}
