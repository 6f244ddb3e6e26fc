package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	evaluations    *prometheus.CounterVec
	scenarios      *prometheus.CounterVec
	warnings       *prometheus.CounterVec
	historyCleared prometheus.Counter
	clearedEntries prometheus.Counter
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New registers the recorder's collectors on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		evaluations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcscope_evaluations_total",
				Help: "Total number of classifier evaluations",
			},
			[]string{"mode", "matched"},
		),
		scenarios: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcscope_scenarios_total",
				Help: "Evaluations per resulting scenario label",
			},
			[]string{"mode", "scenario"},
		),
		warnings: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcscope_validation_warnings_total",
				Help: "Reading validation warnings by code",
			},
			[]string{"code"},
		),
		historyCleared: f.NewCounter(prometheus.CounterOpts{
			Name: "kcscope_history_clears_total",
			Help: "Number of history clear operations",
		}),
		clearedEntries: f.NewCounter(prometheus.CounterOpts{
			Name: "kcscope_history_cleared_entries_total",
			Help: "Number of history entries dropped by clears",
		}),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kcscope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kcscope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"operation"},
		),
	}
}

// RecordEvaluation counts one evaluation.
func (r *Recorder) RecordEvaluation(mode string, matched bool) {
	r.evaluations.WithLabelValues(mode, strconv.FormatBool(matched)).Inc()
}

// RecordScenario counts a scenario label. Labels come from a fixed set.
func (r *Recorder) RecordScenario(mode, scenario string) {
	r.scenarios.WithLabelValues(mode, scenario).Inc()
}

// RecordWarning counts a validation warning.
func (r *Recorder) RecordWarning(code string) {
	r.warnings.WithLabelValues(code).Inc()
}

// RecordHistoryCleared counts a clear and the entries it dropped.
func (r *Recorder) RecordHistoryCleared(entries int) {
	r.historyCleared.Inc()
	r.clearedEntries.Add(float64(entries))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
