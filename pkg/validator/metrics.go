package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation run metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guardrail_validation_duration_seconds",
			Help:    "Time taken to evaluate a full rule set against a configuration tree",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_validation_total",
			Help: "Total number of validation runs",
		},
		[]string{"status"}, // pass or fail
	)

	violationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guardrail_violations_total",
			Help: "Total number of violations found, by kind",
		},
		[]string{"kind"},
	)

	checkedValues = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guardrail_checked_values",
			Help:    "Number of (path, rule) pairs checked per validation run",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)
)

func observeRun(report *Report) {
	validationDuration.Observe(report.Summary.Duration.Seconds())
	validationTotal.WithLabelValues(string(report.Summary.Status)).Inc()
	checkedValues.Observe(float64(report.Summary.Checked))
	for _, v := range report.Violations {
		violationTotal.WithLabelValues(string(v.Kind)).Inc()
	}
}
