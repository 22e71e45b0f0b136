// Package middleware provides cross-cutting concerns for the aggregation
// engine: Prometheus metrics and OpenTelemetry tracing decorators that
// wrap aggregation strategies without touching their scoring logic.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It provides real-time monitoring of strategy scoring
// latency, run counts, and universe sizes.
type PrometheusMetrics struct {
	scoringLatency *prometheus.HistogramVec
	scoringRuns    *prometheus.CounterVec
	stateGauges    *prometheus.GaugeVec
}

// NewPrometheusMetrics creates a PrometheusMetrics instance and registers
// all required metrics in the global Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		scoringLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "strategy_scoring_duration_seconds",
				Help:    "Execution time of aggregation strategy scoring runs.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "strategy"},
		),
		scoringRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "strategy_scoring_runs_total",
				Help: "Total number of strategy scoring runs by outcome.",
			},
			[]string{"metric", "status", "strategy"},
		),
		stateGauges: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "strategy_state",
				Help: "Current state values observed by the strategy middleware.",
			},
			[]string{"metric", "strategy"},
		),
	}
}

// RecordLatency implements the MetricsCollector interface by recording
// execution latency in a Prometheus histogram.
func (pm *PrometheusMetrics) RecordLatency(
	operation string,
	duration time.Duration,
	labels map[string]string,
) {
	pm.scoringLatency.WithLabelValues(operation, labelOrUnknown(labels, "strategy")).
		Observe(duration.Seconds())
}

// RecordCounter implements the MetricsCollector interface by incrementing
// a Prometheus counter.
func (pm *PrometheusMetrics) RecordCounter(
	metric string, value float64, labels map[string]string,
) {
	status := labelOrUnknown(labels, "status")
	pm.scoringRuns.WithLabelValues(metric, status, labelOrUnknown(labels, "strategy")).
		Add(value)
}

// RecordGauge implements the MetricsCollector interface by setting a
// Prometheus gauge.
func (pm *PrometheusMetrics) RecordGauge(
	metric string, value float64, labels map[string]string,
) {
	pm.stateGauges.WithLabelValues(metric, labelOrUnknown(labels, "strategy")).Set(value)
}

func labelOrUnknown(labels map[string]string, key string) string {
	if v, ok := labels[key]; ok {
		return v
	}
	return "unknown"
}
