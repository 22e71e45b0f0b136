package ports

import "time"

// MetricsCollector abstracts the metrics backend used by the strategy
// middleware so the application layer stays decoupled from Prometheus.
type MetricsCollector interface {
	// RecordLatency records the duration of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a named counter by the given value.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordGauge sets a named gauge to the given value.
	RecordGauge(metric string, value float64, labels map[string]string)
}
