package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

// StrategyMiddleware wraps a strategy with a cross-cutting concern,
// returning a strategy with identical scoring semantics.
type StrategyMiddleware func(next ports.Strategy) ports.Strategy

// Chain applies middlewares to a strategy so the first middleware in the
// list observes the call outermost.
func Chain(strategy ports.Strategy, middlewares ...StrategyMiddleware) ports.Strategy {
	for i := len(middlewares) - 1; i >= 0; i-- {
		strategy = middlewares[i](strategy)
	}
	return strategy
}

var _ ports.Strategy = (*metricsStrategy)(nil)

// metricsStrategy collects scoring latency, run counts, and universe
// sizes for operational monitoring. Scoring semantics are untouched.
type metricsStrategy struct {
	next      ports.Strategy
	collector ports.MetricsCollector
}

// MetricsMiddleware creates middleware that records scoring metrics
// through the given collector.
func MetricsMiddleware(collector ports.MetricsCollector) StrategyMiddleware {
	return func(next ports.Strategy) ports.Strategy {
		return &metricsStrategy{next: next, collector: collector}
	}
}

// Name returns the wrapped strategy's identifier.
func (m *metricsStrategy) Name() string { return m.next.Name() }

// Score delegates to the wrapped strategy while recording latency,
// outcome, and the size of the alternative universe.
func (m *metricsStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	start := time.Now()
	table, err := m.next.Score(ctx, records)

	labels := map[string]string{
		"strategy": m.next.Name(),
		"status":   "success",
	}
	if err != nil {
		labels["status"] = "error"
	}

	if m.collector != nil {
		m.collector.RecordLatency("strategy_score", time.Since(start), labels)
		m.collector.RecordCounter("strategy_score_runs", 1, labels)
		if err == nil {
			m.collector.RecordGauge("universe_size", float64(len(table)), labels)
		}
	}
	return table, err
}

// Validate delegates to the wrapped strategy.
func (m *metricsStrategy) Validate() error { return m.next.Validate() }

var _ ports.Strategy = (*tracedStrategy)(nil)

// tracedStrategy adds an OpenTelemetry span around each scoring run for
// debugging and performance analysis.
type tracedStrategy struct {
	next   ports.Strategy
	tracer trace.Tracer
}

// TracingMiddleware creates middleware that traces scoring runs under the
// given tracer name.
func TracingMiddleware(tracerName string) StrategyMiddleware {
	return func(next ports.Strategy) ports.Strategy {
		return &tracedStrategy{next: next, tracer: otel.Tracer(tracerName)}
	}
}

// Name returns the wrapped strategy's identifier.
func (t *tracedStrategy) Name() string { return t.next.Name() }

// Score executes the scoring run within a span carrying the strategy name
// and record count, recording errors on the span.
func (t *tracedStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	ctx, span := t.tracer.Start(ctx, "Strategy.Score",
		trace.WithAttributes(
			attribute.String("strategy.name", t.next.Name()),
			attribute.Int("strategy.records", len(records)),
		),
	)
	defer span.End()

	table, err := t.next.Score(ctx, records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return table, err
	}

	span.SetAttributes(attribute.Int("strategy.universe_size", len(table)))
	return table, nil
}

// Validate delegates to the wrapped strategy.
func (t *tracedStrategy) Validate() error { return t.next.Validate() }
