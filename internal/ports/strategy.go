// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
)

// Strategy is an aggregation strategy: an algorithm mapping a set of
// comparison records to one score per alternative.
// Strategies must be stateless across invocations and thread-safe for
// concurrent use; any working state (such as Elo's rating state) must be
// private to a single Score call.
type Strategy interface {
	// Name returns the unique identifier for this strategy instance.
	// The name is used for logging, metrics labels, and registry lookups.
	Name() string

	// Score computes one scalar score per member of the alternative
	// universe (every id appearing as winner or loser), sorted descending
	// by score. Alternatives that never win are included, not omitted.
	//
	// Record order must be treated as significant: order-sensitive
	// strategies (Elo) walk records exactly as supplied, and callers must
	// not assume reordering is harmless.
	//
	// Fewer than 2 alternatives is a degenerate input, not an error:
	// implementations return a well-defined zero/empty table.
	Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error)

	// Validate checks if the strategy is properly configured and ready
	// for execution. Return nil if validation passes, or an error
	// describing what is invalid.
	Validate() error
}

// StrategyFactory creates a strategy instance from an identifier and a
// flexible configuration map, typically decoded from YAML or JSON.
type StrategyFactory func(id string, config map[string]any) (Strategy, error)

// StrategyRegistry provides a factory for creating aggregation strategies
// based on type name and configuration.
// Implementations must fail fast on unknown type names, identifying the
// invalid name and the list of supported names, before any data
// processing begins.
type StrategyRegistry interface {
	// CreateStrategy creates a new strategy of the given type.
	CreateStrategy(strategyType, id string, config map[string]any) (Strategy, error)

	// RegisterStrategyFactory registers a factory for a custom strategy
	// type, extending the registry at runtime.
	RegisterStrategyFactory(strategyType string, factory StrategyFactory) error

	// SupportedTypes returns the sorted list of registered type names.
	SupportedTypes() []string
}
