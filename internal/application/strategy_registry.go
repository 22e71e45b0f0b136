// Package application orchestrates the aggregation strategies: it provides
// the strategy registry, the divisiveness engine, and the analysis
// configuration loader.
package application

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ahrav/go-tally/infrastructure/strategies"
	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

// Verify interface compliance at compile time.
var _ ports.StrategyRegistry = (*DefaultStrategyRegistry)(nil)

// Built-in strategy type names accepted by the registry.
const (
	StrategyBorda    = "borda"
	StrategyCopeland = "copeland"
	StrategyWinRate  = "winrate"
	StrategyElo      = "elo"
	StrategyAHP      = "ahp"
)

// DefaultStrategyRegistry implements the StrategyRegistry interface,
// providing a factory for creating aggregation strategies based on type
// name and configuration.
// The five literature strategies are pre-registered; custom strategies
// conforming to the same contract can be added at runtime.
type DefaultStrategyRegistry struct {
	// factories maps strategy type strings to their factory functions.
	factories map[string]ports.StrategyFactory
	// mu protects concurrent access to the factories map.
	mu sync.RWMutex
}

// NewDefaultStrategyRegistry creates a registry with the built-in
// strategy types pre-registered: borda, copeland, winrate, elo, and ahp.
func NewDefaultStrategyRegistry() *DefaultStrategyRegistry {
	registry := &DefaultStrategyRegistry{
		factories: make(map[string]ports.StrategyFactory),
	}
	registry.registerBuiltinFactories()
	return registry
}

// registerBuiltinFactories registers the standard aggregation strategies
// shipped with the library.
func (r *DefaultStrategyRegistry) registerBuiltinFactories() {
	r.factories[StrategyBorda] = strategies.NewBordaFromConfig
	r.factories[StrategyCopeland] = strategies.NewCopelandFromConfig
	r.factories[StrategyWinRate] = strategies.NewWinRateFromConfig
	r.factories[StrategyElo] = strategies.NewEloFromConfig
	r.factories[StrategyAHP] = strategies.NewAHPFromConfig
}

// CreateStrategy creates a new strategy instance of the given type.
// An unknown type name fails fast, before any data processing, with an
// error identifying the invalid name and the list of supported names.
func (r *DefaultStrategyRegistry) CreateStrategy(
	strategyType string,
	id string,
	config map[string]any,
) (ports.Strategy, error) {
	r.mu.RLock()
	factory, exists := r.factories[strategyType]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q (supported: %s)",
			domain.ErrUnknownStrategy, strategyType, strings.Join(r.SupportedTypes(), ", "))
	}

	if id == "" {
		return nil, fmt.Errorf("strategy ID cannot be empty")
	}

	if config == nil {
		config = make(map[string]any)
	}

	strategy, err := factory(id, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy %s of type %s: %w", id, strategyType, err)
	}

	return strategy, nil
}

// RegisterStrategyFactory registers a factory for a custom strategy type,
// extending the registry at runtime. The factory must return strategies
// conforming to the ports.Strategy contract (one score per alternative,
// sorted descending).
func (r *DefaultStrategyRegistry) RegisterStrategyFactory(
	strategyType string,
	factory ports.StrategyFactory,
) error {
	if strategyType == "" {
		return fmt.Errorf("strategy type cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[strategyType] = factory
	return nil
}

// SupportedTypes returns the sorted list of registered strategy type names.
func (r *DefaultStrategyRegistry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.factories))
	for strategyType := range r.factories {
		types = append(types, strategyType)
	}
	sort.Strings(types)
	return types
}
