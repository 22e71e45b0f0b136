package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

// stubStrategy is a minimal Strategy used to exercise registry extension.
type stubStrategy struct {
	name string
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	table := make(domain.ScoreTable, 0)
	for _, alt := range domain.Alternatives(records) {
		table = append(table, domain.Score{Alternative: alt})
	}
	return table, nil
}

func (s *stubStrategy) Validate() error { return nil }

func TestDefaultStrategyRegistry_SupportedTypes(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	assert.Equal(t, []string{"ahp", "borda", "copeland", "elo", "winrate"}, registry.SupportedTypes())
}

func TestDefaultStrategyRegistry_CreateBuiltins(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	for _, strategyType := range registry.SupportedTypes() {
		t.Run(strategyType, func(t *testing.T) {
			strategy, err := registry.CreateStrategy(strategyType, "test-"+strategyType, nil)
			require.NoError(t, err)
			assert.Equal(t, "test-"+strategyType, strategy.Name())
			assert.NoError(t, strategy.Validate())
		})
	}
}

func TestDefaultStrategyRegistry_UnknownTypeFailsFast(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	_, err := registry.CreateStrategy("schulze", "s1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), `"schulze"`)
	// The error names every valid strategy so the caller can correct the
	// configuration without consulting documentation.
	for _, name := range registry.SupportedTypes() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestDefaultStrategyRegistry_EmptyIDRejected(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	_, err := registry.CreateStrategy(StrategyBorda, "", nil)
	assert.Error(t, err)
}

func TestDefaultStrategyRegistry_InvalidParametersSurface(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	_, err := registry.CreateStrategy(StrategyElo, "elo", map[string]any{"k_factor": -1})
	assert.Error(t, err)
}

func TestDefaultStrategyRegistry_RegisterCustomFactory(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	err := registry.RegisterStrategyFactory("stub", func(id string, config map[string]any) (ports.Strategy, error) {
		return &stubStrategy{name: id}, nil
	})
	require.NoError(t, err)

	strategy, err := registry.CreateStrategy("stub", "custom", nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", strategy.Name())
	assert.Contains(t, registry.SupportedTypes(), "stub")
}

func TestDefaultStrategyRegistry_RegisterRejectsInvalidInput(t *testing.T) {
	registry := NewDefaultStrategyRegistry()

	err := registry.RegisterStrategyFactory("", func(id string, config map[string]any) (ports.Strategy, error) {
		return &stubStrategy{name: id}, nil
	})
	assert.Error(t, err)

	err = registry.RegisterStrategyFactory("nilfactory", nil)
	assert.Error(t, err)
}
