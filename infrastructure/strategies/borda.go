package strategies

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.Strategy = (*BordaStrategy)(nil)

// BordaStrategy implements the Borda count: the score of an alternative is
// the sum of vote counts it received across every matchup it won.
// Alternatives that never win score exactly 0 and are still included in
// the result.
//
// The strategy is deterministic and order-invariant: records are
// pre-aggregated into a pair table before summation. It has no
// configuration parameters.
//
// Reference: Borda, J. C. (1781). Mémoire sur les élections au scrutin.
type BordaStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
}

// NewBordaStrategy creates a Borda count strategy with the given name.
func NewBordaStrategy(name string) (*BordaStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	return &BordaStrategy{name: name}, nil
}

// Name returns the unique identifier for this strategy instance.
func (b *BordaStrategy) Name() string { return b.name }

// Score sums won-vote counts per alternative. Runs in O(pairs) after
// aggregation. Fewer than 2 alternatives yields a degenerate zero table.
func (b *BordaStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	alternatives := domain.Alternatives(records)
	if len(alternatives) < 2 {
		return zeroTable(alternatives), nil
	}

	pairs := domain.BuildPairTable(records)
	wins := make(map[string]float64, len(alternatives))
	for pair, count := range pairs {
		wins[pair.Winner] += count
	}

	table := make(domain.ScoreTable, 0, len(alternatives))
	for _, a := range alternatives {
		table = append(table, domain.Score{Alternative: a, Value: wins[a]})
	}
	table.Sort()
	return table, nil
}

// Validate reports whether the strategy is ready for execution.
// Borda carries no configuration, so only the name is checked.
func (b *BordaStrategy) Validate() error {
	if b.name == "" {
		return ErrEmptyStrategyName
	}
	return nil
}

// NewBordaFromConfig creates a BordaStrategy from a configuration map.
// This is the boundary adapter for YAML/JSON configuration; Borda accepts
// no parameters, so the map is ignored.
func NewBordaFromConfig(id string, _ map[string]any) (ports.Strategy, error) {
	return NewBordaStrategy(id)
}
