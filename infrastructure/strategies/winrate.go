package strategies

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.Strategy = (*WinRateStrategy)(nil)

// WinRateStrategy scores each alternative by the share of votes it won
// across every matchup it appeared in: wins / (wins + losses).
// Scores always lie in [0, 1]. An alternative with zero total matchups is
// defined to score 0; the division is explicitly guarded so no NaN ever
// reaches the output table.
//
// The strategy is deterministic, order-invariant, and has no configuration
// parameters.
type WinRateStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
}

// NewWinRateStrategy creates a win-rate strategy with the given name.
func NewWinRateStrategy(name string) (*WinRateStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	return &WinRateStrategy{name: name}, nil
}

// Name returns the unique identifier for this strategy instance.
func (w *WinRateStrategy) Name() string { return w.name }

// Score computes the win ratio per alternative from the aggregated pair
// table. Fewer than 2 alternatives yields a degenerate zero table.
func (w *WinRateStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	alternatives := domain.Alternatives(records)
	if len(alternatives) < 2 {
		return zeroTable(alternatives), nil
	}

	pairs := domain.BuildPairTable(records)
	wins := make(map[string]float64, len(alternatives))
	totals := make(map[string]float64, len(alternatives))
	for pair, count := range pairs {
		wins[pair.Winner] += count
		totals[pair.Winner] += count
		totals[pair.Loser] += count
	}

	table := make(domain.ScoreTable, 0, len(alternatives))
	for _, a := range alternatives {
		var rate float64
		if totals[a] > 0 {
			rate = wins[a] / totals[a]
		}
		table = append(table, domain.Score{Alternative: a, Value: rate})
	}
	table.Sort()
	return table, nil
}

// Validate reports whether the strategy is ready for execution.
func (w *WinRateStrategy) Validate() error {
	if w.name == "" {
		return ErrEmptyStrategyName
	}
	return nil
}

// NewWinRateFromConfig creates a WinRateStrategy from a configuration map.
// WinRate accepts no parameters, so the map is ignored.
func NewWinRateFromConfig(id string, _ map[string]any) (ports.Strategy, error) {
	return NewWinRateStrategy(id)
}
