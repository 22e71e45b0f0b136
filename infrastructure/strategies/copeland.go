package strategies

import (
	"context"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.Strategy = (*CopelandStrategy)(nil)

// CopelandStrategy implements the Copeland rule: for every unordered pair
// of alternatives, the side with strictly more directed votes earns a win
// and the other a loss; exact ties contribute to neither. The score is
// wins minus losses.
//
// Records are pre-aggregated into a pair table so duplicate directed
// entries for the same pair are summed once, never double counted; every
// unordered pair is then evaluated exactly once. The strategy is
// deterministic, order-invariant, and has no configuration parameters.
//
// Reference: Copeland, A. H. (1951). A reasonable social welfare function.
type CopelandStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
}

// NewCopelandStrategy creates a Copeland strategy with the given name.
func NewCopelandStrategy(name string) (*CopelandStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	return &CopelandStrategy{name: name}, nil
}

// Name returns the unique identifier for this strategy instance.
func (c *CopelandStrategy) Name() string { return c.name }

// Score tallies pairwise wins and losses over the alternative universe.
// For any dataset with no exact pairwise ties, the returned scores sum to
// zero across alternatives. Fewer than 2 alternatives yields a degenerate
// zero table.
func (c *CopelandStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	alternatives := domain.Alternatives(records)
	if len(alternatives) < 2 {
		return zeroTable(alternatives), nil
	}

	pairs := domain.BuildPairTable(records)
	wins := make(map[string]int, len(alternatives))
	losses := make(map[string]int, len(alternatives))

	// Walk unordered pairs of the sorted universe; pairs with zero votes
	// in both directions are exact ties and change nothing.
	for i := 0; i < len(alternatives); i++ {
		for j := i + 1; j < len(alternatives); j++ {
			x, y := alternatives[i], alternatives[j]
			votesXY := pairs.Votes(x, y)
			votesYX := pairs.Votes(y, x)
			switch {
			case votesXY > votesYX:
				wins[x]++
				losses[y]++
			case votesYX > votesXY:
				wins[y]++
				losses[x]++
			}
		}
	}

	table := make(domain.ScoreTable, 0, len(alternatives))
	for _, a := range alternatives {
		table = append(table, domain.Score{Alternative: a, Value: float64(wins[a] - losses[a])})
	}
	table.Sort()
	return table, nil
}

// Validate reports whether the strategy is ready for execution.
func (c *CopelandStrategy) Validate() error {
	if c.name == "" {
		return ErrEmptyStrategyName
	}
	return nil
}

// NewCopelandFromConfig creates a CopelandStrategy from a configuration
// map. Copeland accepts no parameters, so the map is ignored.
func NewCopelandFromConfig(id string, _ map[string]any) (ports.Strategy, error) {
	return NewCopelandStrategy(id)
}
