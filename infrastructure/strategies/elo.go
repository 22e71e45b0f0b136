package strategies

import (
	"context"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-tally/internal/domain"
	"github.com/ahrav/go-tally/internal/ports"
)

var _ ports.Strategy = (*EloStrategy)(nil)

// EloStrategy implements the sequential Elo rating update over comparison
// records. Every alternative starts at the configured base rating; each
// record adjusts winner and loser using the standard logistic expectation
//
//	E_a = 1 / (1 + 10^((R_b - R_a)/400))
//
// scaled by KFactor * log1p(count), so a heavily weighted record shifts
// ratings more than a single-count record but with diminishing marginal
// effect; one massive record cannot dominate the computation.
//
// Elo is the only strategy with path-dependent results: records are walked
// exactly in the order supplied, and processing the same multiset of
// records in a different order can legitimately produce different final
// ratings. This order-dependence is an accepted property of the method,
// not a bug.
//
// The rating state is private to one Score call; the strategy holds no
// state between invocations and is safe for concurrent use.
//
// Reference: Elo, A. E. (1978). The Rating of Chessplayers, Past and Present.
type EloStrategy struct {
	// name is the unique identifier for this strategy instance.
	name string
	// config contains validated parameters, immutable after creation.
	config EloConfig
}

// EloConfig defines the tunable parameters of the Elo update.
type EloConfig struct {
	// BaseRating is the initial rating assigned to every alternative.
	// Default: 1000.
	BaseRating float64 `yaml:"base_rating" json:"base_rating" validate:"gt=0"`

	// KFactor is the maximum rating swing per unit weight. Default: 32.
	KFactor float64 `yaml:"k_factor" json:"k_factor" validate:"gt=0"`

	// Iterations is the number of full passes over the record sequence.
	// Default: 1.
	Iterations int `yaml:"iterations" json:"iterations" validate:"min=1"`
}

// DefaultEloConfig returns the conventional Elo parameters:
// base rating 1000, K-factor 32, a single pass.
func DefaultEloConfig() EloConfig {
	return EloConfig{BaseRating: 1000, KFactor: 32, Iterations: 1}
}

// NewEloStrategy creates an Elo strategy with the given name and
// validated configuration.
func NewEloStrategy(name string, config EloConfig) (*EloStrategy, error) {
	if name == "" {
		return nil, ErrEmptyStrategyName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &EloStrategy{name: name, config: config}, nil
}

// Name returns the unique identifier for this strategy instance.
func (e *EloStrategy) Name() string { return e.name }

// Score walks the records in their given order, once per configured pass,
// and returns the final rating snapshot as the score table.
// Unlike the other strategies, records are NOT pre-aggregated: Elo needs
// per-record granularity and ordering.
func (e *EloStrategy) Score(ctx context.Context, records []domain.Comparison) (domain.ScoreTable, error) {
	alternatives := domain.Alternatives(records)
	if len(alternatives) < 2 {
		return zeroTable(alternatives), nil
	}

	ratings := make(map[string]float64, len(alternatives))
	for _, a := range alternatives {
		ratings[a] = e.config.BaseRating
	}

	for pass := 0; pass < e.config.Iterations; pass++ {
		for _, r := range records {
			expWinner := expectedOutcome(ratings[r.Winner], ratings[r.Loser])
			expLoser := expectedOutcome(ratings[r.Loser], ratings[r.Winner])

			// Logarithmic dampening of the weight keeps a single
			// massively repeated preference from dominating the walk.
			k := e.config.KFactor * math.Log1p(r.Count)

			ratings[r.Winner] += k * (1 - expWinner)
			ratings[r.Loser] += k * (0 - expLoser)
		}
	}

	table := make(domain.ScoreTable, 0, len(alternatives))
	for _, a := range alternatives {
		table = append(table, domain.Score{Alternative: a, Value: ratings[a]})
	}
	table.Sort()
	return table, nil
}

// expectedOutcome is the logistic expectation of a beating b.
func expectedOutcome(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/400))
}

// Validate checks the strategy's configuration against its constraints.
func (e *EloStrategy) Validate() error {
	if e.name == "" {
		return ErrEmptyStrategyName
	}
	if err := validate.Struct(e.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters deserializes YAML parameters and replaces the
// strategy's configuration after validation.
// Not safe for concurrent use with Score.
func (e *EloStrategy) UnmarshalParameters(params yaml.Node) error {
	config := DefaultEloConfig()
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	e.config = config
	return nil
}

// NewEloFromConfig creates an EloStrategy from a configuration map.
// This is the boundary adapter for YAML/JSON configuration: defaults are
// applied first, then overlaid with the caller's values.
func NewEloFromConfig(id string, config map[string]any) (ports.Strategy, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	cfg := DefaultEloConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return NewEloStrategy(id, cfg)
}
