// Package strategies provides the social-choice aggregation strategies that
// implement the ports.Strategy interface: Borda, Copeland, WinRate, Elo,
// and AHP.
// Each strategy maps a set of comparison records to one score per
// alternative; they differ only in how the pairwise evidence is combined.
package strategies

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ahrav/go-tally/internal/domain"
)

// Common errors returned by aggregation strategies.
var (
	// ErrEmptyStrategyName is returned when attempting to create a strategy
	// with an empty name.
	ErrEmptyStrategyName = errors.New("strategy name cannot be empty")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// zeroTable builds a degenerate score table assigning 0 to every listed
// alternative. Strategies return it for universes with fewer than 2
// members instead of failing.
func zeroTable(alternatives []string) domain.ScoreTable {
	table := make(domain.ScoreTable, 0, len(alternatives))
	for _, a := range alternatives {
		table = append(table, domain.Score{Alternative: a, Value: 0})
	}
	table.Sort()
	return table
}
