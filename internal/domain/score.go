package domain

import (
	"math"
	"sort"
)

// Score assigns a scalar value to one alternative.
type Score struct {
	// Alternative is the identifier being scored.
	Alternative string
	// Value is the strategy-specific scalar score.
	Value float64
}

// ScoreTable holds one Score per member of the alternative universe.
// Every aggregation strategy returns one entry per alternative, including
// alternatives with zero observed wins, sorted descending by value.
// The order carries no semantic meaning beyond presentation.
type ScoreTable []Score

// Sort orders the table descending by value, breaking ties by ascending
// alternative identifier so results are fully deterministic.
func (t ScoreTable) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Value != t[j].Value {
			return t[i].Value > t[j].Value
		}
		return t[i].Alternative < t[j].Alternative
	})
}

// Lookup returns the score for the given alternative and whether it is
// present in the table.
func (t ScoreTable) Lookup(alternative string) (float64, bool) {
	for _, s := range t {
		if s.Alternative == alternative {
			return s.Value, true
		}
	}
	return 0, false
}

// Bounds returns the minimum and maximum score values observed in the
// table. An empty table reports (0, 0).
func (t ScoreTable) Bounds() (min, max float64) {
	if len(t) == 0 {
		return 0, 0
	}
	min, max = math.Inf(1), math.Inf(-1)
	for _, s := range t {
		if s.Value < min {
			min = s.Value
		}
		if s.Value > max {
			max = s.Value
		}
	}
	return min, max
}
