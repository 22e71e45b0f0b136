package domain

import "sort"

// Divisiveness assigns one alternative its divisiveness value: a
// non-negative real, unbounded above, where 0 means every voter
// subpopulation agrees about the alternative's standing.
type Divisiveness struct {
	// Alternative is the identifier being measured.
	Alternative string
	// Value is the divisiveness of the alternative.
	Value float64
}

// DivisivenessTable holds one entry per member of the alternative
// universe, sorted descending by value for presentation.
type DivisivenessTable []Divisiveness

// Sort orders the table descending by value, breaking ties by ascending
// alternative identifier.
func (t DivisivenessTable) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Value != t[j].Value {
			return t[i].Value > t[j].Value
		}
		return t[i].Alternative < t[j].Alternative
	})
}

// Mean returns the arithmetic mean divisiveness across the universe,
// or 0 for an empty table.
func (t DivisivenessTable) Mean() float64 {
	if len(t) == 0 {
		return 0
	}
	var sum float64
	for _, d := range t {
		sum += d.Value
	}
	return sum / float64(len(t))
}
