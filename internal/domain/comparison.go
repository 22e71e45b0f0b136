// Package domain defines the core value types for pairwise-comparison
// voting data: comparison records, aggregated pair tables, score tables,
// and divisiveness tables.
// All types are call-scoped value objects; no entity is shared mutably
// across invocations.
package domain

import "sort"

// Comparison is one directed, weighted preference statement: Winner was
// preferred over Loser with the given vote weight.
// Count is a non-negative weight representing how many times this directed
// preference was expressed. Voter identifies the individual who expressed
// the preference and is required only by the exact divisiveness mode;
// it may be empty everywhere else.
//
// Winner != Loser is assumed. Self-preference is undefined behavior and
// is not validated here.
type Comparison struct {
	// Winner is the identifier of the preferred alternative.
	Winner string
	// Loser is the identifier of the alternative preferred against.
	Loser string
	// Count is the vote weight for this directed preference.
	Count float64
	// Voter optionally identifies who expressed the preference.
	Voter string
}

// Pair identifies one directed matchup between two alternatives.
type Pair struct {
	Winner string
	Loser  string
}

// PairTable maps each directed (winner, loser) pair to its summed vote
// count. Absence of a pair means zero observed votes in that direction;
// the table is not necessarily symmetric.
type PairTable map[Pair]float64

// BuildPairTable groups comparison records by (winner, loser) pair and
// sums their counts. The result is order-invariant: the same multiset of
// records always yields an identical table regardless of input order.
// Empty input yields an empty table. No alternative is dropped; losers
// remain reachable through the pair keys.
func BuildPairTable(records []Comparison) PairTable {
	table := make(PairTable, len(records))
	for _, r := range records {
		table[Pair{Winner: r.Winner, Loser: r.Loser}] += r.Count
	}
	return table
}

// Votes returns the summed count observed for winner over loser,
// or 0 when that direction was never observed.
func (t PairTable) Votes(winner, loser string) float64 {
	return t[Pair{Winner: winner, Loser: loser}]
}

// Pairs returns the table's directed pairs in a deterministic order,
// sorted by winner then loser.
func (t PairTable) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t))
	for p := range t {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Winner != pairs[j].Winner {
			return pairs[i].Winner < pairs[j].Winner
		}
		return pairs[i].Loser < pairs[j].Loser
	})
	return pairs
}

// Records converts the table back to a canonical record list, sorted by
// winner then loser, with no voter identity. The canonical order makes
// downstream computations deterministic even for order-sensitive
// strategies.
func (t PairTable) Records() []Comparison {
	records := make([]Comparison, 0, len(t))
	for _, p := range t.Pairs() {
		records = append(records, Comparison{
			Winner: p.Winner,
			Loser:  p.Loser,
			Count:  t[p],
		})
	}
	return records
}

// Alternatives returns the sorted universe of alternative identifiers
// appearing in the table as winner or loser.
func (t PairTable) Alternatives() []string {
	seen := make(map[string]struct{}, len(t)*2)
	for p := range t {
		seen[p.Winner] = struct{}{}
		seen[p.Loser] = struct{}{}
	}
	return sortedKeys(seen)
}

// Alternatives returns the sorted universe of alternative identifiers
// appearing in the records as winner or loser.
func Alternatives(records []Comparison) []string {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Winner] = struct{}{}
		seen[r.Loser] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
