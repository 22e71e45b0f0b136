// Package testutils provides test data generators for the aggregation and
// divisiveness packages. These components are intended for internal use
// within the project's test suites and the dataset generation command and
// are not part of the public API.
package testutils

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ahrav/go-tally/internal/domain"
)

// alternativeWords seeds human-readable alternative names. Generation
// cycles through the list and suffixes an index once it is exhausted.
var alternativeWords = []string{
	"transit", "housing", "parks", "schools", "safety",
	"climate", "culture", "health", "broadband", "zoning",
}

// titleCaser renders alternative identifiers as display names.
var titleCaser = cases.Title(language.English)

// ElectorateSpec describes a synthetic electorate: how many voters cast
// pairwise comparisons over how many alternatives, how many preference
// factions the voters split into, and how often a voter deviates from
// their faction's ranking.
type ElectorateSpec struct {
	// Voters is the number of distinct voters.
	Voters int
	// Alternatives is the number of alternatives compared.
	Alternatives int
	// Factions is the number of shared preference orderings voters are
	// assigned to round-robin.
	Factions int
	// Noise is the probability in [0, 1] that a single comparison is
	// flipped against the voter's faction ranking.
	Noise float64
	// Seed controls randomization. Use a fixed value for reproducible
	// output or time.Now().UnixNano() for a fresh electorate.
	Seed int64
}

// Electorate is a generated set of pairwise comparison records together
// with the ground truth used to produce them.
type Electorate struct {
	// Records holds one comparison per voter per unordered alternative
	// pair, each with Count 1.
	Records []domain.Comparison
	// Alternatives lists the alternative identifiers in generation order.
	Alternatives []string
	// FactionRankings holds each faction's preference ordering, most
	// preferred first.
	FactionRankings [][]string
	// FactionByVoter maps each voter identifier to its faction index.
	FactionByVoter map[string]int
}

// GenerateElectorate creates a synthetic electorate from spec. Voters are
// split round-robin across factions; each faction holds a random total
// ordering of the alternatives and its voters vote that ordering on every
// unordered pair, flipped with probability spec.Noise. The same spec and
// seed always yield the same electorate.
func GenerateElectorate(spec ElectorateSpec) *Electorate {
	if spec.Voters < 1 {
		spec.Voters = 1
	}
	if spec.Alternatives < 2 {
		spec.Alternatives = 2
	}
	if spec.Factions < 1 {
		spec.Factions = 1
	}
	rng := rand.New(rand.NewSource(spec.Seed))

	alternatives := make([]string, spec.Alternatives)
	for i := range alternatives {
		word := alternativeWords[i%len(alternativeWords)]
		name := titleCaser.String(word)
		if i >= len(alternativeWords) {
			name = fmt.Sprintf("%s %d", name, i/len(alternativeWords)+1)
		}
		alternatives[i] = name
	}

	rankings := make([][]string, spec.Factions)
	for f := range rankings {
		ranking := make([]string, len(alternatives))
		copy(ranking, alternatives)
		rng.Shuffle(len(ranking), func(i, j int) {
			ranking[i], ranking[j] = ranking[j], ranking[i]
		})
		rankings[f] = ranking
	}

	factionByVoter := make(map[string]int, spec.Voters)
	pairsPerVoter := spec.Alternatives * (spec.Alternatives - 1) / 2
	records := make([]domain.Comparison, 0, spec.Voters*pairsPerVoter)
	for v := 0; v < spec.Voters; v++ {
		voter := fmt.Sprintf("voter-%04d", v)
		faction := v % spec.Factions
		factionByVoter[voter] = faction

		rank := make(map[string]int, len(alternatives))
		for pos, alt := range rankings[faction] {
			rank[alt] = pos
		}

		for i := 0; i < len(alternatives); i++ {
			for j := i + 1; j < len(alternatives); j++ {
				winner, loser := alternatives[i], alternatives[j]
				if rank[loser] < rank[winner] {
					winner, loser = loser, winner
				}
				if rng.Float64() < spec.Noise {
					winner, loser = loser, winner
				}
				records = append(records, domain.Comparison{
					Winner: winner,
					Loser:  loser,
					Count:  1,
					Voter:  voter,
				})
			}
		}
	}

	return &Electorate{
		Records:         records,
		Alternatives:    alternatives,
		FactionRankings: rankings,
		FactionByVoter:  factionByVoter,
	}
}

// GenerateElectorateDefault creates an electorate with a time-based seed.
func GenerateElectorateDefault(voters, alternatives, factions int, noise float64) *Electorate {
	return GenerateElectorate(ElectorateSpec{
		Voters:       voters,
		Alternatives: alternatives,
		Factions:     factions,
		Noise:        noise,
		Seed:         time.Now().UnixNano(),
	})
}
