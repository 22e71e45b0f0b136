package strategies

import "github.com/ahrav/go-tally/internal/domain"

// threeWayRecords is a small contested electorate over three alternatives
// with every directed matchup observed. Expected outcomes per strategy:
//
//	Borda:    a=180, b=100, c=80
//	Copeland: a=+2,  b=0,   c=-2
//	WinRate:  a=0.72, b=0.4, c=80/220
func threeWayRecords() []domain.Comparison {
	return []domain.Comparison{
		{Winner: "a", Loser: "b", Count: 100},
		{Winner: "a", Loser: "c", Count: 80},
		{Winner: "b", Loser: "a", Count: 40},
		{Winner: "b", Loser: "c", Count: 60},
		{Winner: "c", Loser: "a", Count: 30},
		{Winner: "c", Loser: "b", Count: 50},
	}
}

// symmetricRecords gives every directed matchup the same weight, so no
// alternative dominates any other.
func symmetricRecords() []domain.Comparison {
	return []domain.Comparison{
		{Winner: "a", Loser: "b", Count: 5},
		{Winner: "b", Loser: "a", Count: 5},
		{Winner: "a", Loser: "c", Count: 5},
		{Winner: "c", Loser: "a", Count: 5},
		{Winner: "b", Loser: "c", Count: 5},
		{Winner: "c", Loser: "b", Count: 5},
	}
}
