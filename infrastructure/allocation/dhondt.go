// Package allocation provides proportional seat-allocation rules operating
// on per-party vote totals: the D'Hondt highest-averages method and the
// largest-remainder method with Hare, Droop, and Imperiali quotas.
// These rules consume already-aggregated vote tables (for instance a score
// table produced by an aggregation strategy) and feed the
// competitiveness indices.
package allocation

import (
	"fmt"
	"sort"
)

// PartyVotes records one party's vote total.
type PartyVotes struct {
	// Party identifies the party or candidate list.
	Party string
	// Votes is the party's vote total.
	Votes float64
}

// SeatShare records the number of seats allocated to one party.
type SeatShare struct {
	Party string
	Seats int
}

// quotient is one divisor-table entry: a party's votes divided by a
// successive divisor.
type quotient struct {
	party string
	value float64
}

// dhondtQuotients builds the full divisor table votes/1, votes/2, ...,
// votes/seats for every party, sorted descending by value with ties
// broken by party name for determinism.
func dhondtQuotients(parties []PartyVotes, seats int) []quotient {
	quotients := make([]quotient, 0, len(parties)*seats)
	for _, p := range parties {
		for divisor := 1; divisor <= seats; divisor++ {
			quotients = append(quotients, quotient{party: p.Party, value: p.Votes / float64(divisor)})
		}
	}
	sort.SliceStable(quotients, func(i, j int) bool {
		if quotients[i].value != quotients[j].value {
			return quotients[i].value > quotients[j].value
		}
		return quotients[i].party < quotients[j].party
	})
	return quotients
}

// DHondt allocates seats using the D'Hondt (Jefferson) highest-averages
// method: the top `seats` entries of the divisor table each win one seat.
// The result is sorted descending by seats, ties broken by party name.
// Parties winning no seat are omitted, matching the method's summary form.
func DHondt(parties []PartyVotes, seats int) ([]SeatShare, error) {
	if seats < 1 {
		return nil, fmt.Errorf("seats must be at least 1, got %d", seats)
	}
	if len(parties) == 0 {
		return nil, nil
	}

	quotients := dhondtQuotients(parties, seats)
	if len(quotients) > seats {
		quotients = quotients[:seats]
	}

	counts := make(map[string]int)
	for _, q := range quotients {
		counts[q.party]++
	}

	shares := make([]SeatShare, 0, len(counts))
	for party, n := range counts {
		shares = append(shares, SeatShare{Party: party, Seats: n})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Seats != shares[j].Seats {
			return shares[i].Seats > shares[j].Seats
		}
		return shares[i].Party < shares[j].Party
	})
	return shares, nil
}

// WinningQuota returns the value of the last quotient that wins a seat
// under D'Hondt, the threshold the competitiveness indices measure
// distances against.
func WinningQuota(parties []PartyVotes, seats int) (float64, error) {
	if seats < 1 {
		return 0, fmt.Errorf("seats must be at least 1, got %d", seats)
	}
	quotients := dhondtQuotients(parties, seats)
	if len(quotients) < seats {
		return 0, fmt.Errorf("not enough quotients: %d parties for %d seats", len(parties), seats)
	}
	return quotients[seats-1].value, nil
}

// SeatsByParty returns the D'Hondt allocation as a lookup map, with
// seatless parties present at 0.
func SeatsByParty(parties []PartyVotes, seats int) (map[string]int, error) {
	shares, err := DHondt(parties, seats)
	if err != nil {
		return nil, err
	}
	byParty := make(map[string]int, len(parties))
	for _, p := range parties {
		byParty[p.Party] = 0
	}
	for _, s := range shares {
		byParty[s.Party] = s.Seats
	}
	return byParty, nil
}
