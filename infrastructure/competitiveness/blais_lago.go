package competitiveness

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ahrav/go-tally/infrastructure/allocation"
)

// PartyCompetition is one party's contribution to a competition index.
type PartyCompetition struct {
	// Party identifies the party.
	Party string
	// Value is the party's contribution to the index.
	Value float64
}

// ElectoralSystem selects the seat-assignment rule Blais-Lago measures
// distances under.
type ElectoralSystem string

// Supported electoral systems for BlaisLago.
const (
	// SystemDHondt measures distances on the D'Hondt divisor table.
	SystemDHondt ElectoralSystem = "dhondt"
	// SystemHare measures distances against the Hare quota.
	SystemHare ElectoralSystem = "hare"
	// SystemSMP measures distances to the plurality winner.
	SystemSMP ElectoralSystem = "smp"
)

var electoralSystems = []ElectoralSystem{SystemDHondt, SystemHare, SystemSMP}

// BlaisLago computes the Blais-Lago district competitiveness index: for
// each party, the minimum vote change needed to gain (or lose) a seat
// under the chosen electoral system, normalized by the votes-per-seat
// ratio. It returns the summed index and the per-party detail sorted
// descending.
//
// Reference: Blais, A., & Lago, I. (2009). A general measure of district
// competitiveness. Electoral Studies, 28(1).
func BlaisLago(parties []allocation.PartyVotes, seats int, system ElectoralSystem) (float64, []PartyCompetition, error) {
	if seats < 1 {
		return 0, nil, fmt.Errorf("seats must be at least 1, got %d", seats)
	}

	var totalVotes float64
	for _, p := range parties {
		totalVotes += p.Votes
	}
	if totalVotes == 0 || len(parties) == 0 {
		return 0, nil, nil
	}
	votesPerSeat := totalVotes / float64(seats)

	var details []PartyCompetition
	var err error
	switch system {
	case SystemDHondt:
		details, err = blaisLagoDHondt(parties, seats)
	case SystemHare:
		details, err = blaisLagoHare(parties, seats)
	case SystemSMP:
		details = blaisLagoSMP(parties)
	default:
		names := make([]string, len(electoralSystems))
		for i, s := range electoralSystems {
			names[i] = string(s)
		}
		return 0, nil, fmt.Errorf("unknown electoral system %q (supported: %s)", system, strings.Join(names, ", "))
	}
	if err != nil {
		return 0, nil, err
	}

	var index float64
	for i := range details {
		details[i].Value /= votesPerSeat
		index += details[i].Value
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Value != details[j].Value {
			return details[i].Value > details[j].Value
		}
		return details[i].Party < details[j].Party
	})
	return index, details, nil
}

// blaisLagoDHondt measures, for each party, the smallest distance between
// one of its losing divisor-table quotients and the lowest winning
// quotient held by another party, weighted by the seat the party would
// reach.
func blaisLagoDHondt(parties []allocation.PartyVotes, seats int) ([]PartyCompetition, error) {
	winningQuota, err := allocation.WinningQuota(parties, seats)
	if err != nil {
		return nil, err
	}
	seatsByParty, err := allocation.SeatsByParty(parties, seats)
	if err != nil {
		return nil, err
	}

	// Partition the divisor table into winning and losing quotients.
	type quotientRow struct {
		party string
		value float64
	}
	var winning, losing []quotientRow
	for _, p := range parties {
		for divisor := 1; divisor <= seats; divisor++ {
			row := quotientRow{party: p.Party, value: p.Votes / float64(divisor)}
			if row.value >= winningQuota {
				winning = append(winning, row)
			} else {
				losing = append(losing, row)
			}
		}
	}

	// For every losing quotient, the gap to the smallest winning quotient
	// held by a different party; keep each party's minimum gap.
	minGap := make(map[string]float64)
	for _, lose := range losing {
		rivalMin := math.Inf(1)
		for _, win := range winning {
			if win.party != lose.party && win.value < rivalMin {
				rivalMin = win.value
			}
		}
		if math.IsInf(rivalMin, 1) {
			continue
		}
		gap := rivalMin - lose.value
		if current, ok := minGap[lose.party]; !ok || gap < current {
			minGap[lose.party] = gap
		}
	}

	// Union of parties with a measurable gap and parties holding seats.
	partySet := make(map[string]struct{})
	for party := range minGap {
		partySet[party] = struct{}{}
	}
	for party, n := range seatsByParty {
		if n > 0 {
			partySet[party] = struct{}{}
		}
	}

	details := make([]PartyCompetition, 0, len(partySet))
	for party := range partySet {
		gap := minGap[party] // 0 when the party has no losing quotient
		details = append(details, PartyCompetition{
			Party: party,
			Value: gap * float64(seatsByParty[party]+1),
		})
	}
	return details, nil
}

// blaisLagoHare measures each party's distance to the vote total that
// would change its largest-remainder (Hare) allocation by one seat.
func blaisLagoHare(parties []allocation.PartyVotes, seats int) ([]PartyCompetition, error) {
	shares, err := allocation.LargestRemainder(parties, seats, allocation.QuotaHare)
	if err != nil {
		return nil, err
	}
	seatsByParty := make(map[string]int, len(shares))
	for _, s := range shares {
		seatsByParty[s.Party] = s.Seats
	}

	var totalVotes float64
	for _, p := range parties {
		totalVotes += p.Votes
	}
	quota, err := allocation.Quota(allocation.QuotaHare, totalVotes, seats)
	if err != nil {
		return nil, err
	}

	details := make([]PartyCompetition, 0, len(parties))
	for _, p := range parties {
		// Half-seat offset: the midpoint between the party's current
		// allocation and the next seat boundary, nudged off the exact
		// boundary to break quota ties.
		target := (2*float64(seatsByParty[p.Party]) + 1) / 2.0
		target += 0.001
		details = append(details, PartyCompetition{
			Party: p.Party,
			Value: quota*target - p.Votes,
		})
	}
	return details, nil
}

// blaisLagoSMP measures each party's vote distance to the plurality winner.
func blaisLagoSMP(parties []allocation.PartyVotes) []PartyCompetition {
	var max float64
	for _, p := range parties {
		if p.Votes > max {
			max = p.Votes
		}
	}
	details := make([]PartyCompetition, 0, len(parties))
	for _, p := range parties {
		details = append(details, PartyCompetition{Party: p.Party, Value: max - p.Votes})
	}
	return details
}
