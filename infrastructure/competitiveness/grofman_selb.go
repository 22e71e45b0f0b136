package competitiveness

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahrav/go-tally/infrastructure/allocation"
)

// PartyCompetitionDetail carries the gain and loss margins behind one
// party's Grofman-Selb competition score.
type PartyCompetitionDetail struct {
	// Party identifies the party.
	Party string
	// Gain is the margin to the party's next seat.
	Gain float64
	// Loss is the margin to the party's last seat being taken.
	Loss float64
	// Competition is the party's normalized competition score.
	Competition float64
}

// GrofmanSelb computes the Grofman-Selb index of political competition C,
// based on the threshold of exclusion T_e = 1/(seats+1) and D'Hondt seat
// allocation: for every seat-winning party, how close it stands to
// gaining another seat or losing one, normalized by T_e and weighted by
// vote share. Vote totals are expected as shares for the thresholds to be
// meaningful.
//
// Reference: Grofman, B., & Selb, P. (2009). A fully general index of
// political competition. Electoral Studies, 28(2).
func GrofmanSelb(parties []allocation.PartyVotes, seats int) (float64, []PartyCompetitionDetail, error) {
	if seats < 1 {
		return 0, nil, fmt.Errorf("seats must be at least 1, got %d", seats)
	}
	if len(parties) == 0 {
		return 0, nil, nil
	}

	exclusionThreshold := 1 / float64(seats+1)

	winningQuota, err := allocation.WinningQuota(parties, seats)
	if err != nil {
		return 0, nil, err
	}
	seatsByParty, err := allocation.SeatsByParty(parties, seats)
	if err != nil {
		return 0, nil, err
	}
	votesByParty := make(map[string]float64, len(parties))
	for _, p := range parties {
		votesByParty[p.Party] = p.Votes
	}

	// Parties holding at least one seat that also left a losing quotient
	// on the divisor table: the pool a marginal seat can move within.
	marginalPool := make([]string, 0, len(parties))
	for _, p := range parties {
		if seatsByParty[p.Party] == 0 {
			continue
		}
		lowestQuotient := p.Votes / float64(seats)
		if lowestQuotient < winningQuota {
			marginalPool = append(marginalPool, p.Party)
		}
	}
	sort.Strings(marginalPool)

	// Winning parties, in deterministic order.
	winners := make([]string, 0, len(parties))
	for _, p := range parties {
		if seatsByParty[p.Party] > 0 {
			winners = append(winners, p.Party)
		}
	}
	sort.Strings(winners)

	var index float64
	details := make([]PartyCompetitionDetail, 0, len(winners))
	for _, party := range winners {
		s := float64(seatsByParty[party])
		v := votesByParty[party]

		// Margin before a rival in the marginal pool takes this party's
		// last seat: the D'Hondt transfer condition between the party's
		// s-th quotient and the rival's next quotient.
		loss := math.Inf(1)
		for _, rival := range marginalPool {
			if rival == party {
				continue
			}
			rivalNext := float64(seatsByParty[rival] + 1)
			margin := (rivalNext*v - s*votesByParty[rival]) / (rivalNext + s)
			if margin < loss {
				loss = margin
			}
		}

		// Margin before the party gains its next seat against the
		// threshold of exclusion.
		gain := (1+s)/float64(seats+1) - v

		competition := math.Max(exclusionThreshold-gain, exclusionThreshold-loss) / exclusionThreshold
		index += competition * v

		details = append(details, PartyCompetitionDetail{
			Party:       party,
			Gain:        gain,
			Loss:        loss,
			Competition: competition,
		})
	}
	return index, details, nil
}
