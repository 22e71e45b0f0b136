package allocation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// QuotaMethod selects the quota formula for largest-remainder allocation.
type QuotaMethod string

// Supported quota formulas.
const (
	// QuotaHare is total votes / seats.
	QuotaHare QuotaMethod = "hare"
	// QuotaDroop is floor(total votes / (seats + 1)) + 1.
	QuotaDroop QuotaMethod = "droop"
	// QuotaImperiali is total votes / (seats + 2).
	QuotaImperiali QuotaMethod = "imperiali"
)

var quotaMethods = []QuotaMethod{QuotaHare, QuotaDroop, QuotaImperiali}

// Quota computes the per-seat vote quota for the given method.
// Unknown methods fail fast, identifying the invalid name and the list of
// supported names.
func Quota(method QuotaMethod, totalVotes float64, seats int) (float64, error) {
	if seats < 1 {
		return 0, fmt.Errorf("seats must be at least 1, got %d", seats)
	}
	switch method {
	case QuotaHare:
		return totalVotes / float64(seats), nil
	case QuotaDroop:
		return math.Floor(totalVotes/float64(seats+1)) + 1, nil
	case QuotaImperiali:
		return totalVotes / float64(seats+2), nil
	default:
		names := make([]string, len(quotaMethods))
		for i, m := range quotaMethods {
			names[i] = string(m)
		}
		return 0, fmt.Errorf("unknown quota method %q (supported: %s)", method, strings.Join(names, ", "))
	}
}

// LargestRemainder allocates seats proportionally: each party first
// receives the whole number of quotas its votes contain, then the
// remaining seats go to the parties with the largest fractional
// remainders. The result covers every party, sorted descending by seats
// with ties broken by party name.
func LargestRemainder(parties []PartyVotes, seats int, method QuotaMethod) ([]SeatShare, error) {
	if seats < 1 {
		return nil, fmt.Errorf("seats must be at least 1, got %d", seats)
	}

	var total float64
	for _, p := range parties {
		total += p.Votes
	}
	quota, err := Quota(method, total, seats)
	if err != nil {
		return nil, err
	}
	if quota <= 0 {
		return nil, fmt.Errorf("quota must be positive, got %v (total votes %v)", quota, total)
	}

	type allocation struct {
		party     string
		seats     int
		remainder float64
	}
	allocations := make([]allocation, 0, len(parties))
	allocated := 0
	for _, p := range parties {
		exact := p.Votes / quota
		whole := int(exact)
		allocations = append(allocations, allocation{
			party:     p.Party,
			seats:     whole,
			remainder: exact - float64(whole),
		})
		allocated += whole
	}

	// Hand out what remains by largest fractional remainder.
	remaining := seats - allocated
	if remaining > 0 {
		byRemainder := make([]*allocation, len(allocations))
		for i := range allocations {
			byRemainder[i] = &allocations[i]
		}
		sort.SliceStable(byRemainder, func(i, j int) bool {
			if byRemainder[i].remainder != byRemainder[j].remainder {
				return byRemainder[i].remainder > byRemainder[j].remainder
			}
			return byRemainder[i].party < byRemainder[j].party
		})
		for i := 0; i < remaining && i < len(byRemainder); i++ {
			byRemainder[i].seats++
		}
	}

	shares := make([]SeatShare, 0, len(allocations))
	for _, a := range allocations {
		shares = append(shares, SeatShare{Party: a.party, Seats: a.seats})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].Seats != shares[j].Seats {
			return shares[i].Seats > shares[j].Seats
		}
		return shares[i].Party < shares[j].Party
	})
	return shares, nil
}
