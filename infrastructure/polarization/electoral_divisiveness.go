package polarization

import "sort"

// UnitReturn records one candidate's vote total inside one electoral unit.
type UnitReturn struct {
	// Unit identifies the electoral unit.
	Unit string
	// Candidate identifies the candidate or party.
	Candidate string
	// Votes is the candidate's vote total in the unit.
	Votes float64
}

// CandidateDivisiveness is one candidate's geographic dispersion value.
type CandidateDivisiveness struct {
	// Candidate identifies the candidate.
	Candidate string
	// Antagonism is the candidate's dispersion of support across units.
	Antagonism float64
}

// ElectoralDivisiveness computes the electoral divisiveness coefficient
// of Navarrete et al. (2023): for each candidate, the vote-weighted
// absolute deviation of its per-unit vote share from its overall vote
// weight, normalized by the number of rival candidates and the
// candidate's vote total. It captures how much a candidate's support
// varies geographically.
//
// Returns the overall coefficient (the sum of per-candidate antagonism)
// and the per-candidate detail sorted descending. A candidate with zero
// votes contributes 0; fewer than 2 candidates yields (0, nil).
func ElectoralDivisiveness(rows []UnitReturn) (float64, []CandidateDivisiveness) {
	votes := make(map[string]map[string]float64)
	unitTotals := make(map[string]float64)
	unitSet := make(map[string]struct{})
	for _, r := range rows {
		if votes[r.Candidate] == nil {
			votes[r.Candidate] = make(map[string]float64)
		}
		votes[r.Candidate][r.Unit] += r.Votes
		unitTotals[r.Unit] += r.Votes
		unitSet[r.Unit] = struct{}{}
	}

	candidates := make([]string, 0, len(votes))
	for c := range votes {
		candidates = append(candidates, c)
	}
	sort.Strings(candidates)
	units := make([]string, 0, len(unitSet))
	for u := range unitSet {
		units = append(units, u)
	}
	sort.Strings(units)

	n := len(candidates)
	if n < 2 {
		return 0, nil
	}

	var grandTotal float64
	candidateTotals := make(map[string]float64, n)
	for _, c := range candidates {
		for _, u := range units {
			candidateTotals[c] += votes[c][u]
		}
		grandTotal += candidateTotals[c]
	}
	if grandTotal == 0 {
		return 0, nil
	}

	details := make([]CandidateDivisiveness, 0, n)
	var value float64
	for _, c := range candidates {
		// The candidate's overall weight is the share of all votes it
		// received; per-unit shares are measured against it.
		weight := candidateTotals[c] / grandTotal

		var weighted float64
		for _, u := range units {
			var share float64
			if unitTotals[u] > 0 {
				share = votes[c][u] / unitTotals[u]
			}
			deviation := share - weight
			if deviation < 0 {
				deviation = -deviation
			}
			weighted += votes[c][u] * deviation
		}
		weighted /= float64(n - 1)

		var antagonism float64
		if candidateTotals[c] > 0 {
			antagonism = weighted / candidateTotals[c]
		}
		value += antagonism
		details = append(details, CandidateDivisiveness{Candidate: c, Antagonism: antagonism})
	}

	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Antagonism != details[j].Antagonism {
			return details[i].Antagonism > details[j].Antagonism
		}
		return details[i].Candidate < details[j].Candidate
	})
	return value, details
}
