package competitiveness

import "sort"

// UnitVotes records one candidate's vote total inside one electoral unit
// (district, region, polling place).
type UnitVotes struct {
	// Unit identifies the electoral unit.
	Unit string
	// Candidate identifies the candidate or party.
	Candidate string
	// Votes is the candidate's vote total in the unit.
	Votes float64
}

// CandidateAntagonism is one candidate's between-unit competitiveness
// contribution.
type CandidateAntagonism struct {
	// Candidate identifies the candidate.
	Candidate string
	// Antagonism is the candidate's contribution to the index.
	Antagonism float64
}

// ElectionCompetitiveness measures how closely matched candidates are
// across electoral units: for every candidate, its unit-level votes are
// weighted by how near its vote share lies to each rival's share in the
// same unit, and normalized by the candidate's vote total. Higher values
// indicate more competitive elections. Vote shares are derived per unit
// from the supplied totals.
//
// Returns the overall index (the sum of per-candidate antagonism) and the
// per-candidate detail sorted descending.
func ElectionCompetitiveness(rows []UnitVotes) (float64, []CandidateAntagonism) {
	votes, shares, units, candidates := pivotShares(rows)
	n := len(candidates)
	if n < 2 {
		return 0, nil
	}

	details := make([]CandidateAntagonism, 0, n)
	var index float64
	for _, c := range candidates {
		var total float64
		for _, u := range units {
			total += votes[c][u]
		}

		var antagonism float64
		if total > 0 {
			var sum float64
			for _, rival := range candidates {
				if rival == c {
					continue
				}
				for _, u := range units {
					diff := shares[c][u] - shares[rival][u]
					if diff < 0 {
						diff = -diff
					}
					sum += votes[c][u] * (1 - diff)
				}
			}
			antagonism = sum / (float64(n) * float64(n-1) * total)
		}

		index += antagonism
		details = append(details, CandidateAntagonism{Candidate: c, Antagonism: antagonism})
	}

	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Antagonism != details[j].Antagonism {
			return details[i].Antagonism > details[j].Antagonism
		}
		return details[i].Candidate < details[j].Candidate
	})
	return index, details
}

// pivotShares organizes rows into candidate×unit vote and share lookup
// tables with deterministic orderings. A unit with zero total votes
// yields zero shares.
func pivotShares(rows []UnitVotes) (votes, shares map[string]map[string]float64, units, candidates []string) {
	votes = make(map[string]map[string]float64)
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

	for u := range unitSet {
		units = append(units, u)
	}
	sort.Strings(units)
	for c := range votes {
		candidates = append(candidates, c)
	}
	sort.Strings(candidates)

	shares = make(map[string]map[string]float64, len(candidates))
	for _, c := range candidates {
		shares[c] = make(map[string]float64, len(units))
		for _, u := range units {
			if unitTotals[u] > 0 {
				shares[c][u] = votes[c][u] / unitTotals[u]
			}
		}
	}
	return votes, shares, units, candidates
}
