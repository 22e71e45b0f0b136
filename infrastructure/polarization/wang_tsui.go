package polarization

import (
	"math"
	"sort"
)

// WangTsui computes the Wang-Tsui (2000) polarization coefficient: the
// population-weighted deviation of each group's characteristic from the
// median,
//
//	K · Σ w_i |(y_i − median)/median|^γ / Σ w_i
//
// gamma tunes the sensitivity to large deviations; higher values weight
// them more. A zero median or zero total population is a degenerate input
// and yields 0 rather than a division artifact.
//
// Reference: Wang, Y. Q., & Tsui, K. Y. (2000). Polarization orderings
// and new classes of polarization indices. Journal of Public Economic
// Theory, 2(3).
func WangTsui(groups []Group, k, gamma float64) float64 {
	if len(groups) == 0 {
		return 0
	}

	values := make([]float64, len(groups))
	var population float64
	for i, g := range groups {
		values[i] = g.Value
		population += g.Weight
	}
	med := median(values)
	if med == 0 || population == 0 {
		return 0
	}

	var sum float64
	for _, g := range groups {
		sum += g.Weight * math.Pow(math.Abs((g.Value-med)/med), gamma)
	}
	return k * sum / population
}

// median returns the statistical median: the middle value for odd counts,
// the mean of the two middle values for even counts.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
