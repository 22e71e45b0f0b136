package polarization

// ReynalQuerol computes the Reynal-Querol (2002) polarization index
//
//	RQ = 1 − Σ ((0.5 − π_i)/0.5)² π_i
//
// over group population shares (expected to sum to 1). The index ranges
// from 0 (no polarization) to 1, its maximum, reached by exactly two
// groups of equal size. It captures distance from a bipolar distribution
// rather than fragmentation.
//
// Reference: Reynal-Querol, M. (2002). Ethnicity, political systems, and
// civil wars. Journal of Conflict Resolution, 46(1).
func ReynalQuerol(shares []float64) float64 {
	var sum float64
	for _, share := range shares {
		deviation := (0.5 - share) / 0.5
		sum += deviation * deviation * share
	}
	return 1 - sum
}
