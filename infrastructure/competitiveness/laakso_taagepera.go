// Package competitiveness provides election-competitiveness indices built
// on top of aggregated vote tables and the seat-allocation rules:
// Laakso-Taagepera effective party count, the Blais-Lago and Grofman-Selb
// competition indices, and a between-unit candidate competitiveness
// measure.
package competitiveness

import (
	"math"

	"github.com/ahrav/go-tally/internal/domain"
)

// LaaksoTaagepera computes the effective number of parties
//
//	N_eff = (Σ s_i^α)^(1/(1−α))
//
// over vote or seat shares. alpha conventionally equals 2. alpha must be
// positive and different from 1 (the formula's exponent is undefined at
// 1); out-of-range values fail fast and are never clamped.
//
// Reference: Laakso, M., & Taagepera, R. (1979). "Effective" number of
// parties: a measure with application to West Europe.
func LaaksoTaagepera(shares []float64, alpha float64) (float64, error) {
	if alpha <= 0 || alpha == 1 {
		return 0, domain.NewRangeError("alpha", alpha, "(0, 1) ∪ (1, ∞)")
	}

	var sum float64
	for _, s := range shares {
		sum += math.Pow(s, alpha)
	}
	if sum == 0 {
		return 0, nil
	}
	return math.Pow(sum, 1/(1-alpha)), nil
}
