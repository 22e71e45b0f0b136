// Package polarization provides closed-form polarization indices over
// grouped population data: Esteban-Ray, Reynal-Querol, Wang-Tsui, and the
// electoral divisiveness coefficient over unit-level vote returns.
// These are one-shot formula evaluations; they consume aggregated tables
// (including score tables produced by the aggregation strategies) and
// perform no iterative computation.
package polarization

import (
	"math"

	"github.com/ahrav/go-tally/internal/domain"
)

// Group is one population group: a mass and a measured characteristic.
type Group struct {
	// Weight is the group's mass (population share or count).
	Weight float64
	// Value is the characteristic being compared across groups
	// (income, score, rate).
	Value float64
}

// EstebanRay computes the Esteban-Ray (1994) polarization coefficient
//
//	K · Σ_i Σ_j π_i^(1+α) π_j |y_i − y_j|
//
// alpha must lie in [0, 1.6), the range established in the source paper;
// out-of-range values fail fast with a range error and are never clamped.
// When k is 0 the scaling constant defaults to 1/(Σπ)^(2+α).
//
// Reference: Esteban, J. M., & Ray, D. (1994). On the measurement of
// polarization. Econometrica.
func EstebanRay(groups []Group, alpha, k float64) (float64, error) {
	if alpha < 0 || alpha >= 1.6 {
		return 0, domain.NewRangeError("alpha", alpha, "[0, 1.6)")
	}
	if len(groups) == 0 {
		return 0, nil
	}

	if k == 0 {
		var totalWeight float64
		for _, g := range groups {
			totalWeight += g.Weight
		}
		if totalWeight == 0 {
			return 0, nil
		}
		k = 1 / math.Pow(totalWeight, 2+alpha)
	}

	var sum float64
	for _, gi := range groups {
		wi := math.Pow(gi.Weight, 1+alpha)
		for _, gj := range groups {
			sum += wi * gj.Weight * math.Abs(gi.Value-gj.Value)
		}
	}
	return k * sum, nil
}
