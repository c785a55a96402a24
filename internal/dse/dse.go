// Package dse evaluates the Debye Scattering Equation for a set of
// atom positions: I(q) = ΣᵢΣⱼ sin(q·dᵢⱼ)/(q·dᵢⱼ) over all ordered
// atom pairs, including the self pairs on the diagonal.
package dse

import (
	"math"

	"github.com/akozlova/debyecalc/internal/lattice"
)

// sinc evaluates sin(q·d)/(q·d), with the degenerate product q·d = 0
// (self pairs, exactly coincident pairs, and q = 0 samples) mapped to
// the limit value 1. The zero check is an exact comparison: a
// near-coincident pair takes the ratio path with a tiny but finite
// argument instead of the limit.
func sinc(q, d float64) float64 {
	x := q * d
	if x == 0 {
		return 1.
	}
	return math.Sin(x) / x
}

// EvaluateSingle computes the scattering intensity at a single q by
// the full ordered double sum over atom pairs. O(N²); an empty point
// set yields 0.
func EvaluateSingle(points []lattice.Point, q float64) float64 {
	intensity := 0.
	for i := range points {
		for j := range points {
			intensity += sinc(q, points[i].Distance(points[j]))
		}
	}
	return intensity
}
