package dse

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/akozlova/debyecalc/internal/lattice"
)

// SquaredDistances returns the N×N matrix of squared pair distances,
// derived from a single Gram-matrix product through the identity
// ‖rᵢ−rⱼ‖² = ‖rᵢ‖² + ‖rⱼ‖² − 2·rᵢ·rⱼ. Cancellation can push the
// identity slightly negative for near-coincident pairs; those entries
// are clamped to zero so the square root never produces NaN.
// Requires a non-empty point set.
func SquaredDistances(points []lattice.Point) *mat.Dense {
	n := len(points)
	coords := mat.NewDense(n, 3, nil)
	for i, p := range points {
		coords.SetRow(i, []float64{p.X, p.Y, p.Z})
	}
	var gram mat.Dense
	gram.Mul(coords, coords.T())

	sq := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		normI := gram.At(i, i)
		for j := 0; j < n; j++ {
			d2 := normI + gram.At(j, j) - 2*gram.At(i, j)
			if d2 < 0 {
				d2 = 0
			}
			sq.Set(i, j, d2)
		}
	}
	return sq
}

// DistanceMatrix is SquaredDistances with the square root applied:
// symmetric, non-negative, exactly zero on the diagonal.
func DistanceMatrix(points []lattice.Point) *mat.Dense {
	d := SquaredDistances(points)
	d.Apply(func(_, _ int, v float64) float64 { return math.Sqrt(v) }, d)
	return d
}
