package dse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlova/debyecalc/internal/lattice"
)

func TestDistanceMatrix_MatchesPairwise(t *testing.T) {
	t.Parallel()
	points := randomPoints(20, 11)
	d := DistanceMatrix(points)

	r, c := d.Dims()
	require.Equal(t, len(points), r)
	require.Equal(t, len(points), c)

	for i := range points {
		assert.Zero(t, d.At(i, i))
		for j := range points {
			assert.InDelta(t, points[i].Distance(points[j]), d.At(i, j), 1e-9, "pair (%d,%d)", i, j)
			assert.InDelta(t, d.At(j, i), d.At(i, j), 1e-12, "symmetry (%d,%d)", i, j)
		}
	}
}

func TestSquaredDistances_ClampsCancellation(t *testing.T) {
	t.Parallel()
	// Far from the origin the Gram identity loses most of its digits;
	// coincident and near-coincident pairs are the worst case.
	base := lattice.Point{X: 1e4, Y: 1e4, Z: 1e4}
	points := []lattice.Point{base, base, {X: base.X + 1e-8, Y: base.Y, Z: base.Z}}

	sq := SquaredDistances(points)
	for i := range points {
		for j := range points {
			v := sq.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0, "pair (%d,%d)", i, j)
			assert.False(t, math.IsNaN(math.Sqrt(v)), "pair (%d,%d)", i, j)
		}
	}
	assert.Zero(t, sq.At(0, 1))
	assert.Zero(t, sq.At(1, 0))
}

func TestSquaredDistances_EmptySetPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { SquaredDistances(nil) })
}
