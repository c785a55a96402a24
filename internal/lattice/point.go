package lattice

import "math"

// Point is an atom position in real space. Coordinates share whatever
// length unit the lattice parameter was given in (the scattering vector
// q is then in the reciprocal of that unit).
type Point struct {
	X, Y, Z float64
}

func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

func (p Point) Dot(o Point) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

func (p Point) NormSq() float64 {
	return p.Dot(p)
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.NormSq())
}

// Distance is the Euclidean distance to o. Always non-negative,
// exactly zero for coincident points.
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Norm()
}
