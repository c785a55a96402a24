package lattice

import "fmt"

// Cube builds a simple cubic lattice with spacing latticeParam filling a
// cube of edge length. Points sit at integer multiples of the spacing,
// ordered x-major for reproducible indexing.
func Cube(latticeParam, length float64) []Point {
	steps := int(length / latticeParam)
	points := make([]Point, 0, steps*steps*steps)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			for k := 0; k < steps; k++ {
				points = append(points, Point{
					X: float64(i) * latticeParam,
					Y: float64(j) * latticeParam,
					Z: float64(k) * latticeParam,
				})
			}
		}
	}
	return points
}

// Sphere builds the same cubic lattice clipped to the sphere inscribed
// in the cube of edge length (radius length/2, centered in the cube).
func Sphere(latticeParam, length float64) []Point {
	steps := int(length / latticeParam)
	radius := length / 2.
	center := Point{radius, radius, radius}
	var points []Point
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			for k := 0; k < steps; k++ {
				p := Point{
					X: float64(i) * latticeParam,
					Y: float64(j) * latticeParam,
					Z: float64(k) * latticeParam,
				}
				if p.Sub(center).NormSq() <= radius*radius {
					points = append(points, p)
				}
			}
		}
	}
	return points
}

// Build dispatches to the named lattice shape.
func Build(shape string, latticeParam, length float64) ([]Point, error) {
	switch shape {
	case "cube":
		return Cube(latticeParam, length), nil
	case "sphere":
		return Sphere(latticeParam, length), nil
	default:
		return nil, fmt.Errorf("unknown shape %q: supported shapes are \"cube\" and \"sphere\"", shape)
	}
}
