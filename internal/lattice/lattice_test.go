package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Ops(t *testing.T) {
	t.Parallel()
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 6, Z: 3}

	assert.Equal(t, Point{X: -3, Y: -4, Z: 0}, a.Sub(b))
	assert.Equal(t, 25.0, a.Sub(b).NormSq())
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
	assert.Zero(t, a.Distance(a))
	assert.Equal(t, 1*4.+2*6.+3*3., a.Dot(b))
}

func TestCube_Count(t *testing.T) {
	t.Parallel()
	assert.Len(t, Cube(1, 3), 27)
	// floor(30 / 3.89) = 7 steps per axis.
	assert.Len(t, Cube(3.89, 30), 7*7*7)
	assert.Empty(t, Cube(2, 1))
}

func TestCube_Spacing(t *testing.T) {
	t.Parallel()
	points := Cube(2.5, 6)
	require.Len(t, points, 8)
	assert.Equal(t, Point{}, points[0])
	assert.Equal(t, Point{X: 2.5, Y: 2.5, Z: 2.5}, points[7])
}

func TestSphere_InsideRadius(t *testing.T) {
	t.Parallel()
	const latticeParam, length = 1.0, 10.0
	sphere := Sphere(latticeParam, length)
	cube := Cube(latticeParam, length)

	require.NotEmpty(t, sphere)
	assert.Less(t, len(sphere), len(cube))

	center := Point{X: length / 2, Y: length / 2, Z: length / 2}
	for _, p := range sphere {
		assert.LessOrEqual(t, p.Distance(center), length/2+1e-12)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	cube, err := Build("cube", 1, 4)
	require.NoError(t, err)
	assert.Len(t, cube, 64)

	sphere, err := Build("sphere", 1, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, sphere)

	_, err = Build("dodecahedron", 1, 4)
	assert.ErrorContains(t, err, "unknown shape")
}
