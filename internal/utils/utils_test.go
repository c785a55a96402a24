package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlova/debyecalc/internal/lattice"
)

func TestArgmax(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Argmax([]float64{1, 3, 7, 2}))
	assert.Equal(t, 0, Argmax([]float64{5, 5, 5}))
}

func TestAverage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2.0, Average([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, Average([]int{2, 3}))
}

func TestTableIntegrate(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 3.0, TableIntegrate([]float64{1, 2, 3}, nil, 0.5), 1e-12)
	assert.InDelta(t, 2.0, TableIntegrate([]float64{1, 2, 3}, func(x float64) float64 { return x }, 0.5), 1e-12)
}

func TestReadPoints(t *testing.T) {
	t.Parallel()
	write := func(body string) string {
		path := filepath.Join(t.TempDir(), "atoms.xyz")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		points, err := ReadPoints(write("0 0 0\n1.5 2 -3\n\n0.25\t0.5\t0.75\n"))
		require.NoError(t, err)
		assert.Equal(t, []lattice.Point{
			{},
			{X: 1.5, Y: 2, Z: -3},
			{X: 0.25, Y: 0.5, Z: 0.75},
		}, points)
	})

	t.Run("wrong column count", func(t *testing.T) {
		t.Parallel()
		_, err := ReadPoints(write("1 2\n"))
		assert.ErrorContains(t, err, "expected 3 coordinates")
	})

	t.Run("non-numeric", func(t *testing.T) {
		t.Parallel()
		_, err := ReadPoints(write("a b c\n"))
		assert.ErrorContains(t, err, "error parsing float")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ReadPoints(filepath.Join(t.TempDir(), "nope.xyz"))
		assert.Error(t, err)
	})
}

func TestGetFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "atoms", GetFilename("/data/runs/atoms.xyz"))
	assert.Equal(t, "atoms", GetFilename("atoms"))
}

func TestOutputPath(t *testing.T) {
	t.Parallel()
	base := t.TempDir() + "/"

	flat, err := OutputPath(false, base, "sphere30", "intensity", ".csv")
	require.NoError(t, err)
	assert.Equal(t, base+"sphere30_intensity.csv", flat)

	nested, err := OutputPath(true, base, "sphere30", "intensity", ".csv")
	require.NoError(t, err)
	assert.Equal(t, base+"sphere30/intensity.csv", nested)
	assert.DirExists(t, base+"sphere30")
}
