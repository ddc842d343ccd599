package quadrics

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestFindSurfaceSphere(t *testing.T) {
	s := Sphere(10)
	for _, start := range []r3.Vec{{}, {X: 30, Y: -2, Z: 7}, {X: 10}, {X: -3, Y: 4, Z: 1}} {
		p, ok := FindSurface(s, start)
		require.True(t, ok, "start %+v", start)
		require.True(t, IsSurface(s, p), "start %+v ended at %+v", start, p)
	}
}

func TestFindSurfaceStartOnSurface(t *testing.T) {
	start := r3.Vec{X: 10}
	p, ok := FindSurface(Sphere(10), start)
	require.True(t, ok)
	require.Equal(t, start, p)
}

func TestFindSurfaceStalls(t *testing.T) {
	// x² + y² + z² + 1 has no real zero; the origin is the global minimum
	q := Quadric{A: 1, B: 1, C: 1, J: 1}
	_, ok := FindSurface(q, r3.Vec{})
	require.False(t, ok)

	_, ok = FindSurface(q, r3.Vec{X: 5, Y: -5, Z: 2})
	require.False(t, ok)
}

func TestFindSurfaceStepLimit(t *testing.T) {
	q := Quadric{G: 1, J: -1000.25}

	_, ok := findSurface(q, r3.Vec{}, 10)
	require.False(t, ok)

	p, ok := findSurface(q, r3.Vec{}, MaxSeekSteps)
	require.True(t, ok)
	require.Equal(t, Real(1000), p.X)
}
