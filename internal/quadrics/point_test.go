package quadrics

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestOffsets26(t *testing.T) {
	seen := make(map[Coord]bool)
	for _, o := range offsets26 {
		if o == (Coord{}) {
			t.Fatalf("zero offset present")
		}
		if o.X < -1 || o.X > 1 || o.Y < -1 || o.Y > 1 || o.Z < -1 || o.Z > 1 {
			t.Fatalf("offset out of range: %v", o)
		}
		seen[o] = true
	}
	require.Len(t, seen, NumNeighbors)
}

func TestCoordNeighbors(t *testing.T) {
	c := Coord{5, -3, 7}
	for _, n := range c.Neighbors() {
		d := Coord{n.X - c.X, n.Y - c.Y, n.Z - c.Z}
		require.NotEqual(t, Coord{}, d)
		require.LessOrEqual(t, max(abs64(d.X), abs64(d.Y), abs64(d.Z)), int64(1))
	}
}

func TestCoordConversions(t *testing.T) {
	c := Coord{1, -2, 3}
	require.Equal(t, r3.Vec{X: 1, Y: -2, Z: 3}, c.Vec())
	require.Equal(t, c, CoordOf(c.Vec()))
	require.Equal(t, Coord{2, -3, 0}, CoordOf(r3.Vec{X: 1.6, Y: -2.7, Z: 0.2}))
	require.Equal(t, "{1, -2, 3}", c.String())
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
