package quadrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coord is an integer lattice coordinate identifying a voxel.
type Coord struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	Z int64 `json:"z"`
}

// Add translates c by an offset.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

// Vec converts c to a real point.
func (c Coord) Vec() r3.Vec {
	return r3.Vec{X: Real(c.X), Y: Real(c.Y), Z: Real(c.Z)}
}

func (c Coord) String() string {
	return fmt.Sprintf("{%d, %d, %d}", c.X, c.Y, c.Z)
}

// CoordOf rounds a real point to the nearest lattice coordinate.
func CoordOf(p r3.Vec) Coord {
	return Coord{int64(math.Round(p.X)), int64(math.Round(p.Y)), int64(math.Round(p.Z))}
}

// Neighbors returns the 26 lattice points around c.
func (c Coord) Neighbors() [NumNeighbors]Coord {
	var n [NumNeighbors]Coord
	for i, o := range offsets26 {
		n[i] = c.Add(o)
	}
	return n
}
