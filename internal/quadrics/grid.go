package quadrics

import (
	"math"
	"math/bits"
	"sync/atomic"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Bounds is the box [Min.X,Max.X) × [Min.Y,Max.Y) × [Min.Z,Max.Z).
type Bounds struct {
	Min Coord `json:"min"`
	Max Coord `json:"max"`
}

// Cube returns the bounds [lo,hi) on every axis.
func Cube(lo, hi int64) Bounds {
	return Bounds{Min: Coord{lo, lo, lo}, Max: Coord{hi, hi, hi}}
}

func (b Bounds) spans() (nx, ny, nz int64) {
	return b.Max.X - b.Min.X, b.Max.Y - b.Min.Y, b.Max.Z - b.Min.Z
}

// Validate checks that every axis is non-empty and that the volume fits in
// an int64 (and therefore a slice index).
func (b Bounds) Validate() error {
	if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y || b.Max.Z <= b.Min.Z {
		return errors.New("bounds must have max > min on every axis").
			WithType(ErrTypeInvalidBounds).
			WithTag("min", b.Min.String()).
			WithTag("max", b.Max.String())
	}
	nx, ny, nz := b.spans()
	overflow := nx <= 0 || ny <= 0 || nz <= 0
	if !overflow {
		hi, lo := bits.Mul64(uint64(nx), uint64(ny))
		if hi == 0 {
			hi, lo = bits.Mul64(lo, uint64(nz))
		}
		overflow = hi != 0 || lo > math.MaxInt64
	}
	if overflow {
		return errors.New("bounds volume overflows").
			WithType(ErrTypeVolumeOverflow).
			WithTag("min", b.Min.String()).
			WithTag("max", b.Max.String())
	}
	return nil
}

// Volume returns the number of lattice points in b. b must be valid.
func (b Bounds) Volume() int64 {
	nx, ny, nz := b.spans()
	return nx * ny * nz
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X < b.Max.X &&
		c.Y >= b.Min.Y && c.Y < b.Max.Y &&
		c.Z >= b.Min.Z && c.Z < b.Max.Z
}

// IndexOf maps c to its row-major (x, then y, then z) index. c must be inside b.
func (b Bounds) IndexOf(c Coord) int64 {
	_, ny, nz := b.spans()
	return ((c.X-b.Min.X)*ny+(c.Y-b.Min.Y))*nz + (c.Z - b.Min.Z)
}

// CoordAt is the inverse of IndexOf for i in [0, Volume()).
func (b Bounds) CoordAt(i int64) Coord {
	_, ny, nz := b.spans()
	return Coord{
		X: i/(ny*nz) + b.Min.X,
		Y: i%(ny*nz)/nz + b.Min.Y,
		Z: i%nz + b.Min.Z,
	}
}

// Voxel is one lattice point of a Grid. Plotted is written exactly once, by
// the goroutine whose TryClaim succeeded, and is only meaningful after that.
type Voxel struct {
	X, Y, Z int64
	claimed atomic.Bool
	Plotted bool
}

// TryClaim takes the voxel's single claim token. It never blocks: exactly
// one call over the lifetime of the grid returns true.
func (v *Voxel) TryClaim() bool {
	return v.claimed.CompareAndSwap(false, true)
}

// Claimed reports whether some traversal already took the token.
func (v *Voxel) Claimed() bool { return v.claimed.Load() }

// Grid is a dense voxel array over Bounds. After NewGrid returns, the only
// state shared between traversals is each voxel's claim token.
type Grid struct {
	Bounds
	Voxels []Voxel
}

// NewGrid allocates the grid and initializes every voxel's coordinates with
// its claim token available.
func NewGrid(b Bounds) (*Grid, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	vol := b.Volume()
	g := &Grid{
		Bounds: b,
		Voxels: make([]Voxel, vol),
	}
	for i := range g.Voxels {
		c := b.CoordAt(int64(i))
		g.Voxels[i].X, g.Voxels[i].Y, g.Voxels[i].Z = c.X, c.Y, c.Z
	}
	DebugLog("Created grid min=%v max=%v volume=%d", b.Min, b.Max, vol)
	return g, nil
}

// Free releases the voxel array. Callers must have joined every traversal
// over g first.
func (g *Grid) Free() {
	g.Voxels = nil
}

// Box returns the grid box.
func (g *Grid) Box() Bounds { return g.Bounds }

// Voxel returns the voxel at c, or nil when c is outside the grid.
func (g *Grid) Voxel(c Coord) *Voxel {
	if !g.Contains(c) {
		return nil
	}
	return &g.Voxels[g.IndexOf(c)]
}

// PlottedAt reports the classification flag at c. Only valid once every
// traversal over g has finished.
func (g *Grid) PlottedAt(c Coord) bool {
	v := g.Voxel(c)
	return v != nil && v.Plotted
}

// Count returns the number of plotted voxels.
func (g *Grid) Count() int64 {
	var n int64
	for i := range g.Voxels {
		if g.Voxels[i].Plotted {
			n++
		}
	}
	return n
}
