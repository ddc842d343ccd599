package quadrics

import (
	"math/bits"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Plotter is read-only access to a finished grid, used by the renderers.
type Plotter interface {
	Box() Bounds
	PlottedAt(c Coord) bool
}

// Frozen is an immutable, bit-packed snapshot of a grid's plotted flags.
// Bit i (byte i/8, bit i%8, least significant first) is the flag of voxel i.
type Frozen struct {
	Bounds
	bits []byte
}

func packedLen(volume int64) int64 { return (volume + 7) / 8 }

// Freeze packs the plotted flags of g. Every traversal over g must be done.
func Freeze(g *Grid) *Frozen {
	f := &Frozen{
		Bounds: g.Bounds,
		bits:   make([]byte, packedLen(int64(len(g.Voxels)))),
	}
	for i := range g.Voxels {
		if g.Voxels[i].Plotted {
			f.bits[i>>3] |= 1 << (i & 7)
		}
	}
	return f
}

// NewFrozen wraps a packed bit array. The array is copied and padding bits
// past the last voxel are cleared.
func NewFrozen(b Bounds, packed []byte) (*Frozen, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if want := packedLen(b.Volume()); int64(len(packed)) != want {
		return nil, errors.New("packed length does not match bounds").
			WithType(ErrTypeInvalidFrozen).
			WithTag("got", len(packed)).
			WithTag("want", want)
	}
	f := &Frozen{Bounds: b, bits: append([]byte(nil), packed...)}
	if r := b.Volume() & 7; r != 0 {
		f.bits[len(f.bits)-1] &= byte(1)<<r - 1
	}
	return f, nil
}

// Box returns the snapshot box.
func (f *Frozen) Box() Bounds { return f.Bounds }

// Plotted reports the flag of voxel i.
func (f *Frozen) Plotted(i int64) bool {
	return f.bits[i>>3]&(1<<(i&7)) != 0
}

// PlottedAt reports the flag at c, false outside the bounds.
func (f *Frozen) PlottedAt(c Coord) bool {
	if !f.Contains(c) {
		return false
	}
	return f.Plotted(f.IndexOf(c))
}

// Count returns the number of plotted voxels.
func (f *Frozen) Count() int64 {
	var n int
	for _, b := range f.bits {
		n += bits.OnesCount8(b)
	}
	return int64(n)
}

// Bits returns a copy of the packed array.
func (f *Frozen) Bits() []byte {
	return append([]byte(nil), f.bits...)
}
