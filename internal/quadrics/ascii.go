package quadrics

import (
	"bufio"
	"io"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// RenderASCII prints plane z of p, one row per y (top row is the largest y),
// with "1" for plotted and "0" for empty voxels.
func RenderASCII(w io.Writer, p Plotter, z int64) error {
	b := p.Box()
	if z < b.Min.Z || z >= b.Max.Z {
		return errors.New("plane outside bounds").
			WithType(ErrTypeInvalidBounds).
			WithTag("z", z)
	}
	bw := bufio.NewWriter(w)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				bw.WriteByte(' ')
			}
			if p.PlottedAt(Coord{x, y, z}) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
