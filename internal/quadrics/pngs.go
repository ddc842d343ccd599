package quadrics

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

// SavePNGSequence writes one 8-bit grayscale PNG per Z slice, named
// prefix_<k>.png with k zero-padded. Plotted voxels are white.
func SavePNGSequence(p Plotter, prefix string) error {
	b := p.Box()
	nx, ny, nz := int(b.Max.X-b.Min.X), int(b.Max.Y-b.Min.Y), int(b.Max.Z-b.Min.Z)

	// Zero-padding width based on number of slices.
	width := 1
	if nz > 1 {
		width = int(math.Log10(Real(nz-1))) + 1
	}

	step := 1
	if nz >= 100 {
		step = nz / 100
	}

	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		return err
	}

	for k := 0; k < nz; k++ {
		if k%step == 0 {
			logs.WithTag("progress", fmt.Sprintf("%.2f%%", Real(k+1)*100/Real(nz))).
				Debug("rendering png")
		}
		z := b.Min.Z + int64(k)

		img := image.NewGray(image.Rect(0, 0, nx, ny))
		for j := 0; j < ny; j++ {
			y := ny - 1 - j
			for i := 0; i < nx; i++ {
				if p.PlottedAt(Coord{b.Min.X + int64(i), b.Min.Y + int64(j), z}) {
					img.SetGray(i, y, color.Gray{Y: 0xff})
				}
			}
		}

		full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
		f, err := os.Create(full)
		if err != nil {
			return err
		}

		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
