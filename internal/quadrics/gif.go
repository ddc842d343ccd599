package quadrics

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelHeight = 16

var (
	plottedColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	labelColor   = color.RGBA{0xff, 0xc0, 0x00, 0xff}
)

// SaveAnimatedGIF writes a GIF with one frame per Z slice. Each voxel is
// scale×scale pixels, plotted voxels are white, and the slice's z is drawn
// in a strip above the image. delay is in 100ths of a second.
func SaveAnimatedGIF(p Plotter, path string, delay, scale int) (err error) {
	b := p.Box()
	if scale < 1 {
		scale = 1
	}
	nx, ny, nz := int(b.Max.X-b.Min.X), int(b.Max.Y-b.Min.Y), int(b.Max.Z-b.Min.Z)

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, nz),
		Delay:     make([]int, 0, nz),
		LoopCount: 0,
	}
	rect := image.Rect(0, 0, nx*scale, ny*scale+labelHeight)

	for k := 0; k < nz; k++ {
		if k%max(1, nz/10) == 0 {
			logs.WithTag("progress", fmt.Sprintf("%.2f%%", Real(k+1)*100/Real(nz))).
				Debug("rendering gif")
		}
		z := b.Min.Z + int64(k)
		frame := image.NewPaletted(rect, palette.Plan9)
		draw.Draw(frame, rect, image.Black, image.Point{}, draw.Src)

		// flip Y so up is up
		for j := 0; j < ny; j++ {
			y := ny - 1 - j
			for i := 0; i < nx; i++ {
				if !p.PlottedAt(Coord{b.Min.X + int64(i), b.Min.Y + int64(j), z}) {
					continue
				}
				cell := image.Rect(i*scale, labelHeight+y*scale, (i+1)*scale, labelHeight+(y+1)*scale)
				draw.Draw(frame, cell, image.NewUniform(plottedColor), image.Point{}, draw.Src)
			}
		}
		drawLabel(frame, fmt.Sprintf("z=%d", z))

		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gif.EncodeAll(f, out)
}

func drawLabel(dst draw.Image, text string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, labelHeight-4),
	}
	d.DrawString(text)
}
