package quadrics

import (
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tinyGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(Bounds{Min: Coord{0, 0, 0}, Max: Coord{3, 2, 2}})
	require.NoError(t, err)
	// a single plotted voxel so frames are not all black
	g.Voxel(Coord{1, 1, 0}).Plotted = true
	return g
}

func TestSaveAnimatedGIF(t *testing.T) {
	g := tinyGrid(t)
	path := filepath.Join(t.TempDir(), "gifs", "out.gif")
	if err := SaveAnimatedGIF(Freeze(g), path, 5, 4); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	defer f.Close()
	out, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, out.Image, 2)
	require.Equal(t, []int{5, 5}, out.Delay)

	frame := out.Image[0]
	require.Equal(t, 3*4, frame.Bounds().Dx())
	require.Equal(t, 2*4+labelHeight, frame.Bounds().Dy())

	// voxel (1,1) is on the top row after the Y flip
	r, gr, b, _ := frame.At(1*4+1, labelHeight+1).RGBA()
	require.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, gr, b})
	r, gr, b, _ = frame.At(1*4+1, labelHeight+4+1).RGBA()
	require.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, gr, b})
}

func TestSavePNGSequence(t *testing.T) {
	g := tinyGrid(t)
	prefix := filepath.Join(t.TempDir(), "pngs", "frame")
	if err := SavePNGSequence(g, prefix); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"frame_0.png", "frame_1.png"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(prefix), name)); err != nil {
			t.Fatalf("png not written: %v", err)
		}
	}

	f, err := os.Open(prefix + "_0.png")
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	y, _, _, _ := img.At(1, 0).RGBA()
	require.Equal(t, uint32(0xffff), y)
	y, _, _, _ = img.At(1, 1).RGBA()
	require.Zero(t, y)
}
