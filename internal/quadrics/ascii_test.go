package quadrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestRenderASCIISphere(t *testing.T) {
	g, err := NewGrid(Cube(-4, 5))
	require.NoError(t, err)
	q := Sphere(3)
	DepthFirstFill(g, q, sphereSeed(t, q))

	var buf bytes.Buffer
	require.NoError(t, RenderASCII(&buf, Freeze(g), 0))

	want := strings.Join([]string{
		"0 0 0 0 0 0 0 0 0",
		"0 0 0 1 1 1 0 0 0",
		"0 0 1 0 0 0 1 0 0",
		"0 1 0 0 0 0 0 1 0",
		"0 1 0 0 0 0 0 1 0",
		"0 1 0 0 0 0 0 1 0",
		"0 0 1 0 0 0 1 0 0",
		"0 0 0 1 1 1 0 0 0",
		"0 0 0 0 0 0 0 0 0",
	}, "\n") + "\n"
	require.Equal(t, want, buf.String())
}

func TestRenderASCIIYDescending(t *testing.T) {
	g, err := NewGrid(Bounds{Min: Coord{0, 0, 0}, Max: Coord{2, 3, 1}})
	require.NoError(t, err)
	g.Voxel(Coord{1, 2, 0}).Plotted = true
	g.Voxel(Coord{0, 0, 0}).Plotted = true

	var buf bytes.Buffer
	require.NoError(t, RenderASCII(&buf, g, 0))
	require.Equal(t, "0 1\n0 0\n1 0\n", buf.String())
}

func TestRenderASCIIPlaneOutside(t *testing.T) {
	g, err := NewGrid(Cube(0, 2))
	require.NoError(t, err)
	err = RenderASCII(&bytes.Buffer{}, g, 2)
	require.True(t, errors.IsType(err, ErrTypeInvalidBounds))
}
