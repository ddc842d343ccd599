package quadrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFillLogCounts(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	resetFillLog()

	g, q := sphereGrid(t)
	st := BreadthFirstFill(g, q, sphereSeed(t, q))

	counts := fillEventCounts()
	require.Equal(t, st.Surface, counts[Surface])
	require.Equal(t, st.Claimed-st.Surface, counts[NotSurface])
	require.Equal(t, st.Lost, counts[ClaimLost])
	require.Equal(t, st.Pruned, counts[OutOfBounds])

	fillStats()

	resetFillLog()
	require.Empty(t, fillEventCounts())
}

func TestFillLogDisabled(t *testing.T) {
	resetFillLog()
	g, q := sphereGrid(t)
	DepthFirstFill(g, q, sphereSeed(t, q))
	require.Empty(t, fillEventCounts())
}

func TestCategoryString(t *testing.T) {
	require.Equal(t, "surface", Surface.String())
	require.Equal(t, "not_surface", NotSurface.String())
	require.Equal(t, "claim_lost", ClaimLost.String())
	require.Equal(t, "out_of_bounds", OutOfBounds.String())
}
