package quadrics

import (
	"math"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsFinite(t *testing.T) {
	require.True(t, isFinite(0))
	require.True(t, isFinite(-1e300))
	require.False(t, isFinite(math.Inf(1)))
	require.False(t, isFinite(math.Inf(-1)))
	require.False(t, isFinite(math.NaN()))
}

func TestQuadricCfgBuildRejectsNonFinite(t *testing.T) {
	_, err := QuadricCfg{Quadric: Quadric{A: 1, B: 1, C: 1, J: math.Inf(-1)}}.Build()
	require.True(t, errors.IsType(err, ErrTypeInvalidConfig))

	_, err = QuadricCfg{Sphere: math.Inf(1)}.Build()
	require.True(t, errors.IsType(err, ErrTypeInvalidConfig))

	q, err := QuadricCfg{Sphere: 2}.Build()
	require.NoError(t, err)
	require.Equal(t, Sphere(2), q)
}
