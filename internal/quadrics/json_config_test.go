package quadrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const sphereConfig = `{
  "quadric": {"sphere": 10},
  "bounds": {"min": {"x": -12, "y": -12, "z": -12}, "max": {"x": 13, "y": 13, "z": 13}}
}`

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte(sphereConfig))
	require.NoError(t, err)

	require.Equal(t, Sphere(10), cfg.quadric)
	require.Equal(t, Cube(-12, 13), cfg.Bounds)
	require.Equal(t, DepthFirst, cfg.strategy)
	require.Equal(t, CodecZstd, cfg.codec)
	require.Equal(t, MaxSeekSteps, cfg.MaxSeekSteps)
	require.Equal(t, GIFOut, cfg.GIFOut)
	require.Equal(t, GIFDelay, cfg.GIFDelay)
	require.Equal(t, GIFScale, cfg.GIFScale)
	require.Equal(t, "pngs/surface", cfg.PNGPrefix)
	require.Equal(t, 1, cfg.SpreadSeeds)
	require.Len(t, cfg.seedPoints(), 1)
	require.NotNil(t, cfg.ASCIIPlane)
	require.Equal(t, int64(0), *cfg.ASCIIPlane)
}

func TestParseConfigExplicit(t *testing.T) {
	cfg, err := parseConfig([]byte(`{
  "quadric": {"a": 1, "b": 1, "c": -1, "j": -16},
  "bounds": {"min": {"x": 1, "y": 1, "z": 1}, "max": {"x": 9, "y": 9, "z": 9}},
  "seeds": [{"x": 2, "y": 3, "z": 4}, {"x": 5, "y": 5, "z": 5}],
  "strategy": "bfs",
  "workers": 3,
  "maxSeekSteps": 50,
  "gifOut": "gifs/h.gif",
  "codec": "gzip",
  "frozenOut": "out/h.qvox"
}`))
	require.NoError(t, err)

	require.Equal(t, Quadric{A: 1, B: 1, C: -1, J: -16}, cfg.quadric)
	require.Equal(t, BreadthFirst, cfg.strategy)
	require.Equal(t, CodecGzip, cfg.codec)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, 50, cfg.MaxSeekSteps)
	require.Equal(t, "pngs/h", cfg.PNGPrefix)
	require.Equal(t, "out/h.qvox", cfg.FrozenOut)
	require.Equal(t, []r3.Vec{{X: 2, Y: 3, Z: 4}, {X: 5, Y: 5, Z: 5}}, cfg.seedPoints())
	// 0 is outside, so the plane falls back to the lowest z
	require.Equal(t, int64(1), *cfg.ASCIIPlane)
}

func TestParseConfigErrors(t *testing.T) {
	bounds := `"bounds": {"min": {"x": 0, "y": 0, "z": 0}, "max": {"x": 4, "y": 4, "z": 4}}`
	tests := []struct {
		name    string
		data    string
		errType string
	}{
		{
			name:    "no coefficients",
			data:    `{"quadric": {}, ` + bounds + `}`,
			errType: ErrTypeInvalidConfig,
		},
		{
			name:    "empty bounds",
			data:    `{"quadric": {"sphere": 1}}`,
			errType: ErrTypeInvalidBounds,
		},
		{
			name:    "unknown strategy",
			data:    `{"quadric": {"sphere": 1}, "strategy": "random", ` + bounds + `}`,
			errType: ErrTypeUnknownStrategy,
		},
		{
			name:    "unknown codec",
			data:    `{"quadric": {"sphere": 1}, "codec": "lz4", ` + bounds + `}`,
			errType: ErrTypeUnknownCodec,
		},
		{
			name:    "ascii plane outside",
			data:    `{"quadric": {"sphere": 1}, "asciiPlane": 4, ` + bounds + `}`,
			errType: ErrTypeInvalidConfig,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseConfig([]byte(test.data))
			require.Error(t, err)
			require.True(t, errors.IsType(err, test.errType), "got %v", err)
		})
	}

	_, err := parseConfig([]byte(`{not json`))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(sphereConfig), 0o644))
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, Sphere(10), cfg.quadric)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"quadric": {"sphere": 1}}`), 0o644))
	_, err = loadConfig(bad)
	require.Equal(t, ErrTypeInvalidConfig, errors.Type(err))

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestSampleScenesParse(t *testing.T) {
	for _, name := range []string{"config.json", "hyperboloid.json"} {
		cfg, err := loadConfig(filepath.Join("..", "..", "scenes", name))
		require.NoError(t, err, name)
		require.NoError(t, cfg.Bounds.Validate(), name)
	}
}
