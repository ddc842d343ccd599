package quadrics

import (
	"fmt"
	"os"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"gonum.org/v1/gonum/spatial/r3"
)

type QuadricCfg struct {
	Quadric
	// Sphere, when > 0 and every coefficient is zero, is shorthand for a
	// sphere of that radius centered at the origin.
	Sphere Real `json:"sphere,omitempty"`
}

type SeedCfg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

func (s SeedCfg) Vec() r3.Vec { return r3.Vec{X: s.X, Y: s.Y, Z: s.Z} }

type Config struct {
	Quadric      QuadricCfg `json:"quadric"`
	Bounds       Bounds     `json:"bounds"`
	Seeds        []SeedCfg  `json:"seeds,omitempty"`
	SpreadSeeds  int        `json:"spreadSeeds,omitempty"` // used when Seeds is empty
	Strategy     string     `json:"strategy,omitempty"`
	Workers      int        `json:"workers,omitempty"`
	MaxSeekSteps int        `json:"maxSeekSteps,omitempty"`
	GIFOut       string     `json:"gifOut,omitempty"`
	GIFDelay     int        `json:"gifDelay,omitempty"`
	GIFScale     int        `json:"gifScale,omitempty"`
	PNGPrefix    string     `json:"pngPrefix,omitempty"`
	FrozenOut    string     `json:"frozenOut,omitempty"`
	Codec        string     `json:"codec,omitempty"`
	ASCIIPlane   *int64     `json:"asciiPlane,omitempty"`

	quadric  Quadric
	strategy Strategy
	codec    Codec
}

// Build validates the coefficients.
func (qc QuadricCfg) Build() (Quadric, error) {
	q := qc.Quadric
	if q == (Quadric{}) {
		if qc.Sphere <= 0 {
			return Quadric{}, errors.New("quadric has no coefficients").
				WithType(ErrTypeInvalidConfig)
		}
		q = Sphere(qc.Sphere)
	}
	if !q.finite() {
		return Quadric{}, errors.New("quadric has non-finite coefficients").
			WithType(ErrTypeInvalidConfig).
			WithTag("quadric", fmt.Sprintf("%+v", q))
	}
	if q.A == 0 && q.B == 0 && q.C == 0 && q.D == 0 && q.E == 0 && q.F == 0 {
		logs.WithTag("quadric", q).Warn("quadric has no quadratic terms")
	}
	if q.Degenerate() {
		DebugLog("Quadric %+v is degenerate (singular homogeneous form)", q)
	}
	return q, nil
}

// Seed points: explicit seeds win, otherwise SpreadSeeds over the bounds.
func (c *Config) seedPoints() []r3.Vec {
	if len(c.Seeds) > 0 {
		seeds := make([]r3.Vec, len(c.Seeds))
		for i, s := range c.Seeds {
			seeds[i] = s.Vec()
		}
		return seeds
	}
	return SpreadSeeds(c.Bounds, c.SpreadSeeds)
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("reading config failed").
			WithTag("path", path).
			Wrap(err)
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, errors.New("invalid config").
			WithType(ErrTypeInvalidConfig).
			WithTag("path", path).
			Wrap(err)
	}
	DebugLog("Loaded config from %s: bounds=%v..%v, strategy=%s, seeds=%d, workers=%d", path, cfg.Bounds.Min, cfg.Bounds.Max, cfg.strategy, len(cfg.seedPoints()), cfg.Workers)
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.quadric, err = cfg.Quadric.Build(); err != nil {
		return nil, err
	}
	if err = cfg.Bounds.Validate(); err != nil {
		return nil, err
	}
	if cfg.strategy, err = ParseStrategy(cfg.Strategy); err != nil {
		return nil, err
	}
	if cfg.Codec == "" {
		cfg.Codec = DefaultCodec
	}
	if cfg.codec, err = ParseCodec(cfg.Codec); err != nil {
		return nil, err
	}

	// Defaults
	if cfg.Workers <= 0 {
		cfg.Workers = Workers
	}
	if cfg.MaxSeekSteps <= 0 {
		cfg.MaxSeekSteps = MaxSeekSteps
	}
	if len(cfg.Seeds) == 0 && cfg.SpreadSeeds <= 0 {
		cfg.SpreadSeeds = 1
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.GIFScale <= 0 {
		cfg.GIFScale = GIFScale
	}
	if cfg.PNGPrefix == "" {
		prefix := strings.Replace(cfg.GIFOut, ".gif", "", 1)
		cfg.PNGPrefix = strings.Replace(prefix, "gifs/", "pngs/", 1)
	}
	if cfg.ASCIIPlane == nil {
		z := cfg.Bounds.Min.Z
		if cfg.Bounds.Contains(Coord{cfg.Bounds.Min.X, cfg.Bounds.Min.Y, 0}) {
			z = 0
		}
		cfg.ASCIIPlane = &z
	}
	if z := *cfg.ASCIIPlane; z < cfg.Bounds.Min.Z || z >= cfg.Bounds.Max.Z {
		return nil, errors.New("asciiPlane outside bounds").
			WithType(ErrTypeInvalidConfig).
			WithTag("asciiPlane", z)
	}
	return &cfg, nil
}
