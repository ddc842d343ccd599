package quadrics

import (
	"context"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
)

// Run voxelizes the quadric described by the config at cfgPath: it seeks the
// surface from every seed, flood-fills the shared grid in parallel, then
// renders, saves and (when store is not nil) records the frozen result.
func Run(ctx context.Context, cfgPath string, store SnapshotStore) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	_, err = run(ctx, cfg, store)
	return err
}

func run(ctx context.Context, cfg *Config, store SnapshotStore) (*Frozen, error) {
	g, err := NewGrid(cfg.Bounds)
	if err != nil {
		return nil, err
	}
	defer g.Free()

	if Debug {
		resetFillLog()
	}
	seeds := cfg.seedPoints()
	res, err := FillParallel(ctx, g, cfg.quadric, seeds, ParallelOptions{
		Workers:      cfg.Workers,
		Strategy:     cfg.strategy,
		MaxSeekSteps: cfg.MaxSeekSteps,
	})
	if err != nil {
		return nil, err
	}
	logs.WithTag("strategy", cfg.strategy.String()).
		WithTag("seeds", res.Seeds).
		WithTag("seek_failures", res.SeekFailures).
		WithTag("claimed", res.Claimed).
		WithTag("surface", res.Surface).
		WithTag("lost", res.Lost).
		WithTag("elapsed", res.Elapsed.String()).
		Info("grid filled")
	if res.SeekFailures == res.Seeds {
		logs.Warn(errors.New("no seed reached the surface").
			WithTag("quadric", cfg.quadric).
			WithTag("seeds", res.Seeds))
	}

	if Debug {
		fillStats()
	}

	frozen := Freeze(g)

	if ASCII {
		if err := RenderASCII(os.Stdout, frozen, *cfg.ASCIIPlane); err != nil {
			return nil, err
		}
	}

	if PNG {
		if err := SavePNGSequence(frozen, cfg.PNGPrefix); err != nil {
			return nil, errors.New("saving png sequence failed").
				WithTag("prefix", cfg.PNGPrefix).
				Wrap(err)
		}
		DebugLog("Saved PNG sequence with prefix: %s", cfg.PNGPrefix)
	} else {
		if err := SaveAnimatedGIF(frozen, cfg.GIFOut, cfg.GIFDelay, cfg.GIFScale); err != nil {
			return nil, errors.New("saving animated gif failed").
				WithTag("path", cfg.GIFOut).
				Wrap(err)
		}
		DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	}

	if cfg.FrozenOut != "" {
		if err := SaveFrozen(cfg.FrozenOut, frozen, cfg.codec); err != nil {
			return nil, err
		}
		logs.WithTag("path", cfg.FrozenOut).
			WithTag("codec", cfg.codec.String()).
			Info("frozen grid saved")
	}

	if store != nil {
		snap, err := NewSnapshot(cfg.quadric, frozen, cfg.strategy, cfg.codec)
		if err != nil {
			return nil, err
		}
		id, err := store.InsertSnapshot(snap)
		if err != nil {
			instrumentPersistError(err)
			return nil, errors.New("storing snapshot failed").Wrap(err)
		}
		logs.WithTag("snapshot_id", id).
			WithTag("plotted", snap.Plotted).
			Info("snapshot stored")
	}
	return frozen, nil
}
