package quadrics

import (
	"context"
	"math/bits"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// ParallelOptions configures FillParallel.
type ParallelOptions struct {
	Workers      int // concurrent seeds; <= 0 means runtime.NumCPU()
	Strategy     Strategy
	MaxSeekSteps int // <= 0 means MaxSeekSteps
}

// ParallelResult sums the fills of every seed.
type ParallelResult struct {
	FillStats
	Seeds        int
	SeekFailures int
	Elapsed      time.Duration
}

// FillParallel runs, for every seed, FindSurface from the seed's nearest
// lattice point followed by a flood fill from the surface voxel found, over the shared grid g, with at most
// opts.Workers seeds in flight. Seeds whose seek fails are counted and
// skipped. Cancelling ctx stops scheduling new seeds; fills already running
// complete. g must not be freed until FillParallel returns.
func FillParallel(ctx context.Context, g *Grid, q Quadric, seeds []r3.Vec, opts ParallelOptions) (ParallelResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	maxSteps := opts.MaxSeekSteps
	if maxSteps <= 0 {
		maxSteps = MaxSeekSteps
	}

	var (
		mu      sync.Mutex
		res     = ParallelResult{Seeds: len(seeds)}
		counter int64
		eg      errgroup.Group
	)
	nextPrint := int64(1)
	if len(seeds) >= 10 {
		nextPrint = int64(len(seeds) / 10) // ~10%
	}

	start := time.Now()
	eg.SetLimit(workers)
	for _, seed := range seeds {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			// the walk stays on the lattice so the point found is a voxel
			p, ok := findSurface(q, CoordOf(seed).Vec(), maxSteps)
			instrumentSeek(ok)
			var st FillStats
			if ok {
				st = Fill(opts.Strategy, g, q, CoordOf(p))
			} else {
				logs.WithTag("seed", seed).
					WithTag("quadric", q).
					Warn("no surface found from seed")
			}

			mu.Lock()
			res.Add(st)
			if !ok {
				res.SeekFailures++
			}
			mu.Unlock()

			done := atomic.AddInt64(&counter, 1)
			if done%nextPrint == 0 {
				DebugLog("[PROGRESS] %d/%d seeds", done, len(seeds))
			}
			return nil
		})
	}
	err := eg.Wait()
	res.Elapsed = time.Since(start)
	if err == nil {
		err = ctx.Err()
	}
	return res, err
}

// SpreadSeeds returns n seeds evenly spread over the grid's index space:
// seed j is the voxel at index j*volume/n.
func SpreadSeeds(b Bounds, n int) []r3.Vec {
	if n <= 0 {
		return nil
	}
	vol := uint64(b.Volume())
	seeds := make([]r3.Vec, n)
	for j := range seeds {
		hi, lo := bits.Mul64(uint64(j), vol)
		idx, _ := bits.Div64(hi, lo, uint64(n))
		seeds[j] = b.CoordAt(int64(idx)).Vec()
	}
	return seeds
}
