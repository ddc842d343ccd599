package quadrics

import (
	"sort"
	"sync"

	"github.com/aukilabs/go-tooling/pkg/logs"
)

type Category uint8

const (
	Surface     Category = iota // claimed and classified as surface
	NotSurface                  // claimed and classified as non-surface
	ClaimLost                   // already claimed by some traversal
	OutOfBounds                 // candidate outside the grid
)

func (c Category) String() string {
	switch c {
	case Surface:
		return "surface"
	case NotSurface:
		return "not_surface"
	case ClaimLost:
		return "claim_lost"
	case OutOfBounds:
		return "out_of_bounds"
	}
	return "unknown"
}

type FillLogCache struct {
	mu     sync.Mutex
	counts map[Category]int64
	last   map[Category]Coord // most recent coordinate per category
}

var cache = &FillLogCache{
	counts: make(map[Category]int64),
	last:   make(map[Category]Coord),
}

func logFill(category Category, c Coord) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts[category]++
	cache.last[category] = c
}

// fillEventCounts returns a copy of the per-category event counters.
func fillEventCounts() map[Category]int64 {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	out := make(map[Category]int64, len(cache.counts))
	for k, v := range cache.counts {
		out[k] = v
	}
	return out
}

func resetFillLog() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.counts = make(map[Category]int64)
	cache.last = make(map[Category]Coord)
}

func fillStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cats := make([]Category, 0, len(cache.counts))
	for k := range cache.counts {
		cats = append(cats, k)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	for _, k := range cats {
		logs.WithTag("category", k.String()).
			WithTag("events", cache.counts[k]).
			WithTag("last", cache.last[k].String()).
			Debug("fill events")
	}
}
