package quadrics

import (
	"strings"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Strategy selects the flood-fill traversal order.
type Strategy uint8

const (
	DepthFirst Strategy = iota
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	}
	return "unknown"
}

// ParseStrategy accepts "dfs"/"depth-first" and "bfs"/"breadth-first".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dfs", "depth-first", "depth_first":
		return DepthFirst, nil
	case "bfs", "breadth-first", "breadth_first":
		return BreadthFirst, nil
	}
	return 0, errors.New("unknown fill strategy").
		WithType(ErrTypeUnknownStrategy).
		WithTag("strategy", s)
}

// FillStats counts what one traversal did.
type FillStats struct {
	Claimed int64 // voxels this traversal claimed and classified
	Surface int64 // claimed voxels classified as surface
	Lost    int64 // candidates already claimed by this or another traversal
	Pruned  int64 // candidates outside the grid
}

// Add accumulates o into s.
func (s *FillStats) Add(o FillStats) {
	s.Claimed += o.Claimed
	s.Surface += o.Surface
	s.Lost += o.Lost
	s.Pruned += o.Pruned
}

// Fill runs the traversal selected by strategy.
func Fill(strategy Strategy, g *Grid, q Quadric, seed Coord) FillStats {
	if strategy == BreadthFirst {
		return BreadthFirstFill(g, q, seed)
	}
	return DepthFirstFill(g, q, seed)
}

// DepthFirstFill flood-fills the surface component of q reachable from seed.
// Only voxels classified as surface are expanded, into all 26 neighbors.
// It is safe to run any number of fills over the same grid concurrently.
func DepthFirstFill(g *Grid, q Quadric, seed Coord) FillStats {
	var st FillStats
	start := time.Now()
	stack := []Coord{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(g, q, c, &st) {
			continue
		}
		ns := c.Neighbors()
		stack = append(stack, ns[:]...)
	}
	instrumentFill(DepthFirst, st, start)
	return st
}

// BreadthFirstFill is DepthFirstFill driven by a FIFO work queue.
func BreadthFirstFill(g *Grid, q Quadric, seed Coord) FillStats {
	var (
		st    FillStats
		queue fifo[Coord]
		peak  int
	)
	start := time.Now()
	queue.pushBack(seed)
	for !queue.empty() {
		c, _ := queue.popFront()
		if !visit(g, q, c, &st) {
			continue
		}
		for _, o := range offsets26 {
			queue.pushBack(c.Add(o))
		}
		peak = max(peak, queue.len())
	}
	queue.reset()
	DebugLog("BFS from %v done, claimed=%d, peak queue=%d", seed, st.Claimed, peak)
	instrumentFill(BreadthFirst, st, start)
	return st
}

// visit claims and classifies the voxel at c and reports whether the
// traversal should expand from it.
func visit(g *Grid, q Quadric, c Coord, st *FillStats) bool {
	v := g.Voxel(c)
	if v == nil {
		st.Pruned++
		if Debug {
			logFill(OutOfBounds, c)
		}
		return false
	}
	if !v.TryClaim() {
		st.Lost++
		if Debug {
			logFill(ClaimLost, c)
			DebugLogOnce("First candidate lost to an earlier claim at %v", c)
		}
		return false
	}
	st.Claimed++
	v.Plotted = IsSurface(q, c.Vec())
	if !v.Plotted {
		if Debug {
			logFill(NotSurface, c)
		}
		return false
	}
	st.Surface++
	if Debug {
		logFill(Surface, c)
	}
	return true
}
