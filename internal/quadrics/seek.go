package quadrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FindSurface walks from start over unit lattice offsets, always moving to
// the neighbor with the smallest |q| seen so far in the whole search, until
// it stands on a surface voxel. It reports false when no neighbor improves
// on the best magnitude (a local minimum short of the surface) or after
// maxSteps moves; the returned point is then meaningless.
func FindSurface(q Quadric, start r3.Vec) (r3.Vec, bool) {
	return findSurface(q, start, MaxSeekSteps)
}

func findSurface(q Quadric, start r3.Vec, maxSteps int) (r3.Vec, bool) {
	cur := start
	best := math.Abs(q.EvalBiased(cur, Exterior))
	for step := 0; !IsSurface(q, cur); step++ {
		if step >= maxSteps {
			DebugLog("seek from %+v hit the step limit %d at %+v", start, maxSteps, cur)
			return cur, false
		}
		next, progress := cur, false
		for _, o := range offsets26 {
			n := r3.Add(cur, o.Vec())
			if m := math.Abs(q.EvalBiased(n, Exterior)); m < best {
				best, next, progress = m, n, true
			}
		}
		if !progress {
			DebugLog("seek from %+v stalled at %+v, |q|=%g", start, cur, best)
			return cur, false
		}
		cur = next
	}
	return cur, true
}
