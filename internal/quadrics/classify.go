package quadrics

import "gonum.org/v1/gonum/spatial/r3"

var axes = [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}

// IsSurface reports whether the zero set of q passes through the voxel at p.
// An exact hit counts. Otherwise p is probed Epsilon away along each axis in
// both directions, and a strict sign change on any one axis counts as a
// crossing. A probe that evaluates to exactly zero (or NaN) disqualifies its
// axis instead of being assigned a sign.
func IsSurface(q Quadric, p r3.Vec) bool {
	if q.EvalBiased(p, Exterior) == 0 {
		return true
	}
	for _, axis := range axes {
		step := r3.Scale(Epsilon, axis)
		pos, okPos := strictSign(q.Eval(r3.Add(p, step)))
		neg, okNeg := strictSign(q.Eval(r3.Sub(p, step)))
		if !okPos || !okNeg {
			continue
		}
		if pos != neg {
			return true
		}
	}
	return false
}

// strictSign returns +1 or -1, and false for zero and NaN.
func strictSign(v Real) (int, bool) {
	switch {
	case v > 0:
		return 1, true
	case v < 0:
		return -1, true
	}
	return 0, false
}
