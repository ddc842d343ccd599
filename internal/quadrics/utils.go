package quadrics

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// finite reports whether every coefficient of q is a finite number.
func (q Quadric) finite() bool {
	for _, c := range [...]Real{q.A, q.B, q.C, q.D, q.E, q.F, q.G, q.H, q.I, q.J} {
		if !isFinite(c) {
			return false
		}
	}
	return true
}
