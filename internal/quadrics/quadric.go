package quadrics

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quadric is the implicit surface
//
//	a·x² + b·y² + c·z² + d·yz + e·xz + f·xy + g·x + h·y + i·z + j = 0
type Quadric struct {
	A Real `json:"a"`
	B Real `json:"b"`
	C Real `json:"c"`
	D Real `json:"d"`
	E Real `json:"e"`
	F Real `json:"f"`
	G Real `json:"g"`
	H Real `json:"h"`
	I Real `json:"i"`
	J Real `json:"j"`
}

// Bias selects how an exact zero is signed when a value is used for
// inside/outside classification.
type Bias uint8

const (
	Exterior Bias = iota // zero counts as non-negative
	Interior             // zero counts as negative
)

func (b Bias) String() string {
	switch b {
	case Exterior:
		return "exterior"
	case Interior:
		return "interior"
	}
	return "unknown"
}

// Sphere returns the quadric x² + y² + z² - r² centered at the origin.
func Sphere(r Real) Quadric {
	return Quadric{A: 1, B: 1, C: 1, J: -r * r}
}

// Eval returns the algebraic value of q at p.
func (q Quadric) Eval(p r3.Vec) Real {
	return q.A*p.X*p.X +
		q.B*p.Y*p.Y +
		q.C*p.Z*p.Z +
		q.D*p.Y*p.Z +
		q.E*p.X*p.Z +
		q.F*p.X*p.Y +
		q.G*p.X +
		q.H*p.Y +
		q.I*p.Z +
		q.J
}

// EvalBiased is Eval with an exact zero replaced by a signed zero matching
// the bias, so math.Signbit of the result is the classification sign.
func (q Quadric) EvalBiased(p r3.Vec, bias Bias) Real {
	v := q.Eval(p)
	if v != 0 {
		return v
	}
	if bias == Interior {
		return math.Copysign(0, -1)
	}
	return 0
}

// Inside reports whether p is on the negative side of q under the bias.
func (q Quadric) Inside(p r3.Vec, bias Bias) bool {
	return math.Signbit(q.EvalBiased(p, bias))
}

// Matrix returns the symmetric 4x4 homogeneous form of q, so that
// [x y z 1]·M·[x y z 1]ᵀ equals Eval.
func (q Quadric) Matrix() *mat.SymDense {
	return mat.NewSymDense(4, []float64{
		q.A, q.F / 2, q.E / 2, q.G / 2,
		q.F / 2, q.B, q.D / 2, q.H / 2,
		q.E / 2, q.D / 2, q.C, q.I / 2,
		q.G / 2, q.H / 2, q.I / 2, q.J,
	})
}

// Degenerate reports whether the homogeneous form is singular (planes,
// cylinders, cones and plane pairs).
func (q Quadric) Degenerate() bool {
	return math.Abs(mat.Det(q.Matrix())) < degenerateTol
}
