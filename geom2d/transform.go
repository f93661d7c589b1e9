package geom2d

import (
	"math"

	"github.com/latticecad/kernel/geomerr"
)

// Transform2D is a 3x3 homogeneous affine matrix stored row-major:
//
//	[ A B C ]
//	[ D E F ]
//	[ 0 0 1 ]
//
// so that Apply(p) = (A*p.X + B*p.Y + C, D*p.X + E*p.Y + F). The bottom
// row is implicit by construction; no exported field can disturb it.
// This mirrors the teacher's geom.Affine, generalized with named
// constructors and inversion that returns an error instead of calling
// log.Fatalf.
type Transform2D struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform2D { return Transform2D{A: 1, E: 1} }

// Translation returns a pure translation by (tx, ty).
func Translation(tx, ty float64) Transform2D {
	return Transform2D{A: 1, B: 0, C: tx, D: 0, E: 1, F: ty}
}

// Rotation returns a rotation by angleRadians (counterclockwise) about
// center, built as T(center) * R(angle) * T(-center).
func Rotation(angleRadians float64, center Point2D) Transform2D {
	cos, sin := math.Cos(angleRadians), math.Sin(angleRadians)
	r := Transform2D{A: cos, B: -sin, D: sin, E: cos}
	return Translation(center.X, center.Y).Mul(r).Mul(Translation(-center.X, -center.Y))
}

// Scaling returns a scale by (sx, sy) about center, built the same way
// as Rotation. sx == sy == 0 is legal to construct but yields a
// singular transform.
func Scaling(sx, sy float64, center Point2D) Transform2D {
	s := Transform2D{A: sx, E: sy}
	return Translation(center.X, center.Y).Mul(s).Mul(Translation(-center.X, -center.Y))
}

// UniformScaling scales both axes by the same factor about center.
func UniformScaling(s float64, center Point2D) Transform2D { return Scaling(s, s, center) }

// Determinant returns the determinant of the 2x2 linear block.
func (t Transform2D) Determinant() float64 { return t.A*t.E - t.B*t.D }

// IsInvertible reports whether |Determinant()| exceeds Epsilon.
func (t Transform2D) IsInvertible() bool { return math.Abs(t.Determinant()) > Epsilon }

// Inverse returns the inverse transform, failing with a SingularTransform
// error if the linear block's determinant is within Epsilon of zero.
func (t Transform2D) Inverse() (Transform2D, error) {
	det := t.Determinant()
	if math.Abs(det) <= Epsilon {
		return Transform2D{}, geomerr.Singular("geom2d: transform is not invertible (determinant %.3g)", det)
	}
	a, b, c, d, e, f := t.A, t.B, t.C, t.D, t.E, t.F
	return Transform2D{
		A: e / det, B: -b / det, C: (b*f - c*e) / det,
		D: -d / det, E: a / det, F: (c*d - a*f) / det,
	}, nil
}

// Mul composes two transforms: (A.Mul(B)).Apply(p) == A.Apply(B.Apply(p)),
// i.e. "apply B then A".
func (t Transform2D) Mul(u Transform2D) Transform2D {
	return Transform2D{
		A: t.A*u.A + t.B*u.D,
		B: t.A*u.B + t.B*u.E,
		C: t.A*u.C + t.B*u.F + t.C,
		D: t.D*u.A + t.E*u.D,
		E: t.D*u.B + t.E*u.E,
		F: t.D*u.C + t.E*u.F + t.F,
	}
}

// Apply maps a single point through the transform.
func (t Transform2D) Apply(p Point2D) Point2D {
	return Point2D{X: t.A*p.X + t.B*p.Y + t.C, Y: t.D*p.X + t.E*p.Y + t.F}
}

// ApplyMany maps a slice of points, avoiding the per-point allocation
// overhead of repeated Apply calls on hot paths like PolyLine/Region
// transforms.
func (t Transform2D) ApplyMany(points []Point2D) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// ApplyVector maps a direction vector, ignoring the translation component.
func (t Transform2D) ApplyVector(v Point2D) Point2D {
	return Point2D{X: t.A*v.X + t.B*v.Y, Y: t.D*v.X + t.E*v.Y}
}

// FromPoints solves the least-squares affine transform mapping src onto
// dst: dst[i] ~= M.Apply(src[i]). Requires at least 3 pairs and fails
// with a DegenerateInput error if src is collinear (the normal system
// would be singular).
func FromPoints(src, dst []Point2D) (Transform2D, error) {
	if len(src) != len(dst) {
		return Transform2D{}, geomerr.Domain("geom2d: FromPoints needs equal-length src/dst, got %d/%d", len(src), len(dst))
	}
	if len(src) < 3 {
		return Transform2D{}, geomerr.Domain("geom2d: FromPoints needs at least 3 point pairs, got %d", len(src))
	}
	if IsCollinearTo(src, Epsilon) {
		return Transform2D{}, geomerr.Degenerate("geom2d: FromPoints source points are collinear")
	}

	// Solve two independent 3x3 normal-equation systems (one per output
	// row) for [a b c] and [d e f] in  x' = a*x + b*y + c.
	rowX, err := solveAffineRow(src, dst, func(p Point2D) float64 { return p.X })
	if err != nil {
		return Transform2D{}, err
	}
	rowY, err := solveAffineRow(src, dst, func(p Point2D) float64 { return p.Y })
	if err != nil {
		return Transform2D{}, err
	}
	return Transform2D{A: rowX[0], B: rowX[1], C: rowX[2], D: rowY[0], E: rowY[1], F: rowY[2]}, nil
}

// solveAffineRow fits [a b c] minimizing sum((a*x+b*y+c - target(dst[i]))^2)
// via the 3x3 normal equations, solved with Cramer's rule.
func solveAffineRow(src, dst []Point2D, target func(Point2D) float64) ([3]float64, error) {
	var sxx, sxy, sx, syy, sy, sn float64
	var sxt, syt, st float64
	n := float64(len(src))
	for i, p := range src {
		t := target(dst[i])
		sxx += p.X * p.X
		sxy += p.X * p.Y
		sx += p.X
		syy += p.Y * p.Y
		sy += p.Y
		sxt += p.X * t
		syt += p.Y * t
		st += t
	}
	sn = n

	// Normal-equation matrix:
	// [ sxx sxy sx ] [a]   [sxt]
	// [ sxy syy sy ] [b] = [syt]
	// [ sx  sy  sn ] [c]   [st ]
	m := [3][3]float64{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, sn},
	}
	v := [3]float64{sxt, syt, st}

	det := det3(m)
	if math.Abs(det) <= Epsilon {
		return [3]float64{}, geomerr.Degenerate("geom2d: FromPoints normal equations are singular")
	}

	var sol [3]float64
	for col := 0; col < 3; col++ {
		mc := m
		for row := 0; row < 3; row++ {
			mc[row][col] = v[row]
		}
		sol[col] = det3(mc) / det
	}
	return sol, nil
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
