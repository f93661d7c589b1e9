package geom2d

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/latticecad/kernel/geomerr"
)

// Point2D is a 2D vector of finite float64 components, used uniformly
// for positions and directions. It is immutable: every operation that
// would "mutate" a point returns a new one.
type Point2D struct {
	X, Y float64
}

// Origin is the zero point, used as the default transform center
// throughout the kernel.
var Origin = Point2D{X: 0, Y: 0}

// New constructs a point from Cartesian coordinates.
func New(x, y float64) Point2D { return Point2D{X: x, Y: y} }

// FromPolar constructs a point from a magnitude and an angle in
// radians, measured counterclockwise from the +X axis.
func FromPolar(magnitude, angleRadians float64) Point2D {
	return Point2D{X: magnitude * math.Cos(angleRadians), Y: magnitude * math.Sin(angleRadians)}
}

// At returns the component at index 0 (X) or 1 (Y). Point2D exposes no
// element setter: BelfryCAD's __setitem__ always raised IndexError, so
// mutation through indexing was already dead code; the port makes
// element access read-only instead of resurrecting a broken setter.
func (p Point2D) At(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		panic(fmt.Sprintf("geom2d: Point2D index out of range: %d", i))
	}
}

// Magnitude returns the Euclidean length of the vector.
func (p Point2D) Magnitude() float64 { return math.Sqrt(p.MagnitudeSquared()) }

// MagnitudeSquared avoids the sqrt when only relative comparisons are needed.
func (p Point2D) MagnitudeSquared() float64 { return p.X*p.X + p.Y*p.Y }

// UnitVector returns p scaled to unit length. The zero vector maps to
// itself rather than producing NaN.
func (p Point2D) UnitVector() Point2D {
	m := p.Magnitude()
	if m == 0 {
		return Origin
	}
	return Point2D{X: p.X / m, Y: p.Y / m}
}

// PerpendicularVector rotates p by +90 degrees (counterclockwise).
func (p Point2D) PerpendicularVector() Point2D { return Point2D{X: -p.Y, Y: p.X} }

// AngleRadians returns atan2(Y, X).
func (p Point2D) AngleRadians() float64 { return math.Atan2(p.Y, p.X) }

// AngleDegrees is AngleRadians in degrees.
func (p Point2D) AngleDegrees() float64 { return p.AngleRadians() * 180 / math.Pi }

// Add returns the componentwise sum.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the componentwise difference p - q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{X: p.X - q.X, Y: p.Y - q.Y} }

// Neg returns the additive inverse.
func (p Point2D) Neg() Point2D { return Point2D{X: -p.X, Y: -p.Y} }

// MulScalar scales both components by s.
func (p Point2D) MulScalar(s float64) Point2D { return Point2D{X: p.X * s, Y: p.Y * s} }

// MulVec scales componentwise.
func (p Point2D) MulVec(q Point2D) Point2D { return Point2D{X: p.X * q.X, Y: p.Y * q.Y} }

// DivScalar divides both components by s. Fails with a domain error if
// s is zero.
func (p Point2D) DivScalar(s float64) (Point2D, error) {
	if s == 0 {
		return Point2D{}, geomerr.Domain("geom2d: division by zero scalar")
	}
	return Point2D{X: p.X / s, Y: p.Y / s}, nil
}

// DivVec divides componentwise. Fails with a domain error if either
// component of q is zero.
func (p Point2D) DivVec(q Point2D) (Point2D, error) {
	if q.X == 0 || q.Y == 0 {
		return Point2D{}, geomerr.Domain("geom2d: component-wise division by zero component in %v", q)
	}
	return Point2D{X: p.X / q.X, Y: p.Y / q.Y}, nil
}

// Dot returns the dot product.
func Dot(p, q Point2D) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar (2D) cross product p x q.
func Cross(p, q Point2D) float64 { return p.X*q.Y - p.Y*q.X }

// AngleBetweenVectors returns the unsigned angle between p and q,
// clamped to [0, pi].
func AngleBetweenVectors(p, q Point2D) float64 {
	pm, qm := p.Magnitude(), q.Magnitude()
	if pm == 0 || qm == 0 {
		return 0
	}
	cos := Dot(p, q) / (pm * qm)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Equals compares componentwise within Epsilon.
func (p Point2D) Equals(q Point2D) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Translate returns p + v.
func (p Point2D) Translate(v Point2D) Point2D { return p.Add(v) }

// Rotate rotates p by angleRadians (counterclockwise) about center.
func (p Point2D) Rotate(angleRadians float64, center Point2D) Point2D {
	return p.Transform(Rotation(angleRadians, center))
}

// Scale scales p by (sx, sy) about center.
func (p Point2D) Scale(sx, sy float64, center Point2D) Point2D {
	return p.Transform(Scaling(sx, sy, center))
}

// Transform maps p through an arbitrary affine transform.
func (p Point2D) Transform(t Transform2D) Point2D { return t.Apply(p) }

// IsCollinearTo reports whether every point in points lies on the line
// fixed by the first two points that are distinct within tol. Points
// are tested against that fixed baseline, not against a sliding
// window, so a repeated early point cannot mask a later bend.
func IsCollinearTo(points []Point2D, tol float64) bool {
	if len(points) < 3 {
		return true
	}
	anchor := points[0]
	base := -1
	for i := 1; i < len(points); i++ {
		if points[i].Sub(anchor).Magnitude() > tol {
			base = i
			break
		}
	}
	if base == -1 {
		return true
	}
	for i := base + 1; i < len(points); i++ {
		area := triangleArea2(anchor, points[base], points[i])
		if math.Abs(area) > tol {
			return false
		}
	}
	return true
}

// triangleArea2 returns twice the signed area of the triangle abc.
func triangleArea2(a, b, c Point2D) float64 {
	return Cross(b.Sub(a), c.Sub(a))
}

// String renders p in the canonical "(x, y)" fingerprint form used for
// equality, hashing, and round-tripping via FromString.
func (p Point2D) String() string {
	return fmt.Sprintf("(%s, %s)", strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64))
}

// FromString parses the "(x, y)" form produced by String.
func FromString(s string) (Point2D, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Point2D{}, geomerr.Domain("geom2d: malformed point literal %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point2D{}, geomerr.Domain("geom2d: malformed point literal %q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point2D{}, geomerr.Domain("geom2d: malformed point literal %q: %v", s, err)
	}
	return Point2D{X: x, Y: y}, nil
}
