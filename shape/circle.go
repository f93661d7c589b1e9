package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Circle is a center and a non-negative radius.
type Circle struct {
	Center geom2d.Point2D
	Radius float64
}

// NewCircle constructs a Circle, failing with a domain error for a
// negative radius.
func NewCircle(center geom2d.Point2D, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, geomerr.Domain("shape: Circle radius must be non-negative, got %g", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Bounds() geom2d.Box {
	r := geom2d.New(c.Radius, c.Radius)
	return geom2d.Box{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}

func (c Circle) Contains(p geom2d.Point2D, tol float64) bool {
	return p.Sub(c.Center).Magnitude() <= c.Radius+tol
}

func (c Circle) Translate(v geom2d.Point2D) Shape2D {
	return Circle{Center: c.Center.Translate(v), Radius: c.Radius}
}

func (c Circle) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Circle{Center: c.Center.Rotate(angle, center), Radius: c.Radius}
}

// Scale preserves Circle for uniform scaling; non-uniform scaling
// upgrades to an Ellipse via the conjugate-semi-diameter construction.
func (c Circle) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	if math.Abs(sx-sy) <= geom2d.Epsilon {
		newCenter := c.Center.Scale(sx, sy, center)
		return Circle{Center: newCenter, Radius: c.Radius * math.Abs(sx)}
	}
	return c.Transform(geom2d.Scaling(sx, sy, center))
}

// Transform maps three corners of the inscribing square (center,
// center+(r,0), center+(0,r)) through t and reconstructs the image as
// an Ellipse from the resulting parallelogram; a similarity transform
// (pure rotation/translation/uniform scale) collapses back to a Circle.
func (c Circle) Transform(t geom2d.Transform2D) Shape2D {
	tCenter := t.Apply(c.Center)
	tx := t.Apply(c.Center.Add(geom2d.New(c.Radius, 0)))
	ty := t.Apply(c.Center.Add(geom2d.New(0, c.Radius)))
	u, v := tx.Sub(tCenter), ty.Sub(tCenter)

	if isSimilarity(t) {
		return Circle{Center: tCenter, Radius: u.Magnitude()}
	}
	semiMajor, semiMinor, rot := ellipseAxesFromConjugateSemiDiameters(u, v)
	return Ellipse{Center: tCenter, MajorAxis: semiMajor * 2, MinorAxis: semiMinor * 2, Rotation: rot}
}

// isSimilarity reports whether t's linear block is a rotation combined
// with a single uniform scale (A == E, B == -D), so it maps a circle
// to another circle rather than an ellipse.
func isSimilarity(t geom2d.Transform2D) bool {
	return math.Abs(t.A-t.E) <= geom2d.Epsilon && math.Abs(t.B+t.D) <= geom2d.Epsilon
}

// Decompose supports Circle (itself), Ellipse (degenerate, equal
// axes), Polygon (CircleToBezierSamples-gon approximation), and Bezier
// (the standard four-arc magic-constant approximation).
func (c Circle) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindCircle):
		return []Shape2D{c}, nil
	case containsKind(into, KindEllipse):
		return []Shape2D{Ellipse{Center: c.Center, MajorAxis: c.Radius * 2, MinorAxis: c.Radius * 2, Rotation: 0}}, nil
	case containsKind(into, KindBezier):
		return []Shape2D{BezierCircle(c.Center, c.Radius)}, nil
	case containsKind(into, KindPolygon):
		n := samplesForTolerance(c.Radius, tol, geom2d.CircleToBezierSamples)
		return []Shape2D{Polygon{Points: regularPolygonPoints(c.Center, c.Radius, n, 0)}}, nil
	default:
		return nil, unsupportedDecompose(KindCircle, into)
	}
}

// IntersectCircle computes the intersection of c and other via the
// standard radical-line construction, returning 0, 1 (tangent), or 2
// points.
func (c Circle) IntersectCircle(other Circle) []geom2d.Point2D {
	d := other.Center.Sub(c.Center).Magnitude()
	if d <= geom2d.Epsilon && math.Abs(c.Radius-other.Radius) <= geom2d.Epsilon {
		return nil // coincident circles: infinite intersection, not representable as points
	}
	if d > c.Radius+other.Radius+geom2d.Epsilon || d < math.Abs(c.Radius-other.Radius)-geom2d.Epsilon {
		return nil // disjoint (separate or one contains the other)
	}

	a := (c.Radius*c.Radius - other.Radius*other.Radius + d*d) / (2 * d)
	hSq := c.Radius*c.Radius - a*a
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)

	dir := other.Center.Sub(c.Center).UnitVector()
	mid := c.Center.Add(dir.MulScalar(a))

	if h <= geom2d.Epsilon {
		return []geom2d.Point2D{mid} // tangent
	}
	perp := dir.PerpendicularVector()
	p1 := mid.Add(perp.MulScalar(h))
	p2 := mid.Sub(perp.MulScalar(h))
	return []geom2d.Point2D{p1, p2}
}

// TangentPointsFromPoint returns the 0, 1, or 2 points on c where a
// line through p is tangent to the circle, depending on whether p is
// inside, on, or outside c.
func (c Circle) TangentPointsFromPoint(p geom2d.Point2D) []geom2d.Point2D {
	d := p.Sub(c.Center).Magnitude()
	if d < c.Radius-geom2d.Epsilon {
		return nil // p strictly inside: no tangent line exists
	}
	if math.Abs(d-c.Radius) <= geom2d.Epsilon {
		return []geom2d.Point2D{p} // p on the circle: the point itself is the tangent point
	}

	// Standard construction: tangent points lie at distance
	// r^2/d along the center->p direction, offset perpendicular by
	// r*sqrt(d^2-r^2)/d.
	dirToP := p.Sub(c.Center).UnitVector()
	a := c.Radius * c.Radius / d
	h := c.Radius * math.Sqrt(d*d-c.Radius*c.Radius) / d
	base := c.Center.Add(dirToP.MulScalar(a))
	perp := dirToP.PerpendicularVector()
	return []geom2d.Point2D{base.Add(perp.MulScalar(h)), base.Sub(perp.MulScalar(h))}
}

// IntersectLine intersects c with the carrying line of l (bounded to
// l's segment), returning the real intersection points.
func (c Circle) IntersectLine(l Line2D) []geom2d.Point2D {
	d := l.End.Sub(l.Start)
	f := l.Start.Sub(c.Center)

	a := d.MagnitudeSquared()
	if a <= geom2d.Epsilon {
		return nil
	}
	b := 2 * geom2d.Dot(f, d)
	cc := f.MagnitudeSquared() - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	var pts []geom2d.Point2D
	for _, t := range []float64{t1, t2} {
		if t >= -geom2d.Epsilon && t <= 1+geom2d.Epsilon {
			pts = append(pts, l.Start.Add(d.MulScalar(t)))
		}
	}
	return pts
}

// samplesForTolerance scales a family's default sample count up when a
// tighter tol than the default chordal deviation demands it, never
// going below the default.
func samplesForTolerance(radius, tol float64, defaultSamples int) int {
	if tol <= 0 || radius <= 0 {
		return defaultSamples
	}
	// Chordal deviation for n samples of a circle of radius r is
	// approximately r*(1 - cos(pi/n)). Solve for n such that the
	// deviation is within tol, floored at the family default.
	needed := math.Pi / math.Acos(1-math.Min(tol/radius, 1))
	n := int(math.Ceil(needed))
	if n < defaultSamples {
		return defaultSamples
	}
	return n
}

// regularPolygonPoints returns n points evenly spaced around center at
// radius r, starting at startAngle, in CCW order.
func regularPolygonPoints(center geom2d.Point2D, r float64, n int, startAngle float64) []geom2d.Point2D {
	pts := make([]geom2d.Point2D, n)
	for i := 0; i < n; i++ {
		theta := startAngle + 2*math.Pi*float64(i)/float64(n)
		pts[i] = center.Add(geom2d.FromPolar(r, theta))
	}
	return pts
}
