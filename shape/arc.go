package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Arc is a circular arc: a center, radius, start angle, and signed
// angular span (positive counterclockwise) in radians.
type Arc struct {
	Center     geom2d.Point2D
	Radius     float64
	StartAngle float64
	SpanAngle  float64
}

// NewArc constructs an Arc, failing with a domain error for a negative radius.
func NewArc(center geom2d.Point2D, radius, startAngle, spanAngle float64) (Arc, error) {
	if radius < 0 {
		return Arc{}, geomerr.Domain("shape: Arc radius must be non-negative, got %g", radius)
	}
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, SpanAngle: spanAngle}, nil
}

func (a Arc) Kind() Kind { return KindArc }

// EndAngle returns StartAngle + SpanAngle.
func (a Arc) EndAngle() float64 { return a.StartAngle + a.SpanAngle }

// PointAtAngle returns the point on the full supporting circle at theta,
// without regard to whether theta lies within the arc's span.
func (a Arc) PointAtAngle(theta float64) geom2d.Point2D {
	return a.Center.Add(geom2d.FromPolar(a.Radius, theta))
}

// StartPoint and EndPoint return the arc's two endpoints.
func (a Arc) StartPoint() geom2d.Point2D { return a.PointAtAngle(a.StartAngle) }
func (a Arc) EndPoint() geom2d.Point2D   { return a.PointAtAngle(a.EndAngle()) }

// ContainsAngle reports whether theta lies within the arc's span,
// measured modulo 2*pi in the direction of SpanAngle's sign.
func (a Arc) ContainsAngle(theta float64) bool {
	span := a.SpanAngle
	delta := normalizeAngleDelta(theta-a.StartAngle, span)
	if span >= 0 {
		return delta >= -geom2d.Epsilon && delta <= span+geom2d.Epsilon
	}
	return delta <= geom2d.Epsilon && delta >= span-geom2d.Epsilon
}

// normalizeAngleDelta reduces raw to the representative in
// (-pi, pi] + a multiple of 2*pi chosen to share sign with span, so
// span-direction comparisons in ContainsAngle behave correctly for
// spans with |span| > 2*pi as well as negative spans.
func normalizeAngleDelta(raw, span float64) float64 {
	const tau = 2 * math.Pi
	delta := math.Mod(raw, tau)
	if span >= 0 {
		if delta < 0 {
			delta += tau
		}
	} else {
		if delta > 0 {
			delta -= tau
		}
	}
	return delta
}

func (a Arc) Bounds() geom2d.Box {
	b := geom2d.BoxFromPoints([]geom2d.Point2D{a.StartPoint(), a.EndPoint()})
	for _, axis := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.ContainsAngle(axis) {
			b = b.ExpandPoint(a.PointAtAngle(axis))
		}
	}
	return b
}

// Contains tests point-on-arc: within tol of the supporting circle and
// within the angular span (Arc is an open shape).
func (a Arc) Contains(p geom2d.Point2D, tol float64) bool {
	d := p.Sub(a.Center).Magnitude()
	if math.Abs(d-a.Radius) > tol {
		return false
	}
	theta := p.Sub(a.Center).AngleRadians()
	return a.ContainsAngle(theta)
}

func (a Arc) Translate(v geom2d.Point2D) Shape2D {
	return Arc{Center: a.Center.Translate(v), Radius: a.Radius, StartAngle: a.StartAngle, SpanAngle: a.SpanAngle}
}

func (a Arc) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Arc{Center: a.Center.Rotate(angle, center), Radius: a.Radius, StartAngle: a.StartAngle + angle, SpanAngle: a.SpanAngle}
}

// Scale stays an Arc for uniform scaling; non-uniform scaling upgrades
// to a BezierPath, since an arc's image under non-uniform scale is an
// elliptical arc the algebra has no dedicated type for.
func (a Arc) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	if math.Abs(sx-sy) <= geom2d.Epsilon {
		return Arc{Center: a.Center.Scale(sx, sy, center), Radius: a.Radius * math.Abs(sx), StartAngle: a.StartAngle, SpanAngle: a.SpanAngle}
	}
	return a.Transform(geom2d.Scaling(sx, sy, center))
}

// Transform upgrades to a BezierPath sampled at ArcToBezierSamples
// points across the span for any non-similarity map; a similarity
// transform (rotation/translation/uniform scale) collapses back to an Arc.
func (a Arc) Transform(t geom2d.Transform2D) Shape2D {
	if isSimilarity(t) {
		tCenter := t.Apply(a.Center)
		tStart := t.Apply(a.StartPoint())
		radius := tStart.Sub(tCenter).Magnitude()
		rotationDelta := tStart.Sub(tCenter).AngleRadians() - a.StartAngle
		span := a.SpanAngle
		if t.Determinant() < 0 {
			span = -span
		}
		return Arc{Center: tCenter, Radius: radius, StartAngle: a.StartAngle + rotationDelta, SpanAngle: span}
	}
	n := samplesForTolerance(a.Radius, 0, geom2d.ArcToBezierSamples)
	pts := make([]geom2d.Point2D, n+1)
	for i := 0; i <= n; i++ {
		theta := a.StartAngle + a.SpanAngle*float64(i)/float64(n)
		pts[i] = t.Apply(a.PointAtAngle(theta))
	}
	bp, _ := FromPolyline(PolyLine2D{Points: pts}, 1.0/3)
	return bp
}

// Decompose supports Arc (itself), PolyLine (sampled chord
// approximation), and Bezier (ArcToBezierSamples-sample fit).
func (a Arc) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindArc):
		return []Shape2D{a}, nil
	case containsKind(into, KindBezier):
		n := samplesForTolerance(a.Radius, tol, geom2d.ArcToBezierSamples)
		pts := make([]geom2d.Point2D, n+1)
		for i := 0; i <= n; i++ {
			theta := a.StartAngle + a.SpanAngle*float64(i)/float64(n)
			pts[i] = a.PointAtAngle(theta)
		}
		bp, err := FromPolyline(PolyLine2D{Points: pts}, 1.0/3)
		if err != nil {
			return nil, err
		}
		return []Shape2D{bp}, nil
	case containsKind(into, KindPolyLine):
		n := samplesForTolerance(a.Radius, tol, geom2d.ArcToBezierSamples)
		pts := make([]geom2d.Point2D, n+1)
		for i := 0; i <= n; i++ {
			theta := a.StartAngle + a.SpanAngle*float64(i)/float64(n)
			pts[i] = a.PointAtAngle(theta)
		}
		return []Shape2D{PolyLine2D{Points: pts}}, nil
	default:
		return nil, unsupportedDecompose(KindArc, into)
	}
}

// IntersectLine intersects the full supporting circle with l, keeping
// only the points whose angle falls within the arc's span.
func (a Arc) IntersectLine(l Line2D) []geom2d.Point2D {
	circ := Circle{Center: a.Center, Radius: a.Radius}
	var out []geom2d.Point2D
	for _, p := range circ.IntersectLine(l) {
		if a.ContainsAngle(p.Sub(a.Center).AngleRadians()) {
			out = append(out, p)
		}
	}
	return out
}

// IntersectArc intersects the two supporting circles, keeping only the
// points whose angle falls within both arcs' spans.
func (a Arc) IntersectArc(other Arc) []geom2d.Point2D {
	c1 := Circle{Center: a.Center, Radius: a.Radius}
	c2 := Circle{Center: other.Center, Radius: other.Radius}
	var out []geom2d.Point2D
	for _, p := range c1.IntersectCircle(c2) {
		t1 := p.Sub(a.Center).AngleRadians()
		t2 := p.Sub(other.Center).AngleRadians()
		if a.ContainsAngle(t1) && other.ContainsAngle(t2) {
			out = append(out, p)
		}
	}
	return out
}

// FromThreePoints constructs the arc through p0, p1, p2 (in that
// travel order) using the circumscribed-circle construction, failing
// with a DegenerateInput error if the three points are collinear.
func FromThreePoints(p0, p1, p2 geom2d.Point2D) (Arc, error) {
	if geom2d.IsCollinearTo([]geom2d.Point2D{p0, p1, p2}, geom2d.Epsilon) {
		return Arc{}, geomerr.Degenerate("shape: Arc.FromThreePoints points are collinear")
	}

	ax, ay := p0.X, p0.Y
	bx, by := p1.X, p1.Y
	cx, cy := p2.X, p2.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	center := geom2d.New(ux, uy)
	radius := p0.Sub(center).Magnitude()

	startAngle := p0.Sub(center).AngleRadians()
	midAngle := p1.Sub(center).AngleRadians()
	endAngle := p2.Sub(center).AngleRadians()

	// Walk CCW from start; if the midpoint isn't passed before the end
	// on that walk, the true travel direction is CW, so negate the span.
	ccwToMid := normalizeAngleDelta(midAngle-startAngle, 1)
	ccwToEnd := normalizeAngleDelta(endAngle-startAngle, 1)
	if ccwToMid <= ccwToEnd {
		return Arc{Center: center, Radius: radius, StartAngle: startAngle, SpanAngle: ccwToEnd}, nil
	}
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, SpanAngle: ccwToEnd - 2*math.Pi}, nil
}
