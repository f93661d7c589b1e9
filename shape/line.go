package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
)

// Line2D is an ordered segment from Start to End.
type Line2D struct {
	Start, End geom2d.Point2D
}

// NewLine constructs a Line2D from two points.
func NewLine(start, end geom2d.Point2D) Line2D { return Line2D{Start: start, End: end} }

func (l Line2D) Kind() Kind { return KindLine }

func (l Line2D) Bounds() geom2d.Box {
	return geom2d.BoxFromPoints([]geom2d.Point2D{l.Start, l.End})
}

// Length returns the Euclidean length of the segment.
func (l Line2D) Length() float64 { return l.End.Sub(l.Start).Magnitude() }

// Midpoint returns the point halfway between Start and End.
func (l Line2D) Midpoint() geom2d.Point2D {
	return geom2d.New((l.Start.X+l.End.X)/2, (l.Start.Y+l.End.Y)/2)
}

// AngleRadians returns the direction of End-Start.
func (l Line2D) AngleRadians() float64 { return l.End.Sub(l.Start).AngleRadians() }

// Direction returns the unit vector from Start to End.
func (l Line2D) Direction() geom2d.Point2D { return l.End.Sub(l.Start).UnitVector() }

// Perpendicular returns the unit vector perpendicular (CCW) to Direction.
func (l Line2D) Perpendicular() geom2d.Point2D { return l.Direction().PerpendicularVector() }

// Contains tests point-on-segment within tol (Line2D is an open shape).
func (l Line2D) Contains(p geom2d.Point2D, tol float64) bool {
	return l.DistanceToPoint(p) <= tol
}

// DistanceToPoint returns the distance from p to the closest point on
// the bounded segment.
func (l Line2D) DistanceToPoint(p geom2d.Point2D) float64 {
	return p.Sub(l.ClosestPointTo(p)).Magnitude()
}

// ClosestPointTo projects p onto the line and clamps the parameter to [0,1].
func (l Line2D) ClosestPointTo(p geom2d.Point2D) geom2d.Point2D {
	d := l.End.Sub(l.Start)
	lenSq := d.MagnitudeSquared()
	if lenSq <= geom2d.Epsilon {
		return l.Start
	}
	t := geom2d.Dot(p.Sub(l.Start), d) / lenSq
	t = clamp01(t)
	return l.Start.Add(d.MulScalar(t))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// IsParallelTo reports whether the two lines' directions are parallel
// within tol (measured on the cross product of unit directions).
func (l Line2D) IsParallelTo(other Line2D, tol float64) bool {
	return math.Abs(geom2d.Cross(l.Direction(), other.Direction())) <= tol
}

// IsPerpendicularTo reports whether the two lines' directions are
// perpendicular within tol (measured on the dot product of unit directions).
func (l Line2D) IsPerpendicularTo(other Line2D, tol float64) bool {
	return math.Abs(geom2d.Dot(l.Direction(), other.Direction())) <= tol
}

// LineIntersectionKind discriminates the three outcomes of IntersectsAt.
type LineIntersectionKind int

const (
	// NoIntersection: parallel, non-collinear lines, or an out-of-bounds
	// crossing when bounded.
	NoIntersection LineIntersectionKind = iota
	// PointIntersection: the lines cross at exactly one point.
	PointIntersection
	// OverlapIntersection: the lines are collinear and overlap along a
	// sub-segment.
	OverlapIntersection
)

// LineIntersection is the result of Line2D.IntersectsAt.
type LineIntersection struct {
	Kind    LineIntersectionKind
	Point   geom2d.Point2D // valid when Kind == PointIntersection
	Overlap Line2D         // valid when Kind == OverlapIntersection
}

// IntersectsAt computes the intersection of l and other via the 2x2
// parametric system solved with cross products. boundedSelf/boundedOther
// each clip that line's parameter to [0,1] before accepting a result.
func (l Line2D) IntersectsAt(other Line2D, boundedSelf, boundedOther bool) LineIntersection {
	d1 := l.End.Sub(l.Start)
	d2 := other.End.Sub(other.Start)
	w := other.Start.Sub(l.Start)
	denom := geom2d.Cross(d1, d2)

	if math.Abs(denom) <= geom2d.Epsilon {
		if math.Abs(geom2d.Cross(w, d2)) > geom2d.Epsilon {
			return LineIntersection{Kind: NoIntersection}
		}
		return l.collinearOverlap(other, boundedSelf)
	}

	t := geom2d.Cross(w, d2) / denom
	u := geom2d.Cross(w, d1) / denom
	if boundedSelf && (t < -geom2d.Epsilon || t > 1+geom2d.Epsilon) {
		return LineIntersection{Kind: NoIntersection}
	}
	if boundedOther && (u < -geom2d.Epsilon || u > 1+geom2d.Epsilon) {
		return LineIntersection{Kind: NoIntersection}
	}
	return LineIntersection{Kind: PointIntersection, Point: l.Start.Add(d1.MulScalar(t))}
}

// collinearOverlap computes the overlap interval of two collinear lines
// in l's own parameter space, optionally clipped to [0,1] when boundedSelf.
func (l Line2D) collinearOverlap(other Line2D, boundedSelf bool) LineIntersection {
	d1 := l.End.Sub(l.Start)
	lenSq := d1.MagnitudeSquared()
	if lenSq <= geom2d.Epsilon {
		// l is degenerate; treat as a point test.
		if other.Contains(l.Start, geom2d.Epsilon) {
			return LineIntersection{Kind: PointIntersection, Point: l.Start}
		}
		return LineIntersection{Kind: NoIntersection}
	}

	paramOf := func(p geom2d.Point2D) float64 { return geom2d.Dot(p.Sub(l.Start), d1) / lenSq }
	t0, t1 := paramOf(other.Start), paramOf(other.End)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if boundedSelf {
		t0 = math.Max(t0, 0)
		t1 = math.Min(t1, 1)
	}
	if t0 > t1+geom2d.Epsilon {
		return LineIntersection{Kind: NoIntersection}
	}
	a := l.Start.Add(d1.MulScalar(t0))
	b := l.Start.Add(d1.MulScalar(t1))
	if a.Equals(b) {
		return LineIntersection{Kind: PointIntersection, Point: a}
	}
	return LineIntersection{Kind: OverlapIntersection, Overlap: Line2D{Start: a, End: b}}
}

func (l Line2D) Translate(v geom2d.Point2D) Shape2D {
	return Line2D{Start: l.Start.Translate(v), End: l.End.Translate(v)}
}

func (l Line2D) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Line2D{Start: l.Start.Rotate(angle, center), End: l.End.Rotate(angle, center)}
}

func (l Line2D) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return Line2D{Start: l.Start.Scale(sx, sy, center), End: l.End.Scale(sx, sy, center)}
}

func (l Line2D) Transform(t geom2d.Transform2D) Shape2D {
	return Line2D{Start: l.Start.Transform(t), End: l.End.Transform(t)}
}

// Decompose supports Line, PolyLine (its two endpoints), and Bezier
// (a degenerate single-segment cubic lying exactly on the line).
func (l Line2D) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindLine):
		return []Shape2D{l}, nil
	case containsKind(into, KindPolyLine):
		return []Shape2D{PolyLine2D{Points: []geom2d.Point2D{l.Start, l.End}}}, nil
	case containsKind(into, KindBezier):
		d := l.End.Sub(l.Start)
		c1 := l.Start.Add(d.MulScalar(1.0 / 3))
		c2 := l.Start.Add(d.MulScalar(2.0 / 3))
		return []Shape2D{BezierPath{ControlPoints: []geom2d.Point2D{l.Start, c1, c2, l.End}}}, nil
	default:
		return nil, unsupportedDecompose(KindLine, into)
	}
}
