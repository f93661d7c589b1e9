package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// bezierCircleMagic is the standard four-arc cubic-Bezier
// approximation constant for a unit circle quadrant.
const bezierCircleMagic = 0.5522847498307936

// BezierPath is a list of control points interpreted in cubic groups
// of 3+1: point 0 is the path start, then every group of
// (control, control, anchor) is one cubic segment. If the supplied
// point count doesn't satisfy len%3==1, the tail is padded with
// copies of the final point so segments can always be reconstituted
// on demand.
type BezierPath struct {
	ControlPoints []geom2d.Point2D
}

// NewBezierPath constructs a BezierPath, failing with a domain error
// if fewer than 4 control points (one full cubic segment) are supplied.
func NewBezierPath(points []geom2d.Point2D) (BezierPath, error) {
	if len(points) < 4 {
		return BezierPath{}, geomerr.Domain("shape: BezierPath needs at least 4 control points, got %d", len(points))
	}
	return BezierPath{ControlPoints: points}, nil
}

func (b BezierPath) Kind() Kind { return KindBezier }

// padded returns ControlPoints with its tail padded by copies of the
// final point so that (len-1)%3 == 0.
func (b BezierPath) padded() []geom2d.Point2D {
	pts := b.ControlPoints
	rem := (len(pts) - 1) % 3
	if rem == 0 {
		return pts
	}
	out := append([]geom2d.Point2D(nil), pts...)
	last := pts[len(pts)-1]
	for i := 0; i < 3-rem; i++ {
		out = append(out, last)
	}
	return out
}

// Segments reconstitutes the flat control-point list into cubic
// segments, each a [4]Point2D of (p0, c1, c2, p3).
func (b BezierPath) Segments() [][4]geom2d.Point2D {
	pts := b.padded()
	n := (len(pts) - 1) / 3
	segs := make([][4]geom2d.Point2D, n)
	for i := 0; i < n; i++ {
		base := i * 3
		segs[i] = [4]geom2d.Point2D{pts[base], pts[base+1], pts[base+2], pts[base+3]}
	}
	return segs
}

func (b BezierPath) Bounds() geom2d.Box {
	return geom2d.BoxFromPoints(b.ControlPoints)
}

// Contains tests point-on-path within tol via ClosestPointTo (BezierPath
// is an open shape).
func (b BezierPath) Contains(p geom2d.Point2D, tol float64) bool {
	return p.Sub(b.ClosestPointTo(p)).Magnitude() <= tol
}

func (b BezierPath) Translate(v geom2d.Point2D) Shape2D {
	return BezierPath{ControlPoints: translateAll(b.ControlPoints, v)}
}

func (b BezierPath) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return BezierPath{ControlPoints: rotateAll(b.ControlPoints, angle, center)}
}

func (b BezierPath) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return BezierPath{ControlPoints: scaleAll(b.ControlPoints, sx, sy, center)}
}

func (b BezierPath) Transform(t geom2d.Transform2D) Shape2D {
	return BezierPath{ControlPoints: t.ApplyMany(b.ControlPoints)}
}

// Decompose supports Bezier (itself) and PolyLine (ToPolyline with the
// default flattening tolerance, or the caller's tol if positive).
func (b BezierPath) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindBezier):
		return []Shape2D{b}, nil
	case containsKind(into, KindPolyLine):
		if tol <= 0 {
			tol = geom2d.FlattenTolerance
		}
		return []Shape2D{b.ToPolyline(0, tol)}, nil
	default:
		return nil, unsupportedDecompose(KindBezier, into)
	}
}

// segmentParam maps a global parameter t in [0,1] to a (segment index,
// local u in [0,1]) pair, clamping at the path boundaries.
func (b BezierPath) segmentParam(t float64) (int, float64) {
	n := len(b.Segments())
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return n - 1, 1
	}
	scaled := t * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	return idx, scaled - float64(idx)
}

// PointAtParameter evaluates the path at global parameter t in [0,1]
// using the cubic Bernstein basis on the selected segment.
func (b BezierPath) PointAtParameter(t float64) geom2d.Point2D {
	idx, u := b.segmentParam(t)
	return cubicBezierPoint(b.Segments()[idx], u)
}

// TangentAtParameter returns the unit tangent direction at global
// parameter t.
func (b BezierPath) TangentAtParameter(t float64) geom2d.Point2D {
	idx, u := b.segmentParam(t)
	return cubicBezierDerivative(b.Segments()[idx], u).UnitVector()
}

func cubicBezierPoint(seg [4]geom2d.Point2D, u float64) geom2d.Point2D {
	mu := 1 - u
	a := mu * mu * mu
	c := 3 * mu * mu * u
	d := 3 * mu * u * u
	e := u * u * u
	return geom2d.New(
		a*seg[0].X+c*seg[1].X+d*seg[2].X+e*seg[3].X,
		a*seg[0].Y+c*seg[1].Y+d*seg[2].Y+e*seg[3].Y,
	)
}

func cubicBezierDerivative(seg [4]geom2d.Point2D, u float64) geom2d.Point2D {
	mu := 1 - u
	a := 3 * mu * mu
	b := 6 * mu * u
	c := 3 * u * u
	d01 := seg[1].Sub(seg[0])
	d12 := seg[2].Sub(seg[1])
	d23 := seg[3].Sub(seg[2])
	return geom2d.New(
		a*d01.X+b*d12.X+c*d23.X,
		a*d01.Y+b*d12.Y+c*d23.Y,
	)
}

func cubicBezierSecondDerivative(seg [4]geom2d.Point2D, u float64) geom2d.Point2D {
	mu := 1 - u
	d0 := seg[2].Sub(seg[1]).Sub(seg[1].Sub(seg[0]))
	d1 := seg[3].Sub(seg[2]).Sub(seg[2].Sub(seg[1]))
	return geom2d.New(6*mu*d0.X+6*u*d1.X, 6*mu*d0.Y+6*u*d1.Y)
}

// flatness is the maximum perpendicular distance from the two interior
// control points of a cubic segment to its chord p0-p3.
func flatness(seg [4]geom2d.Point2D) float64 {
	chord := Line2D{Start: seg[0], End: seg[3]}
	return math.Max(chord.DistanceToPoint(seg[1]), chord.DistanceToPoint(seg[2]))
}

// ToPolyline flattens the path. If tol > 0, each segment is
// recursively subdivided (de Casteljau midpoint split) until flatness
// is within tol; otherwise segmentsPerCurve uniform samples are
// emitted per segment.
func (b BezierPath) ToPolyline(segmentsPerCurve int, tol float64) PolyLine2D {
	var pts []geom2d.Point2D
	segs := b.Segments()
	for i, seg := range segs {
		var samples []geom2d.Point2D
		if tol > 0 {
			samples = flattenAdaptive(seg, tol)
		} else {
			n := segmentsPerCurve
			if n < 1 {
				n = 1
			}
			samples = make([]geom2d.Point2D, 0, n)
			for j := 0; j <= n; j++ {
				samples = append(samples, cubicBezierPoint(seg, float64(j)/float64(n)))
			}
		}
		if i > 0 {
			samples = samples[1:] // avoid duplicating the shared joint point
		}
		pts = append(pts, samples...)
	}
	return PolyLine2D{Points: pts}
}

// flattenAdaptive recursively de Casteljau-splits seg until every
// sub-segment's flatness is within tol, returning the resulting chain
// of endpoints (inclusive of both ends).
func flattenAdaptive(seg [4]geom2d.Point2D, tol float64) []geom2d.Point2D {
	const maxDepth = 24
	var recurse func(s [4]geom2d.Point2D, depth int) []geom2d.Point2D
	recurse = func(s [4]geom2d.Point2D, depth int) []geom2d.Point2D {
		if depth >= maxDepth || flatness(s) <= tol {
			return []geom2d.Point2D{s[0], s[3]}
		}
		left, right := splitCubicBezier(s, 0.5)
		leftPts := recurse(left, depth+1)
		rightPts := recurse(right, depth+1)
		return append(leftPts[:len(leftPts)-1], rightPts...)
	}
	return recurse(seg, 0)
}

// splitCubicBezier performs a de Casteljau split of seg at parameter u.
func splitCubicBezier(seg [4]geom2d.Point2D, u float64) (left, right [4]geom2d.Point2D) {
	lerp := func(a, b geom2d.Point2D) geom2d.Point2D {
		return geom2d.New(a.X+(b.X-a.X)*u, a.Y+(b.Y-a.Y)*u)
	}
	ab := lerp(seg[0], seg[1])
	bc := lerp(seg[1], seg[2])
	cd := lerp(seg[2], seg[3])
	abc := lerp(ab, bc)
	bcd := lerp(bc, cd)
	abcd := lerp(abc, bcd)
	return [4]geom2d.Point2D{seg[0], ab, abc, abcd}, [4]geom2d.Point2D{abcd, bcd, cd, seg[3]}
}

// ClosestPointTo coarse-samples 16 points per segment, then refines
// with up to 20 bounded-Newton steps on (q - B(t)).B'(t) = 0.
func (b BezierPath) ClosestPointTo(q geom2d.Point2D) geom2d.Point2D {
	const coarseSamplesPerSeg = 16
	const maxNewtonSteps = 20

	segs := b.Segments()
	n := len(segs)

	bestSeg, bestU, bestDist := 0, 0.0, math.Inf(1)
	for si, seg := range segs {
		for i := 0; i <= coarseSamplesPerSeg; i++ {
			u := float64(i) / coarseSamplesPerSeg
			d := q.Sub(cubicBezierPoint(seg, u)).MagnitudeSquared()
			if d < bestDist {
				bestDist, bestSeg, bestU = d, si, u
			}
		}
	}

	seg := segs[bestSeg]
	u := bestU
	for i := 0; i < maxNewtonSteps; i++ {
		diff := cubicBezierPoint(seg, u).Sub(q)
		d1 := cubicBezierDerivative(seg, u)
		d2 := cubicBezierSecondDerivative(seg, u)
		f := geom2d.Dot(diff, d1)
		fPrime := geom2d.Dot(d1, d1) + geom2d.Dot(diff, d2)
		if math.Abs(fPrime) <= geom2d.Epsilon {
			break
		}
		next := u - f/fPrime
		if next < 0 {
			next = 0
		}
		if next > 1 {
			next = 1
		}
		if math.Abs(next-u) <= 1e-12 {
			u = next
			break
		}
		u = next
	}
	_ = n
	return cubicBezierPoint(seg, u)
}

// FromPolyline builds a smooth BezierPath through pl's vertices. Each
// vertex's tangent is the normalized chord between its neighbors;
// control points lie along that tangent at distance
// smoothness*adjacent-segment-length.
func FromPolyline(pl PolyLine2D, smoothness float64) (BezierPath, error) {
	pts := pl.Points
	if len(pts) < 2 {
		return BezierPath{}, geomerr.Domain("shape: FromPolyline needs at least 2 points, got %d", len(pts))
	}
	n := len(pts)
	tangents := make([]geom2d.Point2D, n)
	for i := range pts {
		switch {
		case i == 0:
			tangents[i] = pts[1].Sub(pts[0]).UnitVector()
		case i == n-1:
			tangents[i] = pts[n-1].Sub(pts[n-2]).UnitVector()
		default:
			tangents[i] = pts[i+1].Sub(pts[i-1]).UnitVector()
		}
	}

	control := []geom2d.Point2D{pts[0]}
	for i := 0; i < n-1; i++ {
		segLen := pts[i+1].Sub(pts[i]).Magnitude()
		c1 := pts[i].Add(tangents[i].MulScalar(smoothness * segLen))
		c2 := pts[i+1].Sub(tangents[i+1].MulScalar(smoothness * segLen))
		control = append(control, c1, c2, pts[i+1])
	}
	return BezierPath{ControlPoints: control}, nil
}

// bezierFromParametric samples a closed parametric curve fn over
// [0, 2*pi) at n points and fits a smooth BezierPath through them via
// FromPolyline with a conservative smoothness factor.
func bezierFromParametric(n int, fn func(theta float64) geom2d.Point2D) Shape2D {
	pts := make([]geom2d.Point2D, 0, n+1)
	for i := 0; i <= n; i++ {
		pts = append(pts, fn(2*math.Pi*float64(i)/float64(n)))
	}
	bp, _ := FromPolyline(PolyLine2D{Points: pts}, 1.0/3)
	return bp
}

// BezierCircle returns the standard four-arc cubic-Bezier
// approximation of a circle, using the magic constant
// k = r*0.5522847498...
func BezierCircle(center geom2d.Point2D, r float64) BezierPath {
	k := r * bezierCircleMagic
	pt := func(x, y float64) geom2d.Point2D { return center.Add(geom2d.New(x, y)) }
	return BezierPath{ControlPoints: []geom2d.Point2D{
		pt(r, 0), pt(r, k), pt(k, r), pt(0, r),
		pt(-k, r), pt(-r, k), pt(-r, 0),
		pt(-r, -k), pt(-k, -r), pt(0, -r),
		pt(k, -r), pt(r, -k), pt(r, 0),
	}}
}
