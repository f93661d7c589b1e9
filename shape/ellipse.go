package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Ellipse is a center, a major/minor axis length pair (MajorAxis >=
// MinorAxis, both > 0, full axis lengths rather than semi-axes — the
// convention the original BelfryCAD ellipse uses), and a rotation in
// radians. Every geometric computation below works in semi-axes
// (semiMajor/semiMinor, each half the stored field) since that is what
// the ellipse equation and its parametric form actually need.
type Ellipse struct {
	Center               geom2d.Point2D
	MajorAxis, MinorAxis float64
	Rotation             float64
}

// NewEllipse constructs an Ellipse, failing with a domain error unless
// 0 < minorAxis <= majorAxis.
func NewEllipse(center geom2d.Point2D, majorAxis, minorAxis, rotation float64) (Ellipse, error) {
	if majorAxis <= 0 || minorAxis <= 0 {
		return Ellipse{}, geomerr.Domain("shape: Ellipse axes must be positive, got major=%g minor=%g", majorAxis, minorAxis)
	}
	if minorAxis > majorAxis+geom2d.Epsilon {
		return Ellipse{}, geomerr.Domain("shape: Ellipse requires majorAxis >= minorAxis, got %g < %g", majorAxis, minorAxis)
	}
	return Ellipse{Center: center, MajorAxis: majorAxis, MinorAxis: minorAxis, Rotation: rotation}, nil
}

func (e Ellipse) Kind() Kind { return KindEllipse }

// semiMajor and semiMinor are the semi-axis lengths the ellipse
// equation and parametric form use.
func (e Ellipse) semiMajor() float64 { return e.MajorAxis / 2 }
func (e Ellipse) semiMinor() float64 { return e.MinorAxis / 2 }

// Eccentricity returns sqrt(1 - (minor/major)^2).
func (e Ellipse) Eccentricity() float64 {
	ratio := e.MinorAxis / e.MajorAxis
	return math.Sqrt(1 - ratio*ratio)
}

func (e Ellipse) Bounds() geom2d.Box {
	// Tight bounding box of a rotated ellipse (standard closed form).
	a, b := e.semiMajor(), e.semiMinor()
	cosR, sinR := math.Cos(e.Rotation), math.Sin(e.Rotation)
	halfW := math.Sqrt(math.Pow(a*cosR, 2) + math.Pow(b*sinR, 2))
	halfH := math.Sqrt(math.Pow(a*sinR, 2) + math.Pow(b*cosR, 2))
	return geom2d.Box{
		Min: geom2d.New(e.Center.X-halfW, e.Center.Y-halfH),
		Max: geom2d.New(e.Center.X+halfW, e.Center.Y+halfH),
	}
}

// toLocal maps a world point into the ellipse's local frame: translate
// by -Center, then rotate by -Rotation.
func (e Ellipse) toLocal(p geom2d.Point2D) geom2d.Point2D {
	return p.Sub(e.Center).Rotate(-e.Rotation, geom2d.Origin)
}

func (e Ellipse) fromLocal(p geom2d.Point2D) geom2d.Point2D {
	return p.Rotate(e.Rotation, geom2d.Origin).Add(e.Center)
}

// Contains tests (x/a)^2 + (y/b)^2 <= 1+tol in local coordinates, with
// a and b the semi-axis lengths.
func (e Ellipse) Contains(p geom2d.Point2D, tol float64) bool {
	loc := e.toLocal(p)
	v := math.Pow(loc.X/e.semiMajor(), 2) + math.Pow(loc.Y/e.semiMinor(), 2)
	return v <= 1+tol
}

// PointOnEllipse tests (x/a)^2 + (y/b)^2 within tol of exactly 1.
func (e Ellipse) PointOnEllipse(p geom2d.Point2D, tol float64) bool {
	loc := e.toLocal(p)
	v := math.Pow(loc.X/e.semiMajor(), 2) + math.Pow(loc.Y/e.semiMinor(), 2)
	return math.Abs(v-1) <= tol
}

// PointAtAngle returns the point on the ellipse at parametric angle
// theta (in the ellipse's local frame, before rotation/translation).
func (e Ellipse) PointAtAngle(theta float64) geom2d.Point2D {
	return e.fromLocal(geom2d.New(e.semiMajor()*math.Cos(theta), e.semiMinor()*math.Sin(theta)))
}

func (e Ellipse) Translate(v geom2d.Point2D) Shape2D {
	return Ellipse{Center: e.Center.Translate(v), MajorAxis: e.MajorAxis, MinorAxis: e.MinorAxis, Rotation: e.Rotation}
}

func (e Ellipse) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Ellipse{Center: e.Center.Rotate(angle, center), MajorAxis: e.MajorAxis, MinorAxis: e.MinorAxis, Rotation: e.Rotation + angle}
}

// Scale maps the ellipse through the equivalent affine transform,
// renormalizing axis order and rotation as needed.
func (e Ellipse) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return e.Transform(geom2d.Scaling(sx, sy, center))
}

// Transform maps the ellipse's conjugate semi-diameters (center,
// center+major-axis-vector, center+minor-axis-vector) through t and
// reconstructs the image ellipse, the same parallelogram construction
// used by Circle.Transform. ellipseAxesFromConjugateSemiDiameters
// returns semi-axis lengths, which are doubled back into the stored
// full-length MajorAxis/MinorAxis fields.
func (e Ellipse) Transform(t geom2d.Transform2D) Shape2D {
	majorVec := geom2d.FromPolar(e.semiMajor(), e.Rotation)
	minorVec := geom2d.FromPolar(e.semiMinor(), e.Rotation+math.Pi/2)

	tCenter := t.Apply(e.Center)
	u := t.ApplyVector(majorVec)
	v := t.ApplyVector(minorVec)

	semiMajor, semiMinor, rot := ellipseAxesFromConjugateSemiDiameters(u, v)
	return Ellipse{Center: tCenter, MajorAxis: semiMajor * 2, MinorAxis: semiMinor * 2, Rotation: rot}
}

// Decompose supports Ellipse (itself), Circle (only when axes are
// equal within tol), Bezier (EllipseToBezierSamples-point sampling
// of the parametric form), and Polygon (the same sampling as vertices).
func (e Ellipse) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindEllipse):
		return []Shape2D{e}, nil
	case containsKind(into, KindCircle) && math.Abs(e.MajorAxis-e.MinorAxis) <= tol:
		return []Shape2D{Circle{Center: e.Center, Radius: (e.semiMajor() + e.semiMinor()) / 2}}, nil
	case containsKind(into, KindBezier):
		n := samplesForTolerance(e.semiMajor(), tol, geom2d.EllipseToBezierSamples)
		return []Shape2D{bezierFromParametric(n, e.PointAtAngle)}, nil
	case containsKind(into, KindPolygon):
		n := samplesForTolerance(e.semiMajor(), tol, geom2d.EllipseToBezierSamples)
		pts := make([]geom2d.Point2D, n)
		for i := 0; i < n; i++ {
			pts[i] = e.PointAtAngle(2 * math.Pi * float64(i) / float64(n))
		}
		return []Shape2D{Polygon{Points: pts}}, nil
	default:
		return nil, unsupportedDecompose(KindEllipse, into)
	}
}

// IntersectLine forms the quadratic in the line's parameter t in local
// coordinates and keeps the real roots within the line's bounded [0,1]
// interval.
func (e Ellipse) IntersectLine(l Line2D) []geom2d.Point2D {
	p0 := e.toLocal(l.Start)
	p1 := e.toLocal(l.End)
	d := p1.Sub(p0)
	a2, b2 := e.semiMajor()*e.semiMajor(), e.semiMinor()*e.semiMinor()

	A := d.X*d.X/a2 + d.Y*d.Y/b2
	B := 2 * (p0.X*d.X/a2 + p0.Y*d.Y/b2)
	C := p0.X*p0.X/a2 + p0.Y*p0.Y/b2 - 1

	if A <= geom2d.Epsilon {
		return nil
	}
	disc := B*B - 4*A*C
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t1, t2 := (-B-sq)/(2*A), (-B+sq)/(2*A)

	var pts []geom2d.Point2D
	for _, t := range []float64{t1, t2} {
		if t >= -geom2d.Epsilon && t <= 1+geom2d.Epsilon {
			pts = append(pts, l.Start.Add(l.End.Sub(l.Start).MulScalar(t)))
		}
	}
	return pts
}

// ClosestPointTo coarse-samples 16 parametric points, refines the best
// with at most 5 bounded Newton steps on d/dt |q - B(t)|^2 = 0.
func (e Ellipse) ClosestPointTo(q geom2d.Point2D) geom2d.Point2D {
	const coarseSamples = 16
	const maxNewtonSteps = 5

	bestT, bestDist := 0.0, math.Inf(1)
	for i := 0; i < coarseSamples; i++ {
		t := 2 * math.Pi * float64(i) / coarseSamples
		d := q.Sub(e.PointAtAngle(t)).MagnitudeSquared()
		if d < bestDist {
			bestDist, bestT = d, t
		}
	}

	a, b := e.semiMajor(), e.semiMinor()
	loc := e.toLocal(q)
	t := bestT
	for i := 0; i < maxNewtonSteps; i++ {
		sinT, cosT := math.Sin(t), math.Cos(t)
		px, py := a*cosT, b*sinT
		dpx, dpy := -a*sinT, b*cosT
		ddpx, ddpy := -a*cosT, -b*sinT

		f := (loc.X-px)*(-dpx) + (loc.Y-py)*(-dpy)
		fPrime := dpx*dpx - (loc.X-px)*ddpx + dpy*dpy - (loc.Y-py)*ddpy
		if math.Abs(fPrime) <= geom2d.Epsilon {
			break
		}
		t -= f / fPrime
	}
	return e.PointAtAngle(t)
}
