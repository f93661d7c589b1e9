package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Polygon is an ordered list of at least 3 points, implicitly closed
// (no repeated final point). Orientation sign follows the signed area:
// positive is counterclockwise.
type Polygon struct {
	Points []geom2d.Point2D
}

// NewPolygon constructs a Polygon, failing with a domain error if
// fewer than 3 points are supplied.
func NewPolygon(points []geom2d.Point2D) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, geomerr.Domain("shape: Polygon needs at least 3 points, got %d", len(points))
	}
	return Polygon{Points: points}, nil
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Bounds() geom2d.Box { return geom2d.BoxFromPoints(p.Points) }

// Area returns the signed area via the shoelace formula on the
// implicitly-closed vertex list.
func (p Polygon) Area() float64 {
	sum := 0.0
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Centroid returns the area-weighted centroid, falling back to the
// arithmetic mean of vertices when the signed area is (near) zero.
func (p Polygon) Centroid() geom2d.Point2D {
	area := p.Area()
	n := len(p.Points)
	if math.Abs(area) <= geom2d.Epsilon {
		var sx, sy float64
		for _, v := range p.Points {
			sx += v.X
			sy += v.Y
		}
		return geom2d.New(sx/float64(n), sy/float64(n))
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	factor := 1 / (6 * area)
	return geom2d.New(cx*factor, cy*factor)
}

// IsConvex reports whether every non-degenerate cross product of
// consecutive edge vectors shares a sign.
func (p Polygon) IsConvex() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		cross := geom2d.Cross(b.Sub(a), c.Sub(b))
		if math.Abs(cross) <= geom2d.Epsilon {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}
	return true
}

// Contains uses an even-odd ray cast along +X, skipping horizontal
// edges and resolving vertex-y ties with the half-open [y0,y1) convention.
func (p Polygon) Contains(pt geom2d.Point2D, tol float64) bool {
	if p.onBoundary(pt, tol) {
		return true
	}
	n := len(p.Points)
	inside := false
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if a.Y == b.Y {
			continue // horizontal edges never toggle the ray cast
		}
		if (a.Y <= pt.Y && pt.Y < b.Y) || (b.Y <= pt.Y && pt.Y < a.Y) {
			xCross := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if xCross > pt.X {
				inside = !inside
			}
		}
	}
	return inside
}

func (p Polygon) onBoundary(pt geom2d.Point2D, tol float64) bool {
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		if (Line2D{Start: a, End: b}).DistanceToPoint(pt) <= tol {
			return true
		}
	}
	return false
}

func (p Polygon) Translate(v geom2d.Point2D) Shape2D {
	return Polygon{Points: translateAll(p.Points, v)}
}

func (p Polygon) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Polygon{Points: rotateAll(p.Points, angle, center)}
}

func (p Polygon) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return Polygon{Points: scaleAll(p.Points, sx, sy, center)}
}

func (p Polygon) Transform(t geom2d.Transform2D) Shape2D {
	return Polygon{Points: t.ApplyMany(p.Points)}
}

// Decompose supports Polygon (itself), PolyLine (closed, with the
// closing point re-duplicated), and Region (as the sole perimeter,
// oriented CCW).
func (p Polygon) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindPolygon):
		return []Shape2D{p}, nil
	case containsKind(into, KindPolyLine):
		closed := append(append([]geom2d.Point2D(nil), p.Points...), p.Points[0])
		return []Shape2D{PolyLine2D{Points: closed}}, nil
	case containsKind(into, KindRegion):
		ccw := p
		if ccw.Area() < 0 {
			ccw = ccw.Reversed()
		}
		return []Shape2D{Region{Perimeters: []Polygon{ccw}}}, nil
	default:
		return nil, unsupportedDecompose(KindPolygon, into)
	}
}

// Reversed returns the polygon with its vertex order (and therefore
// orientation sign) reversed.
func (p Polygon) Reversed() Polygon {
	out := make([]geom2d.Point2D, len(p.Points))
	for i, v := range p.Points {
		out[len(out)-1-i] = v
	}
	return Polygon{Points: out}
}

// Simplify removes coincident and collinear-within-tol vertices,
// rerunning until stable.
func (p Polygon) Simplify(tol float64) Polygon {
	return Polygon{Points: simplifyPoints(p.Points, true, tol)}
}

// AddVertexAtPoint inserts pt on the first edge, in vertex order, that
// lies within tol of it (the implicit closing edge included), or
// returns the index of a coincident vertex.
func (p Polygon) AddVertexAtPoint(pt geom2d.Point2D, tol float64) (Polygon, int, error) {
	pts, idx, err := addVertexAtPoint(p.Points, true, pt, tol)
	if err != nil {
		return p, -1, err
	}
	return Polygon{Points: pts}, idx, nil
}

// DeleteVertexAtPoint removes the vertex closest to pt within tol,
// refusing to reduce below 3 vertices.
func (p Polygon) DeleteVertexAtPoint(pt geom2d.Point2D, tol float64) (Polygon, error) {
	pts, err := deleteVertexAtPoint(p.Points, pt, tol, 3)
	if err != nil {
		return p, err
	}
	return Polygon{Points: pts}, nil
}
