package shape

import (
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// PolyLine2D is an ordered chain of at least 2 points. It is closed
// iff its first and last points coincide within Epsilon; closure is
// represented by an explicit repeated endpoint, never implied.
type PolyLine2D struct {
	Points []geom2d.Point2D
}

// NewPolyLine constructs a PolyLine2D, failing with a domain error if
// fewer than 2 points are supplied.
func NewPolyLine(points []geom2d.Point2D) (PolyLine2D, error) {
	if len(points) < 2 {
		return PolyLine2D{}, geomerr.Domain("shape: PolyLine2D needs at least 2 points, got %d", len(points))
	}
	return PolyLine2D{Points: points}, nil
}

func (pl PolyLine2D) Kind() Kind { return KindPolyLine }

func (pl PolyLine2D) Bounds() geom2d.Box { return geom2d.BoxFromPoints(pl.Points) }

// IsClosed reports whether the first and last points coincide within Epsilon.
func (pl PolyLine2D) IsClosed() bool {
	n := len(pl.Points)
	return n > 1 && pl.Points[0].Sub(pl.Points[n-1]).Magnitude() <= geom2d.Epsilon
}

// Contains tests point-on-polyline: distance to the closest segment is
// within tol (PolyLine2D is an open shape even when closed, per the
// open/closed-shape contains contract in the shape algebra).
func (pl PolyLine2D) Contains(p geom2d.Point2D, tol float64) bool {
	for _, e := range edgesOf(pl.Points, false) {
		if (Line2D{Start: e.start, End: e.end}).DistanceToPoint(p) <= tol {
			return true
		}
	}
	return false
}

func (pl PolyLine2D) Translate(v geom2d.Point2D) Shape2D {
	return PolyLine2D{Points: translateAll(pl.Points, v)}
}

func (pl PolyLine2D) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return PolyLine2D{Points: rotateAll(pl.Points, angle, center)}
}

func (pl PolyLine2D) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return PolyLine2D{Points: scaleAll(pl.Points, sx, sy, center)}
}

func (pl PolyLine2D) Transform(t geom2d.Transform2D) Shape2D {
	return PolyLine2D{Points: t.ApplyMany(pl.Points)}
}

// Decompose supports PolyLine (itself), Line (only for a 2-point
// polyline), and Polygon (only when closed, dropping the duplicated
// closing point).
func (pl PolyLine2D) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindPolyLine):
		return []Shape2D{pl}, nil
	case containsKind(into, KindLine) && len(pl.Points) == 2:
		return []Shape2D{Line2D{Start: pl.Points[0], End: pl.Points[1]}}, nil
	case containsKind(into, KindPolygon) && pl.IsClosed() && len(pl.Points) >= 4:
		poly, err := NewPolygon(pl.Points[:len(pl.Points)-1])
		if err != nil {
			return nil, err
		}
		return []Shape2D{poly}, nil
	default:
		return nil, unsupportedDecompose(KindPolyLine, into)
	}
}

// Simplify removes vertices coincident with a neighbor within tol, and
// vertices collinear with their neighbors within tol triangle area,
// rerunning until stable.
func (pl PolyLine2D) Simplify(tol float64) PolyLine2D {
	return PolyLine2D{Points: simplifyPoints(pl.Points, false, tol)}
}

// AddVertexAtPoint inserts p on the first edge, in vertex order, that
// lies within tol of it (or returns the index of a coincident existing
// vertex), failing with NotOnPerimeter if no edge is within tol.
func (pl PolyLine2D) AddVertexAtPoint(p geom2d.Point2D, tol float64) (PolyLine2D, int, error) {
	pts, idx, err := addVertexAtPoint(pl.Points, false, p, tol)
	if err != nil {
		return pl, -1, err
	}
	return PolyLine2D{Points: pts}, idx, nil
}

// DeleteVertexAtPoint removes the vertex closest to p within tol,
// refusing to reduce below 2 points.
func (pl PolyLine2D) DeleteVertexAtPoint(p geom2d.Point2D, tol float64) (PolyLine2D, error) {
	pts, err := deleteVertexAtPoint(pl.Points, p, tol, 2)
	if err != nil {
		return pl, err
	}
	return PolyLine2D{Points: pts}, nil
}

// SplitAtPoint locates the segment (or coincident vertex) containing p
// and returns two PolyLines sharing that split point. Single-point
// halves are duplicated to preserve the >=2-point invariant.
func (pl PolyLine2D) SplitAtPoint(p geom2d.Point2D, tol float64) (PolyLine2D, PolyLine2D, error) {
	withSplit, idx, err := addVertexAtPoint(pl.Points, false, p, tol)
	if err != nil {
		return PolyLine2D{}, PolyLine2D{}, err
	}
	split := withSplit[idx]

	left := append([]geom2d.Point2D(nil), withSplit[:idx+1]...)
	right := append([]geom2d.Point2D(nil), withSplit[idx:]...)
	if len(left) == 1 {
		left = append(left, split)
	}
	if len(right) == 1 {
		right = append([]geom2d.Point2D{split}, right...)
	}
	return PolyLine2D{Points: left}, PolyLine2D{Points: right}, nil
}

// ReorientStartPoint rotates a closed polyline's sequence so that
// newStartIndex becomes first, re-duplicating the closing point. It is
// only valid on closed polylines.
func (pl PolyLine2D) ReorientStartPoint(newStartIndex int) (PolyLine2D, error) {
	if !pl.IsClosed() {
		return pl, geomerr.Domain("shape: ReorientStartPoint requires a closed PolyLine2D")
	}
	body := pl.Points[:len(pl.Points)-1] // drop duplicated closing point
	n := len(body)
	if newStartIndex < 0 || newStartIndex >= n {
		return pl, geomerr.Domain("shape: ReorientStartPoint index %d out of range [0,%d)", newStartIndex, n)
	}
	rotated := make([]geom2d.Point2D, 0, n+1)
	rotated = append(rotated, body[newStartIndex:]...)
	rotated = append(rotated, body[:newStartIndex]...)
	rotated = append(rotated, rotated[0]) // re-close
	return PolyLine2D{Points: rotated}, nil
}

func translateAll(points []geom2d.Point2D, v geom2d.Point2D) []geom2d.Point2D {
	out := make([]geom2d.Point2D, len(points))
	for i, p := range points {
		out[i] = p.Translate(v)
	}
	return out
}

func rotateAll(points []geom2d.Point2D, angle float64, center geom2d.Point2D) []geom2d.Point2D {
	out := make([]geom2d.Point2D, len(points))
	for i, p := range points {
		out[i] = p.Rotate(angle, center)
	}
	return out
}

func scaleAll(points []geom2d.Point2D, sx, sy float64, center geom2d.Point2D) []geom2d.Point2D {
	out := make([]geom2d.Point2D, len(points))
	for i, p := range points {
		out[i] = p.Scale(sx, sy, center)
	}
	return out
}
