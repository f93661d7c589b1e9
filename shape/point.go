package shape

import "github.com/latticecad/kernel/geom2d"

// Point is the degenerate shape: a single position, exposed through
// the same Shape2D capability set as every other primitive.
type Point struct {
	P geom2d.Point2D
}

// NewPoint constructs a Point shape at (x, y).
func NewPoint(x, y float64) Point { return Point{P: geom2d.New(x, y)} }

func (p Point) Kind() Kind { return KindPoint }

func (p Point) Bounds() geom2d.Box { return geom2d.Box{Min: p.P, Max: p.P} }

// Contains reports whether q coincides with p within tol.
func (p Point) Contains(q geom2d.Point2D, tol float64) bool {
	return p.P.Sub(q).Magnitude() <= tol
}

func (p Point) Translate(v geom2d.Point2D) Shape2D { return Point{P: p.P.Translate(v)} }

func (p Point) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Point{P: p.P.Rotate(angle, center)}
}

func (p Point) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return Point{P: p.P.Scale(sx, sy, center)}
}

func (p Point) Transform(t geom2d.Transform2D) Shape2D { return Point{P: p.P.Transform(t)} }

// Decompose returns p unchanged if KindPoint is requested; points have
// no other faithful representation.
func (p Point) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	if containsKind(into, KindPoint) {
		return []Shape2D{p}, nil
	}
	return nil, unsupportedDecompose(KindPoint, into)
}
