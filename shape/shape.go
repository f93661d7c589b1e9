// Package shape implements the 2D shape algebra of the geometry kernel:
// a closed family of primitives sharing one capability set (Shape2D),
// uniform transformation/bounds/containment/decomposition semantics,
// and numerical operations (intersection, closest-point, tangent,
// offset, boolean, Minkowski) layered on top of it.
//
// Shapes are value-like. Every operation that looks like a mutation —
// Translate, Rotate, Scale, Transform, Simplify, AddVertexAtPoint — in
// fact returns a new shape. Non-uniform transforms may change a
// shape's concrete kind (Circle -> Ellipse, Rect -> Polygon, Arc ->
// BezierPath); Transform therefore always returns the Shape2D
// interface, never the receiver's concrete type.
package shape

import "github.com/latticecad/kernel/geom2d"

// Kind tags a shape's concrete family. It is the discriminant
// constraint authors and decomposition callers use instead of a type
// switch on every caller side.
type Kind int

const (
	KindPoint Kind = iota
	KindLine
	KindPolyLine
	KindPolygon
	KindArc
	KindRect
	KindCircle
	KindEllipse
	KindBezier
	KindRegion
	KindSpurGear
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLine:
		return "Line"
	case KindPolyLine:
		return "PolyLine"
	case KindPolygon:
		return "Polygon"
	case KindArc:
		return "Arc"
	case KindRect:
		return "Rect"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindBezier:
		return "Bezier"
	case KindRegion:
		return "Region"
	case KindSpurGear:
		return "SpurGear"
	default:
		return "Unknown"
	}
}

// Shape2D is the capability set every shape in the algebra implements.
type Shape2D interface {
	// Kind returns this shape's family tag.
	Kind() Kind

	// Bounds returns an axis-aligned bounding box: tight for analytic
	// shapes, tight up to flattening tolerance for curved ones.
	Bounds() geom2d.Box

	// Contains reports point-in-shape for closed shapes and
	// point-on-shape for open shapes, within tol.
	Contains(p geom2d.Point2D, tol float64) bool

	// Translate, Rotate, Scale, and Transform return a new shape. A
	// non-uniform Scale or an arbitrary Transform may upgrade the
	// result to a different Kind, so all four return the Shape2D
	// interface rather than the receiver's concrete type.
	Translate(v geom2d.Point2D) Shape2D
	Rotate(angleRadians float64, center geom2d.Point2D) Shape2D
	Scale(sx, sy float64, center geom2d.Point2D) Shape2D
	Transform(t geom2d.Transform2D) Shape2D

	// Decompose approximates this shape with shapes of one of the
	// requested kinds, to within maximum deviation tol. It fails with
	// an UnsupportedDecomposition error if no kind in into is reachable.
	Decompose(into []Kind, tol float64) ([]Shape2D, error)
}

// containsKind reports whether k appears in kinds.
func containsKind(kinds []Kind, k Kind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}
