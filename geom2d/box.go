package geom2d

import "math"

// Box is an axis-aligned bounding box in (min, max) form. It is the
// return type of every shape's Bounds() method.
type Box struct {
	Min, Max Point2D
}

// EmptyBox returns a box with no extent, suitable as the identity
// element for Union.
func EmptyBox() Box {
	return Box{
		Min: Point2D{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point2D{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// BoxFromPoints returns the tight bounding box of points. An empty
// points slice yields EmptyBox().
func BoxFromPoints(points []Point2D) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.ExpandPoint(p)
	}
	return b
}

// IsEmpty reports whether the box has negative extent (the EmptyBox identity).
func (b Box) IsEmpty() bool { return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y }

// Width returns Max.X - Min.X.
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the midpoint of the box.
func (b Box) Center() Point2D {
	return Point2D{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Contains reports whether p lies within the box, inclusive of the boundary.
func (b Box) Contains(p Point2D) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ExpandScalar grows the box symmetrically by x on every side.
func (b Box) ExpandScalar(x float64) Box {
	return Box{
		Min: Point2D{X: b.Min.X - x, Y: b.Min.Y - x},
		Max: Point2D{X: b.Max.X + x, Y: b.Max.Y + x},
	}
}

// ExpandPoint grows the box, if needed, to include p.
func (b Box) ExpandPoint(p Point2D) Box {
	return Box{
		Min: Point2D{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point2D{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// ExpandBox grows the box, if needed, to include other.
func (b Box) ExpandBox(other Box) Box {
	if other.IsEmpty() {
		return b
	}
	return b.ExpandPoint(other.Min).ExpandPoint(other.Max)
}

// Bounded is implemented by anything that can report its own bounds,
// letting Box.ExpandBounded accept shapes, CadObjects, or plain boxes
// interchangeably (spec: "by any object exposing get_bounds()").
type Bounded interface {
	Bounds() Box
}

// ExpandBounded grows the box to include any Bounded value's bounds.
func (b Box) ExpandBounded(o Bounded) Box { return b.ExpandBox(o.Bounds()) }

// Overlaps reports whether two boxes share any area or boundary.
func (b Box) Overlaps(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}
