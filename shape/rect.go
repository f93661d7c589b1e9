package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Rect is an axis-aligned rectangle anchored at (Left, Bottom) with
// non-negative Width and Height.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// NewRect constructs a Rect, failing with a domain error if width or
// height is negative.
func NewRect(left, bottom, width, height float64) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, geomerr.Domain("shape: Rect width/height must be non-negative, got %g/%g", width, height)
	}
	return Rect{Left: left, Bottom: bottom, Width: width, Height: height}, nil
}

func (r Rect) Kind() Kind { return KindRect }

func (r Rect) Right() float64 { return r.Left + r.Width }
func (r Rect) Top() float64   { return r.Bottom + r.Height }

func (r Rect) Bounds() geom2d.Box {
	return geom2d.Box{Min: geom2d.New(r.Left, r.Bottom), Max: geom2d.New(r.Right(), r.Top())}
}

func (r Rect) Contains(p geom2d.Point2D, tol float64) bool {
	return p.X >= r.Left-tol && p.X <= r.Right()+tol && p.Y >= r.Bottom-tol && p.Y <= r.Top()+tol
}

// corners returns the four corners in CCW order starting at (Left,Bottom).
func (r Rect) corners() []geom2d.Point2D {
	return []geom2d.Point2D{
		geom2d.New(r.Left, r.Bottom),
		geom2d.New(r.Right(), r.Bottom),
		geom2d.New(r.Right(), r.Top()),
		geom2d.New(r.Left, r.Top()),
	}
}

func (r Rect) Translate(v geom2d.Point2D) Shape2D {
	return Rect{Left: r.Left + v.X, Bottom: r.Bottom + v.Y, Width: r.Width, Height: r.Height}
}

// Rotate is a no-op when angleRadians is (within Epsilon of) a multiple
// of 2*pi. Any other angle goes through Transform: a multiple of pi
// leaves the rect axis-aligned and stays a Rect, every other angle
// upgrades to a Polygon.
func (r Rect) Rotate(angleRadians float64, center geom2d.Point2D) Shape2D {
	if isMultipleOfTau(angleRadians) {
		return r
	}
	return r.Transform(geom2d.Rotation(angleRadians, center))
}

func isMultipleOfTau(angle float64) bool {
	k := math.Round(angle / (2 * math.Pi))
	return math.Abs(angle-k*2*math.Pi) <= geom2d.Epsilon
}

// Scale stays a Rect for uniform scaling (sx == sy); non-uniform
// scaling upgrades to a Polygon.
func (r Rect) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	if math.Abs(sx-sy) <= geom2d.Epsilon {
		return r.Transform(geom2d.Scaling(sx, sy, center))
	}
	return Polygon{Points: scaleAll(r.corners(), sx, sy, center)}
}

// Transform upgrades to a Polygon for any non-axis-preserving map;
// transforms with no rotation/shear component (translation, uniform or
// non-uniform axis scaling) collapse back to a Rect via the
// transformed corners' bounding box.
func (r Rect) Transform(t geom2d.Transform2D) Shape2D {
	corners := t.ApplyMany(r.corners())
	if preservesAxes(t) {
		box := geom2d.BoxFromPoints(corners)
		return Rect{Left: box.Min.X, Bottom: box.Min.Y, Width: box.Width(), Height: box.Height()}
	}
	return Polygon{Points: corners}
}

// preservesAxes reports whether t has no rotation/shear component
// (B == D == 0), so it maps an axis-aligned rect to another one.
func preservesAxes(t geom2d.Transform2D) bool {
	return math.Abs(t.B) <= geom2d.Epsilon && math.Abs(t.D) <= geom2d.Epsilon
}

// Decompose supports Rect (itself) and Polygon (its four corners, CCW).
func (r Rect) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindRect):
		return []Shape2D{r}, nil
	case containsKind(into, KindPolygon):
		return []Shape2D{Polygon{Points: r.corners()}}, nil
	case containsKind(into, KindRegion):
		return []Shape2D{Region{Perimeters: []Polygon{{Points: r.corners()}}}}, nil
	default:
		return nil, unsupportedDecompose(KindRect, into)
	}
}

// Expand grows the rect symmetrically by a scalar on every side.
func (r Rect) Expand(x float64) Rect {
	return Rect{Left: r.Left - x, Bottom: r.Bottom - x, Width: r.Width + 2*x, Height: r.Height + 2*x}
}

// ExpandPoint grows the rect, if needed, to include p.
func (r Rect) ExpandPoint(p geom2d.Point2D) Rect { return rectFromBox(r.Bounds().ExpandPoint(p)) }

// ExpandRect grows the rect, if needed, to include other.
func (r Rect) ExpandRect(other Rect) Rect { return rectFromBox(r.Bounds().ExpandBox(other.Bounds())) }

// ExpandBounded grows the rect, if needed, to include any Bounded
// value's bounds (spec: "or by any object exposing get_bounds()").
func (r Rect) ExpandBounded(o geom2d.Bounded) Rect {
	return rectFromBox(r.Bounds().ExpandBounded(o))
}

func rectFromBox(b geom2d.Box) Rect {
	return Rect{Left: b.Min.X, Bottom: b.Min.Y, Width: b.Width(), Height: b.Height()}
}
