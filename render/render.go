// Package render turns shapes into the flat, renderer-agnostic
// primitives a scene surface draws: lines, arcs, outlines,
// triangulated fills, text, and selection outlines. It says what
// exists to draw, never how to draw it.
package render

import (
	"image/color"

	"github.com/rclancey/earcut"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
	"github.com/latticecad/kernel/shape"
)

// Kind discriminates the six primitive families a shape can emit.
type Kind int

const (
	KindLine Kind = iota
	KindArc
	KindPolygonOutline
	KindTriangulatedFill
	KindText
	KindSelectionOutline
)

// Role is the purpose a primitive is being emitted for: the shape's
// own appearance, a non-editable decoration, or an editable control.
type Role int

const (
	RoleView Role = iota
	RoleDecoration
	RoleControl
)

// Triangle is three points in CCW order, ready for a GPU vertex buffer.
type Triangle [3]geom2d.Point2D

// Primitive is a tagged union over the six renderable kinds; only the
// fields relevant to Kind are populated.
type Primitive struct {
	Kind  Kind
	Role  Role
	Color color.RGBA

	// KindLine
	Start, End geom2d.Point2D

	// KindArc
	Center                        geom2d.Point2D
	Radius, StartAngle, SpanAngle float64

	// KindPolygonOutline, KindSelectionOutline
	Path   []geom2d.Point2D
	Closed bool

	// KindTriangulatedFill
	Triangles []Triangle

	// KindText
	Text   string
	Anchor geom2d.Point2D
}

const flattenSegmentsPerCurve = 32

// Emit produces the primitives that represent s in the given role.
// Closed, area-bearing shapes emit both an outline and a triangulated
// fill; open shapes emit only their outline.
func Emit(s shape.Shape2D, role Role) ([]Primitive, error) {
	switch s.Kind() {
	case shape.KindPoint:
		p := s.(shape.Point)
		return []Primitive{{Kind: KindLine, Role: role, Start: p.P, End: p.P}}, nil

	case shape.KindLine:
		l := s.(shape.Line2D)
		return []Primitive{{Kind: KindLine, Role: role, Start: l.Start, End: l.End}}, nil

	case shape.KindArc:
		a := s.(shape.Arc)
		return []Primitive{{
			Kind: KindArc, Role: role,
			Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, SpanAngle: a.SpanAngle,
		}}, nil

	case shape.KindPolyLine:
		pl := s.(shape.PolyLine2D)
		return []Primitive{{Kind: KindPolygonOutline, Role: role, Path: pl.Points, Closed: pl.IsClosed()}}, nil

	case shape.KindBezier:
		bp := s.(shape.BezierPath)
		polyline := bp.ToPolyline(flattenSegmentsPerCurve, 0)
		return []Primitive{{Kind: KindPolygonOutline, Role: role, Path: polyline.Points, Closed: polyline.IsClosed()}}, nil

	case shape.KindPolygon:
		p := s.(shape.Polygon)
		return emitFilledRing(role, p.Points, nil)

	case shape.KindRect:
		decomposed, err := s.Decompose([]shape.Kind{shape.KindPolygon}, 0)
		if err != nil {
			return nil, err
		}
		return Emit(decomposed[0], role)

	case shape.KindCircle, shape.KindEllipse:
		decomposed, err := s.Decompose([]shape.Kind{shape.KindPolygon}, geom2d.FlattenTolerance)
		if err != nil {
			return nil, err
		}
		return Emit(decomposed[0], role)

	case shape.KindRegion:
		r := s.(shape.Region)
		return emitRegion(role, r)

	case shape.KindSpurGear:
		g := s.(shape.SpurGear)
		return emitFilledRing(role, g.GetGearPathPoints(), nil)

	default:
		return nil, geomerr.UnsupportedDecomposition("render: no primitive emission for kind %v", s.Kind())
	}
}

// emitFilledRing builds the outline + triangulated fill pair for a
// single CCW perimeter with any number of CW holes.
func emitFilledRing(role Role, perimeter []geom2d.Point2D, holes [][]geom2d.Point2D) ([]Primitive, error) {
	prims := []Primitive{{Kind: KindPolygonOutline, Role: role, Path: perimeter, Closed: true}}
	for _, h := range holes {
		prims = append(prims, Primitive{Kind: KindPolygonOutline, Role: role, Path: h, Closed: true})
	}
	tris, err := tessellate(perimeter, holes)
	if err != nil {
		return nil, err
	}
	prims = append(prims, Primitive{Kind: KindTriangulatedFill, Role: role, Triangles: tris})
	return prims, nil
}

func emitRegion(role Role, r shape.Region) ([]Primitive, error) {
	var prims []Primitive
	for _, perim := range r.Perimeters {
		var ownHoles [][]geom2d.Point2D
		for _, h := range r.Holes {
			if perim.Contains(h.Centroid(), geom2d.Epsilon) {
				ownHoles = append(ownHoles, h.Points)
			}
		}
		p, err := emitFilledRing(role, perim.Points, ownHoles)
		if err != nil {
			return nil, err
		}
		prims = append(prims, p...)
	}
	return prims, nil
}

// tessellate triangulates a polygon with holes via the earcut
// algorithm, grounded on the teacher's render.earClip: flatten to
// [x0,y0,x1,y1,...], call Earcut with hole start indices, then map the
// returned triangle indices back to points.
func tessellate(perimeter []geom2d.Point2D, holes [][]geom2d.Point2D) ([]Triangle, error) {
	if len(perimeter) < 3 {
		return nil, geomerr.Domain("render: cannot tessellate a ring with %d vertices", len(perimeter))
	}

	allPoints := append([]geom2d.Point2D(nil), perimeter...)
	holeIndices := make([]int, 0, len(holes))
	for _, h := range holes {
		holeIndices = append(holeIndices, len(allPoints))
		allPoints = append(allPoints, h...)
	}

	coords := make([]float64, len(allPoints)*2)
	for i, p := range allPoints {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}

	indices, err := earcut.Earcut(coords, holeIndices, 2)
	if err != nil {
		return nil, geomerr.Domain("render: triangulation failed: %v", err)
	}
	if len(indices)%3 != 0 {
		return nil, geomerr.Domain("render: triangulation returned %d indices, not a multiple of 3", len(indices))
	}

	triangles := make([]Triangle, len(indices)/3)
	for i := range triangles {
		i0, i1, i2 := indices[i*3], indices[i*3+1], indices[i*3+2]
		triangles[i] = Triangle{allPoints[i0], allPoints[i1], allPoints[i2]}
	}
	return triangles, nil
}

// EmitSelectionOutline produces the dashed-rectangle decoration drawn
// around a selected object's bounds.
func EmitSelectionOutline(b geom2d.Box) Primitive {
	return Primitive{
		Kind:   KindSelectionOutline,
		Role:   RoleDecoration,
		Closed: true,
		Path: []geom2d.Point2D{
			geom2d.New(b.Min.X, b.Min.Y), geom2d.New(b.Max.X, b.Min.Y),
			geom2d.New(b.Max.X, b.Max.Y), geom2d.New(b.Min.X, b.Max.Y),
		},
	}
}

// EmitText produces a text primitive anchored at p, used for control
// datum labels and gear/dimension annotations.
func EmitText(text string, at geom2d.Point2D) Primitive {
	return Primitive{Kind: KindText, Role: RoleDecoration, Text: text, Anchor: at}
}

// WithColor stamps col onto every primitive in ps, the step that
// applies a CadObject's style after Emit produces geometry-only primitives.
func WithColor(ps []Primitive, col color.RGBA) []Primitive {
	out := make([]Primitive, len(ps))
	for i, p := range ps {
		p.Color = col
		out[i] = p
	}
	return out
}
