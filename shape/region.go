package shape

import (
	"fmt"
	"math"

	"github.com/latticecad/kernel/boolean"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Region is a set of outer perimeters and holes, each a simple closed
// Polygon. Perimeters are conventionally CCW (positive area) and holes
// CW (negative area), but Region does not enforce this on construction
// — Validate reports orientation and containment problems as warnings
// rather than failing outright, since a region built up incrementally
// from boolean ops may pass through inconsistent intermediate states.
type Region struct {
	Perimeters []Polygon
	Holes      []Polygon
}

func (r Region) Kind() Kind { return KindRegion }

func (r Region) Bounds() geom2d.Box {
	b := geom2d.EmptyBox()
	for _, p := range r.Perimeters {
		b = b.ExpandBox(p.Bounds())
	}
	return b
}

// Contains reports whether pt lies inside any perimeter and not in the
// interior of any hole (a point on a hole's boundary counts as inside).
func (r Region) Contains(pt geom2d.Point2D, tol float64) bool {
	for _, perim := range r.Perimeters {
		if !perim.Contains(pt, tol) {
			continue
		}
		inHole := false
		for _, h := range r.Holes {
			if h.Contains(pt, tol) && !h.onBoundary(pt, tol) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// Validate reports non-fatal structural problems: a hole not
// contained in any perimeter, a perimeter with non-positive area
// (clockwise winding), or a hole with non-negative area
// (counter-clockwise winding). It never fails the Region outright — the spec
// treats these as warnings a caller may surface to the user.
func (r Region) Validate(tol float64) []string {
	var warnings []string
	for i, perim := range r.Perimeters {
		if perim.Area() <= 0 {
			warnings = append(warnings, fmt.Sprintf("perimeter %d has non-positive area (expected CCW winding)", i))
		}
	}
	for i, hole := range r.Holes {
		if hole.Area() >= 0 {
			warnings = append(warnings, fmt.Sprintf("hole %d has non-negative area (expected CW winding)", i))
		}
		contained := false
		for _, perim := range r.Perimeters {
			if polygonContainsPolygon(perim, hole, tol) {
				contained = true
				break
			}
		}
		if !contained {
			warnings = append(warnings, fmt.Sprintf("hole %d is not contained in any perimeter", i))
		}
	}
	return warnings
}

// polygonContainsPolygon reports whether every vertex of inner lies
// within outer (a necessary, not sufficient, containment test that is
// adequate for a validation warning).
func polygonContainsPolygon(outer, inner Polygon, tol float64) bool {
	for _, v := range inner.Points {
		if !outer.Contains(v, tol) {
			return false
		}
	}
	return true
}

func (r Region) allPolygons() []Polygon {
	out := make([]Polygon, 0, len(r.Perimeters)+len(r.Holes))
	out = append(out, r.Perimeters...)
	out = append(out, r.Holes...)
	return out
}

func (r Region) Translate(v geom2d.Point2D) Shape2D {
	return Region{Perimeters: translatePolygons(r.Perimeters, v), Holes: translatePolygons(r.Holes, v)}
}

func (r Region) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return Region{Perimeters: rotatePolygons(r.Perimeters, angle, center), Holes: rotatePolygons(r.Holes, angle, center)}
}

func (r Region) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	return Region{Perimeters: scalePolygons(r.Perimeters, sx, sy, center), Holes: scalePolygons(r.Holes, sx, sy, center)}
}

func (r Region) Transform(t geom2d.Transform2D) Shape2D {
	transform := func(ps []Polygon) []Polygon {
		out := make([]Polygon, len(ps))
		for i, p := range ps {
			out[i] = Polygon{Points: t.ApplyMany(p.Points)}
		}
		return out
	}
	return Region{Perimeters: transform(r.Perimeters), Holes: transform(r.Holes)}
}

func translatePolygons(ps []Polygon, v geom2d.Point2D) []Polygon {
	out := make([]Polygon, len(ps))
	for i, p := range ps {
		out[i] = Polygon{Points: translateAll(p.Points, v)}
	}
	return out
}

func rotatePolygons(ps []Polygon, angle float64, center geom2d.Point2D) []Polygon {
	out := make([]Polygon, len(ps))
	for i, p := range ps {
		out[i] = Polygon{Points: rotateAll(p.Points, angle, center)}
	}
	return out
}

func scalePolygons(ps []Polygon, sx, sy float64, center geom2d.Point2D) []Polygon {
	out := make([]Polygon, len(ps))
	for i, p := range ps {
		out[i] = Polygon{Points: scaleAll(p.Points, sx, sy, center)}
	}
	return out
}

// Decompose supports Region (itself) and Polygon (only a single-
// perimeter, hole-free region).
func (r Region) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindRegion):
		return []Shape2D{r}, nil
	case containsKind(into, KindPolygon) && len(r.Perimeters) == 1 && len(r.Holes) == 0:
		return []Shape2D{r.Perimeters[0]}, nil
	default:
		return nil, unsupportedDecompose(KindRegion, into)
	}
}

// JoinKind and EndKind re-export package boolean's offset style enums
// so callers never need to import that package directly.
type JoinKind = boolean.JoinKind
type EndKind = boolean.EndKind

const (
	JoinRound  = boolean.JoinRound
	JoinSquare = boolean.JoinSquare
	JoinMiter  = boolean.JoinMiter
)

const (
	EndClosedPolygon = boolean.EndClosedPolygon
	EndClosedLine    = boolean.EndClosedLine
	EndOpenButt      = boolean.EndOpenButt
)

func regionToPaths(r Region) [][]geom2d.Point2D {
	polys := r.allPolygons()
	out := make([][]geom2d.Point2D, len(polys))
	for i, p := range polys {
		out[i] = p.Points
	}
	return out
}

// classifyPaths splits raw boolean/offset output paths back into a
// Region's perimeters (positive area) and holes (negative area),
// matching clipper2's orientation convention for combined output.
func classifyPaths(paths [][]geom2d.Point2D) Region {
	var r Region
	for _, pts := range paths {
		if len(pts) < 3 {
			continue
		}
		poly := Polygon{Points: pts}
		if poly.Area() >= 0 {
			r.Perimeters = append(r.Perimeters, poly)
		} else {
			r.Holes = append(r.Holes, poly)
		}
	}
	return r
}

func (r Region) combine(other Region, op boolean.Op) (Region, error) {
	result, err := boolean.Combine(regionToPaths(r), regionToPaths(other), op)
	if err != nil {
		return Region{}, err
	}
	return classifyPaths(result), nil
}

// Union returns the set union of r and other.
func (r Region) Union(other Region) (Region, error) { return r.combine(other, boolean.OpUnion) }

// Difference returns r with other's area removed.
func (r Region) Difference(other Region) (Region, error) {
	return r.combine(other, boolean.OpDifference)
}

// Intersection returns the set intersection of r and other.
func (r Region) Intersection(other Region) (Region, error) {
	return r.combine(other, boolean.OpIntersection)
}

// Xor returns the symmetric difference of r and other.
func (r Region) Xor(other Region) (Region, error) { return r.combine(other, boolean.OpXor) }

// Offset grows (d > 0) or shrinks (d < 0) every perimeter and hole of
// r by d, using the given join and end style.
func (r Region) Offset(d float64, join JoinKind, end EndKind) (Region, error) {
	result, err := boolean.Offset(regionToPaths(r), d, join, end)
	if err != nil {
		return Region{}, err
	}
	return classifyPaths(result), nil
}

// MinkowskiSum returns the Minkowski sum of pattern (a closed polygon
// traced once) with every perimeter of r. The per-perimeter results are
// collected into one Region side by side; they are not merged by a
// boolean union, so overlapping results stay separate perimeters.
func (r Region) MinkowskiSum(pattern Polygon) Region {
	var out Region
	for _, perim := range r.Perimeters {
		paths := boolean.MinkowskiSum(pattern.Points, perim.Points, true)
		out = mergeClassified(out, classifyPaths(paths))
	}
	return out
}

// MinkowskiDiff returns the Minkowski difference of pattern from every
// perimeter of r, collected side by side like MinkowskiSum (no boolean
// union of the per-perimeter results).
func (r Region) MinkowskiDiff(pattern Polygon) Region {
	var out Region
	for _, perim := range r.Perimeters {
		paths := boolean.MinkowskiDiff(pattern.Points, perim.Points, true)
		out = mergeClassified(out, classifyPaths(paths))
	}
	return out
}

func mergeClassified(a, b Region) Region {
	return Region{
		Perimeters: append(append([]Polygon(nil), a.Perimeters...), b.Perimeters...),
		Holes:      append(append([]Polygon(nil), a.Holes...), b.Holes...),
	}
}

// Area returns the net area: the sum of perimeter areas minus the sum
// of (absolute) hole areas.
func (r Region) Area() float64 {
	total := 0.0
	for _, p := range r.Perimeters {
		total += math.Abs(p.Area())
	}
	for _, h := range r.Holes {
		total -= math.Abs(h.Area())
	}
	return total
}

// NewRegion constructs a Region from CCW perimeters and CW holes,
// failing with a domain error if no perimeters are supplied.
func NewRegion(perimeters, holes []Polygon) (Region, error) {
	if len(perimeters) == 0 {
		return Region{}, geomerr.Domain("shape: Region needs at least one perimeter")
	}
	return Region{Perimeters: perimeters, Holes: holes}, nil
}
