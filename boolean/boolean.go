// Package boolean bridges the geometry kernel's float64 polygon paths to
// github.com/go-clipper/clipper2, which operates on fixed-point int64
// coordinates. Every entry point here scales in, delegates to clipper2,
// and scales back out; scale factors are centralized in geom2d as
// BooleanScale and MinkowskiScale.
package boolean

import (
	"fmt"
	"math"

	clipper "github.com/go-clipper/clipper2"
	"github.com/latticecad/kernel/geom2d"
)

// Op discriminates the four set operations Region exposes.
type Op int

const (
	OpUnion Op = iota
	OpDifference
	OpIntersection
	OpXor
)

// JoinKind mirrors clipper2's JoinType without leaking that package's
// name into the shape algebra's public surface.
type JoinKind int

const (
	JoinRound JoinKind = iota
	JoinSquare
	JoinMiter
)

// EndKind mirrors clipper2's EndType with the names the spec uses:
// closed_polygon, closed_line, open_butt.
type EndKind int

const (
	EndClosedPolygon EndKind = iota
	EndClosedLine
	EndOpenButt
)

func toClipperJoin(j JoinKind) clipper.JoinType {
	switch j {
	case JoinSquare:
		return clipper.JoinSquare
	case JoinMiter:
		return clipper.JoinMiter
	default:
		return clipper.JoinRound
	}
}

func toClipperEnd(e EndKind) clipper.EndType {
	switch e {
	case EndClosedLine:
		return clipper.EndJoined
	case EndOpenButt:
		return clipper.EndButt
	default:
		return clipper.EndPolygon
	}
}

func toPath64(points []geom2d.Point2D, scale float64) clipper.Path64 {
	out := make(clipper.Path64, len(points))
	for i, p := range points {
		out[i] = clipper.Point64{X: int64(math.Round(p.X * scale)), Y: int64(math.Round(p.Y * scale))}
	}
	return out
}

func toPaths64(paths [][]geom2d.Point2D, scale float64) clipper.Paths64 {
	out := make(clipper.Paths64, len(paths))
	for i, p := range paths {
		out[i] = toPath64(p, scale)
	}
	return out
}

func fromPath64(path clipper.Path64, scale float64) []geom2d.Point2D {
	out := make([]geom2d.Point2D, len(path))
	for i, p := range path {
		out[i] = geom2d.New(float64(p.X)/scale, float64(p.Y)/scale)
	}
	return out
}

func fromPaths64(paths clipper.Paths64, scale float64) [][]geom2d.Point2D {
	out := make([][]geom2d.Point2D, len(paths))
	for i, p := range paths {
		out[i] = fromPath64(p, scale)
	}
	return out
}

// Combine runs a boolean set operation on two polygon sets, each
// possibly holding multiple (possibly self-overlapping) paths, using
// the non-zero fill rule.
func Combine(subjects, clips [][]geom2d.Point2D, op Op) ([][]geom2d.Point2D, error) {
	subjPaths := toPaths64(subjects, geom2d.BooleanScale)
	clipPaths := toPaths64(clips, geom2d.BooleanScale)

	var result clipper.Paths64
	var err error
	switch op {
	case OpUnion:
		result, err = clipper.Union64(subjPaths, clipPaths, clipper.NonZero)
	case OpDifference:
		result, err = clipper.Difference64(subjPaths, clipPaths, clipper.NonZero)
	case OpIntersection:
		result, err = clipper.Intersect64(subjPaths, clipPaths, clipper.NonZero)
	case OpXor:
		result, err = clipper.Xor64(subjPaths, clipPaths, clipper.NonZero)
	default:
		return nil, fmt.Errorf("boolean: unknown op %d", op)
	}
	if err != nil {
		return nil, fmt.Errorf("boolean: clipper2 op failed: %w", err)
	}
	return fromPaths64(result, geom2d.BooleanScale), nil
}

// Offset inflates (delta > 0) or deflates (delta < 0) paths by delta,
// using the given join/end style.
func Offset(paths [][]geom2d.Point2D, delta float64, join JoinKind, end EndKind) ([][]geom2d.Point2D, error) {
	in := toPaths64(paths, geom2d.BooleanScale)
	result, err := clipper.InflatePaths64(in, delta*geom2d.BooleanScale, toClipperJoin(join), toClipperEnd(end), clipper.OffsetOptions{
		MiterLimit:   2.0,
		ArcTolerance: 0.25 * geom2d.BooleanScale,
	})
	if err != nil {
		return nil, fmt.Errorf("boolean: clipper2 offset failed: %w", err)
	}
	return fromPaths64(result, geom2d.BooleanScale), nil
}

// MinkowskiSum returns the Minkowski sum of pattern translated along
// every vertex of path.
func MinkowskiSum(pattern, path []geom2d.Point2D, pathIsClosed bool) [][]geom2d.Point2D {
	p := toPath64(pattern, geom2d.MinkowskiScale)
	q := toPath64(path, geom2d.MinkowskiScale)
	result := clipper.MinkowskiSum64(p, q, pathIsClosed)
	return fromPaths64(result, geom2d.MinkowskiScale)
}

// MinkowskiDiff returns the Minkowski difference of pattern from path.
func MinkowskiDiff(pattern, path []geom2d.Point2D, pathIsClosed bool) [][]geom2d.Point2D {
	p := toPath64(pattern, geom2d.MinkowskiScale)
	q := toPath64(path, geom2d.MinkowskiScale)
	result := clipper.MinkowskiDiff64(p, q, pathIsClosed)
	return fromPaths64(result, geom2d.MinkowskiScale)
}
