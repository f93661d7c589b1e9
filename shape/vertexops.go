package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// edge is one segment of a vertex chain, carrying the index of its
// start vertex so callers can splice a new point in after it.
type edge struct {
	startIdx   int
	start, end geom2d.Point2D
}

// edgesOf returns the consecutive edges of points. When wrap is true
// (Polygon's implicit closure) an extra edge from the last vertex back
// to the first is included; PolyLine never wraps because a closed
// PolyLine already repeats its first point as its last.
func edgesOf(points []geom2d.Point2D, wrap bool) []edge {
	n := len(points)
	edges := make([]edge, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, edge{startIdx: i, start: points[i], end: points[i+1]})
	}
	if wrap && n > 1 {
		edges = append(edges, edge{startIdx: n - 1, start: points[n-1], end: points[0]})
	}
	return edges
}

// simplifyPoints removes vertices coincident with a neighbor within tol
// and vertices collinear with their neighbors within tol triangle area,
// re-running until no more removals occur.
func simplifyPoints(points []geom2d.Point2D, wrap bool, tol float64) []geom2d.Point2D {
	pts := append([]geom2d.Point2D(nil), points...)
	for {
		n := len(pts)
		if n <= 2 {
			return pts
		}
		removed := false
		out := make([]geom2d.Point2D, 0, n)
		for i := 0; i < n; i++ {
			prevIdx := i - 1
			if prevIdx < 0 {
				if !wrap {
					out = append(out, pts[i])
					continue
				}
				prevIdx = n - 1
			}
			nextIdx := i + 1
			if nextIdx >= n {
				if !wrap {
					out = append(out, pts[i])
					continue
				}
				nextIdx = 0
			}

			prev, cur, next := pts[prevIdx], pts[i], pts[nextIdx]
			if cur.Sub(prev).Magnitude() <= tol {
				removed = true
				continue // coincident with previous kept/neighbor vertex
			}
			area := math.Abs(geom2d.Cross(cur.Sub(prev), next.Sub(prev))) / 2
			if area <= tol {
				removed = true
				continue // collinear with neighbors
			}
			out = append(out, cur)
		}
		if !removed || len(out) == n {
			return out
		}
		pts = out
	}
}

// addVertexAtPoint returns the index of p in points (inserting it if
// necessary). If p coincides with an existing vertex within tol, that
// vertex's index is returned unchanged. Otherwise the first edge (in
// vertex order) within tol of p is located and p is inserted
// immediately after its start; NotOnPerimeter is returned if no edge
// qualifies.
func addVertexAtPoint(points []geom2d.Point2D, wrap bool, p geom2d.Point2D, tol float64) ([]geom2d.Point2D, int, error) {
	for i, v := range points {
		if v.Sub(p).Magnitude() <= tol {
			return points, i, nil
		}
	}

	for _, e := range edgesOf(points, wrap) {
		seg := Line2D{Start: e.start, End: e.end}
		if seg.DistanceToPoint(p) <= tol {
			out := make([]geom2d.Point2D, 0, len(points)+1)
			out = append(out, points[:e.startIdx+1]...)
			out = append(out, p)
			out = append(out, points[e.startIdx+1:]...)
			return out, e.startIdx + 1, nil
		}
	}
	return points, -1, geomerr.NotOnPerimeter("shape: no edge within %.3g of %v", tol, p)
}

// deleteVertexAtPoint removes the vertex closest to p if it is within
// tol, refusing if the result would drop below minVertices.
func deleteVertexAtPoint(points []geom2d.Point2D, p geom2d.Point2D, tol float64, minVertices int) ([]geom2d.Point2D, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, v := range points {
		d := v.Sub(p).Magnitude()
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best == -1 || bestDist > tol {
		return points, geomerr.Domain("shape: no vertex within %.3g of %v", tol, p)
	}
	if len(points)-1 < minVertices {
		return points, geomerr.Domain("shape: cannot reduce below %d vertices", minVertices)
	}
	out := make([]geom2d.Point2D, 0, len(points)-1)
	out = append(out, points[:best]...)
	out = append(out, points[best+1:]...)
	return out, nil
}
