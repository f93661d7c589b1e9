package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
)

// svd2 decomposes the 2x2 matrix [[a,b],[c,d]] into singular values
// (sx, sy) and the rotation angle theta of its left singular vectors,
// using Blinn's closed-form decomposition of a 2x2 matrix. sx and sy
// are returned non-negative.
func svd2(a, b, c, d float64) (sx, sy, theta float64) {
	E := (a + d) / 2
	F := (a - d) / 2
	G := (c + b) / 2
	H := (c - b) / 2
	Q := math.Hypot(E, H)
	R := math.Hypot(F, G)
	sx = Q + R
	sy = Q - R
	a1 := math.Atan2(G, F)
	a2 := math.Atan2(H, E)
	theta = (a2 - a1) / 2
	if sy < 0 {
		sy = -sy
		theta += math.Pi / 2
	}
	return sx, sy, theta
}

// ellipseAxesFromConjugateSemiDiameters reduces the conjugate
// semi-diameter pair (u, v) — the images of a circle's (r,0) and (0,r)
// radius vectors under a linear map — to principal semi-axis lengths
// and rotation, matching the "three corner of the inscribing
// square/parallelogram" construction the spec describes for Circle
// under non-uniform scale or arbitrary transform.
func ellipseAxesFromConjugateSemiDiameters(u, v geom2d.Point2D) (semiMajor, semiMinor, rotation float64) {
	sx, sy, theta := svd2(u.X, v.X, u.Y, v.Y)
	if sx >= sy {
		return sx, sy, theta
	}
	return sy, sx, theta + math.Pi/2
}
