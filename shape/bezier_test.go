package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestBezierCircleSamplesLieNearRadius(t *testing.T) {
	bc := shape.BezierCircle(geom2d.New(0, 0), 10)
	pl := bc.ToPolyline(16, 0)
	for _, p := range pl.Points {
		assert.InDelta(t, 10, p.Magnitude(), 0.2)
	}
}

func TestBezierPathEndpointsMatchParameterExtremes(t *testing.T) {
	bp, err := shape.NewBezierPath([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(1, 1), geom2d.New(2, 1), geom2d.New(3, 0),
	})
	require.NoError(t, err)
	assert.True(t, bp.PointAtParameter(0).Equals(geom2d.New(0, 0)))
	assert.True(t, bp.PointAtParameter(1).Equals(geom2d.New(3, 0)))
}

func TestBezierClosestPointIsOnFlattenedPath(t *testing.T) {
	bp, err := shape.NewBezierPath([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(3, 5), geom2d.New(7, 5), geom2d.New(10, 0),
	})
	require.NoError(t, err)
	q := geom2d.New(5, 10)
	closest := bp.ClosestPointTo(q)

	pl := bp.ToPolyline(64, 0)
	bestDist := closest.Sub(pl.Points[0]).Magnitude()
	for _, p := range pl.Points {
		d := closest.Sub(p).Magnitude()
		if d < bestDist {
			bestDist = d
		}
	}
	assert.Less(t, bestDist, 0.2)
}

func TestBezierFromPolylineRoundTripsEndpoints(t *testing.T) {
	pl := shape.PolyLine2D{Points: []geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(5, 5), geom2d.New(10, 0),
	}}
	bp, err := shape.FromPolyline(pl, 0.25)
	require.NoError(t, err)
	assert.True(t, bp.ControlPoints[0].Equals(pl.Points[0]))
	assert.True(t, bp.ControlPoints[len(bp.ControlPoints)-1].Equals(pl.Points[len(pl.Points)-1]))
}

func TestBezierPathPaddedToValidSegmentCount(t *testing.T) {
	bp, err := shape.NewBezierPath([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(1, 1), geom2d.New(2, 1), geom2d.New(3, 0), geom2d.New(4, 0),
	})
	require.NoError(t, err)
	assert.Len(t, bp.Segments(), 2)
	assert.True(t, bp.Segments()[1][3].Equals(geom2d.New(4, 0)))
}
