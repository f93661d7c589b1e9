package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestTwoCirclesIntersectNearFourThree(t *testing.T) {
	c1, err := shape.NewCircle(geom2d.New(0, 0), 5)
	require.NoError(t, err)
	c2, err := shape.NewCircle(geom2d.New(8, 0), 5)
	require.NoError(t, err)

	pts := c1.IntersectCircle(c2)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.InDelta(t, 4, p.X, 1e-9)
		assert.InDelta(t, 3, abs(p.Y), 1e-9)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestCircleTangentPointsFromOutsidePointAreOnCircle(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(0, 0), 3)
	require.NoError(t, err)
	p := geom2d.New(10, 0)

	tangents := c.TangentPointsFromPoint(p)
	require.Len(t, tangents, 2)
	for _, tp := range tangents {
		assert.InDelta(t, 3, tp.Sub(c.Center).Magnitude(), 1e-9)
		// The radius to the tangent point is perpendicular to the line
		// from the tangent point to the external point.
		toCenter := c.Center.Sub(tp)
		toExternal := p.Sub(tp)
		assert.InDelta(t, 0, geom2d.Dot(toCenter, toExternal), 1e-6)
	}
}

func TestCircleTangentPointsFromInsidePointIsEmpty(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(0, 0), 3)
	require.NoError(t, err)
	assert.Empty(t, c.TangentPointsFromPoint(geom2d.New(1, 0)))
}

func TestCircleNonUniformScaleUpgradesToEllipse(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(0, 0), 2)
	require.NoError(t, err)

	upgraded := c.Scale(2, 1, geom2d.Origin)
	ellipse, ok := upgraded.(shape.Ellipse)
	require.True(t, ok)
	assert.InDelta(t, 8, ellipse.MajorAxis, 1e-9)
	assert.InDelta(t, 4, ellipse.MinorAxis, 1e-9)
}

func TestCircleUniformScaleStaysCircle(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(1, 1), 2)
	require.NoError(t, err)
	scaled := c.Scale(3, 3, geom2d.Origin)
	got, ok := scaled.(shape.Circle)
	require.True(t, ok)
	assert.InDelta(t, 6, got.Radius, 1e-9)
}

func TestCircleDecomposeToBezierHasFourSegments(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(0, 0), 5)
	require.NoError(t, err)
	shapes, err := c.Decompose([]shape.Kind{shape.KindBezier}, 0)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	bp := shapes[0].(shape.BezierPath)
	assert.Len(t, bp.Segments(), 4)
}
