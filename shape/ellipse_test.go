package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestEllipseIntersectsVerticalLineNearZeroThree(t *testing.T) {
	e, err := shape.NewEllipse(geom2d.New(0, 0), 10, 6, 0)
	require.NoError(t, err)

	l := shape.NewLine(geom2d.New(0, -10), geom2d.New(0, 10))
	pts := e.IntersectLine(l)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.InDelta(t, 0, p.X, 1e-9)
		assert.InDelta(t, 3, math.Abs(p.Y), 1e-9)
	}
}

func TestEllipseEccentricityOfCircleIsZero(t *testing.T) {
	e, err := shape.NewEllipse(geom2d.New(0, 0), 4, 4, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, e.Eccentricity(), 1e-12)
}

func TestEllipseRejectsMinorGreaterThanMajor(t *testing.T) {
	_, err := shape.NewEllipse(geom2d.New(0, 0), 2, 5, 0)
	require.Error(t, err)
}

func TestEllipseClosestPointLiesOnEllipse(t *testing.T) {
	e, err := shape.NewEllipse(geom2d.New(0, 0), 5, 2, 0)
	require.NoError(t, err)
	got := e.ClosestPointTo(geom2d.New(10, 10))
	assert.True(t, e.PointOnEllipse(got, 1e-6))
}
