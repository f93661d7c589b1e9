package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestSpurGearViewsAgree(t *testing.T) {
	g, err := shape.NewSpurGear(geom2d.Origin, 20, 2, 0.349066, 0)
	require.NoError(t, err)

	byPitch, err := shape.NewSpurGearFromPitchDiameter(geom2d.Origin, 20, g.PitchDiameter(), g.PressureAngleRadians, 0)
	require.NoError(t, err)
	assert.InDelta(t, g.Module, byPitch.Module, 1e-9)

	byDP, err := shape.NewSpurGearFromDiametralPitch(geom2d.Origin, 20, g.DiametralPitch(), g.PressureAngleRadians, 0)
	require.NoError(t, err)
	assert.InDelta(t, g.Module, byDP.Module, 1e-9)
}

func TestSpurGearRejectsTooFewTeeth(t *testing.T) {
	_, err := shape.NewSpurGear(geom2d.Origin, 2, 2, 0.349066, 0)
	require.Error(t, err)
}

func TestSpurGearRejectsFourTeethButAcceptsFive(t *testing.T) {
	_, err := shape.NewSpurGear(geom2d.Origin, 4, 2, 0.349066, 0)
	require.Error(t, err)

	_, err = shape.NewSpurGear(geom2d.Origin, 5, 2, 0.349066, 0)
	require.NoError(t, err)
}

func TestSpurGearRejectsPressureAngleOutsideTenToThirtyDegrees(t *testing.T) {
	const degree = math.Pi / 180

	_, err := shape.NewSpurGear(geom2d.Origin, 20, 2, 9*degree, 0)
	require.Error(t, err)

	_, err = shape.NewSpurGear(geom2d.Origin, 20, 2, 31*degree, 0)
	require.Error(t, err)

	_, err = shape.NewSpurGear(geom2d.Origin, 20, 2, 20*degree, 0)
	require.NoError(t, err)
}

func TestSpurGearPitchCircleHasExpectedSegmentCount(t *testing.T) {
	g, err := shape.NewSpurGear(geom2d.Origin, 12, 1.5, 0.349066, 0)
	require.NoError(t, err)
	pts := g.GetPitchCirclePoints()
	assert.Len(t, pts, 64)
	for _, p := range pts {
		assert.InDelta(t, g.PitchRadius(), p.Sub(g.Center).Magnitude(), 1e-9)
	}
}

func TestSpurGearPathStaysWithinAddendumRadius(t *testing.T) {
	g, err := shape.NewSpurGear(geom2d.Origin, 16, 2, 0.349066, 0)
	require.NoError(t, err)
	for _, p := range g.GetGearPathPoints() {
		assert.LessOrEqual(t, p.Sub(g.Center).Magnitude(), g.AddendumRadius()+1e-6)
	}
}
