package shape_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestRectRotationUpgradesToPolygon(t *testing.T) {
	r, err := shape.NewRect(0, 0, 4, 2)
	require.NoError(t, err)
	rotated := r.Rotate(math.Pi/4, geom2d.Origin)
	_, ok := rotated.(shape.Polygon)
	assert.True(t, ok)
}

func TestRectUniformScaleStaysRect(t *testing.T) {
	r, err := shape.NewRect(0, 0, 4, 2)
	require.NoError(t, err)
	scaled := r.Scale(2, 2, geom2d.Origin)
	got, ok := scaled.(shape.Rect)
	require.True(t, ok)
	assert.InDelta(t, 8, got.Width, 1e-9)
	assert.InDelta(t, 4, got.Height, 1e-9)
}

func TestRectNonUniformScaleUpgradesToPolygon(t *testing.T) {
	r, err := shape.NewRect(0, 0, 4, 2)
	require.NoError(t, err)
	scaled := r.Scale(2, 3, geom2d.Origin)
	_, ok := scaled.(shape.Polygon)
	assert.True(t, ok)
}

func TestRectExpandGrowsSymmetrically(t *testing.T) {
	r, err := shape.NewRect(0, 0, 4, 2)
	require.NoError(t, err)
	grown := r.Expand(1)
	assert.InDelta(t, -1, grown.Left, 1e-9)
	assert.InDelta(t, 6, grown.Width, 1e-9)
}
