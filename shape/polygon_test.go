package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func unitSquare() shape.Polygon {
	p, _ := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(1, 0), geom2d.New(1, 1), geom2d.New(0, 1),
	})
	return p
}

func TestPolygonAreaCentroidConvexity(t *testing.T) {
	sq := unitSquare()
	assert.InDelta(t, 1, sq.Area(), 1e-12)
	assert.True(t, sq.Centroid().Equals(geom2d.New(0.5, 0.5)))
	assert.True(t, sq.IsConvex())
}

func TestPolygonSimplifyPreservesArea(t *testing.T) {
	p, err := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(0.5, 0), geom2d.New(1, 0),
		geom2d.New(1, 1), geom2d.New(0, 1),
	})
	require.NoError(t, err)

	simplified := p.Simplify(1e-9)
	assert.Len(t, simplified.Points, 4)
	assert.InDelta(t, p.Area(), simplified.Area(), 1e-9)
}

func TestPolygonContainsPointInsideAndOutside(t *testing.T) {
	sq := unitSquare()
	assert.True(t, sq.Contains(geom2d.New(0.5, 0.5), 0))
	assert.False(t, sq.Contains(geom2d.New(2, 2), 0))
}

func TestPolygonReversedFlipsArea(t *testing.T) {
	sq := unitSquare()
	assert.InDelta(t, -sq.Area(), sq.Reversed().Area(), 1e-12)
}

func TestPolygonAddAndDeleteVertex(t *testing.T) {
	sq := unitSquare()
	withMid, idx, err := sq.AddVertexAtPoint(geom2d.New(0.5, 0), 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Len(t, withMid.Points, 5)

	back, err := withMid.DeleteVertexAtPoint(geom2d.New(0.5, 0), 1e-9)
	require.NoError(t, err)
	assert.Len(t, back.Points, 4)
}
