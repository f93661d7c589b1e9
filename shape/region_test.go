package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func squareAt(x, y, side float64) shape.Polygon {
	p, _ := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(x, y), geom2d.New(x+side, y), geom2d.New(x+side, y+side), geom2d.New(x, y+side),
	})
	return p
}

func TestRegionDifferenceBounds(t *testing.T) {
	outer, err := shape.NewRegion([]shape.Polygon{squareAt(0, 0, 10)}, nil)
	require.NoError(t, err)
	cutter, err := shape.NewRegion([]shape.Polygon{squareAt(8, 0, 10)}, nil)
	require.NoError(t, err)

	result, err := outer.Difference(cutter)
	require.NoError(t, err)
	require.NotEmpty(t, result.Perimeters)

	b := result.Bounds()
	assert.InDelta(t, 0, b.Min.X, 1e-6)
	assert.InDelta(t, 8, b.Max.X, 1e-6)
}

func TestRegionUnionIsSuperset(t *testing.T) {
	a, err := shape.NewRegion([]shape.Polygon{squareAt(0, 0, 10)}, nil)
	require.NoError(t, err)
	b, err := shape.NewRegion([]shape.Polygon{squareAt(5, 0, 10)}, nil)
	require.NoError(t, err)

	result, err := a.Union(b)
	require.NoError(t, err)
	assert.True(t, result.Contains(geom2d.New(1, 1), 0))
	assert.True(t, result.Contains(geom2d.New(14, 1), 0))
}

func TestRegionValidateWarnsOnUncontainedHole(t *testing.T) {
	outer, err := shape.NewRegion([]shape.Polygon{squareAt(0, 0, 10)}, []shape.Polygon{squareAt(20, 20, 2).Reversed()})
	require.NoError(t, err)
	warnings := outer.Validate(1e-9)
	assert.NotEmpty(t, warnings)
}

func TestRegionValidateCleanForWellFormedHole(t *testing.T) {
	outer, err := shape.NewRegion([]shape.Polygon{squareAt(0, 0, 10)}, []shape.Polygon{squareAt(2, 2, 2).Reversed()})
	require.NoError(t, err)
	assert.Empty(t, outer.Validate(1e-9))
}

func TestRegionOffsetExpandsBounds(t *testing.T) {
	r, err := shape.NewRegion([]shape.Polygon{squareAt(0, 0, 10)}, nil)
	require.NoError(t, err)

	grown, err := r.Offset(2, shape.JoinRound, shape.EndClosedPolygon)
	require.NoError(t, err)
	b := grown.Bounds()
	assert.InDelta(t, -2, b.Min.X, 1e-6)
	assert.InDelta(t, 12, b.Max.X, 1e-6)
}
