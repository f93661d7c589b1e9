package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestRecordRoundTripsCircle(t *testing.T) {
	c, err := shape.NewCircle(geom2d.New(3, 4), 7)
	require.NoError(t, err)

	rec, err := shape.ToRecord(c)
	require.NoError(t, err)
	assert.Equal(t, shape.KindCircle, rec.Kind)

	back, err := shape.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestRecordRoundTripsPolygon(t *testing.T) {
	p, err := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(4, 0), geom2d.New(4, 4), geom2d.New(0, 4),
	})
	require.NoError(t, err)

	rec, err := shape.ToRecord(p)
	require.NoError(t, err)
	back, err := shape.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestRecordRoundTripsRegionWithHole(t *testing.T) {
	outer, err := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(10, 0), geom2d.New(10, 10), geom2d.New(0, 10),
	})
	require.NoError(t, err)
	hole, err := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(4, 4), geom2d.New(6, 4), geom2d.New(6, 6), geom2d.New(4, 6),
	})
	require.NoError(t, err)
	region := shape.Region{Perimeters: []shape.Polygon{outer}, Holes: []shape.Polygon{hole}}

	rec, err := shape.ToRecord(region)
	require.NoError(t, err)
	assert.Equal(t, shape.KindRegion, rec.Kind)
	require.Len(t, rec.Perimeters, 1)
	require.Len(t, rec.Holes, 1)

	back, err := shape.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, region, back)
}

func TestFromRecordRejectsDegenerateInput(t *testing.T) {
	_, err := shape.FromRecord(shape.Record{Kind: shape.KindPolygon, Points: []geom2d.Point2D{geom2d.New(0, 0)}})
	assert.Error(t, err)
}
