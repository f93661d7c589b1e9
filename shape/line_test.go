package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func TestLineIntersectionAtFive(t *testing.T) {
	l1 := shape.NewLine(geom2d.New(0, 0), geom2d.New(10, 0))
	l2 := shape.NewLine(geom2d.New(5, -5), geom2d.New(5, 5))

	got := l1.IntersectsAt(l2, true, true)
	assert.Equal(t, shape.PointIntersection, got.Kind)
	assert.True(t, got.Point.Equals(geom2d.New(5, 0)))
}

func TestParallelLinesDoNotIntersect(t *testing.T) {
	l1 := shape.NewLine(geom2d.New(0, 0), geom2d.New(10, 0))
	l2 := shape.NewLine(geom2d.New(0, 1), geom2d.New(10, 1))
	got := l1.IntersectsAt(l2, true, true)
	assert.Equal(t, shape.NoIntersection, got.Kind)
}

func TestCollinearLinesOverlap(t *testing.T) {
	l1 := shape.NewLine(geom2d.New(0, 0), geom2d.New(10, 0))
	l2 := shape.NewLine(geom2d.New(5, 0), geom2d.New(15, 0))
	got := l1.IntersectsAt(l2, true, true)
	assert.Equal(t, shape.OverlapIntersection, got.Kind)
	assert.True(t, got.Overlap.Start.Equals(geom2d.New(5, 0)))
	assert.True(t, got.Overlap.End.Equals(geom2d.New(10, 0)))
}

func TestLineClosestPointClampsToSegment(t *testing.T) {
	l := shape.NewLine(geom2d.New(0, 0), geom2d.New(10, 0))
	got := l.ClosestPointTo(geom2d.New(20, 5))
	assert.True(t, got.Equals(geom2d.New(10, 0)))
}
