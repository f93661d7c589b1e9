package geom2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
)

func TestCompositionMatchesSequentialApply(t *testing.T) {
	a := geom2d.Rotation(1.2, geom2d.New(1, 2))
	b := geom2d.Translation(3, -4)
	p := geom2d.New(5, 6)

	composed := a.Mul(b).Apply(p)
	sequential := a.Apply(b.Apply(p))
	assert.True(t, composed.Equals(sequential))
}

func TestInverseOfSingularTransformFails(t *testing.T) {
	s := geom2d.Scaling(0, 0, geom2d.Origin)
	assert.False(t, s.IsInvertible())
	_, err := s.Inverse()
	require.Error(t, err)
}

func TestInverseRoundTrips(t *testing.T) {
	tr := geom2d.Rotation(0.7, geom2d.New(2, -1)).Mul(geom2d.Scaling(2, 3, geom2d.Origin))
	inv, err := tr.Inverse()
	require.NoError(t, err)

	p := geom2d.New(10, -5)
	roundTripped := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, roundTripped.X, 1e-9)
	assert.InDelta(t, p.Y, roundTripped.Y, 1e-9)
}

func TestFromPointsRejectsCollinearSource(t *testing.T) {
	src := []geom2d.Point2D{geom2d.New(0, 0), geom2d.New(1, 0), geom2d.New(2, 0)}
	dst := []geom2d.Point2D{geom2d.New(0, 0), geom2d.New(1, 1), geom2d.New(2, 2)}
	_, err := geom2d.FromPoints(src, dst)
	require.Error(t, err)
}

func TestFromPointsRecoversKnownTransform(t *testing.T) {
	want := geom2d.Rotation(0.4, geom2d.Origin).Mul(geom2d.Translation(2, 3))
	src := []geom2d.Point2D{geom2d.New(0, 0), geom2d.New(1, 0), geom2d.New(0, 1), geom2d.New(1, 1)}
	dst := make([]geom2d.Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}

	got, err := geom2d.FromPoints(src, dst)
	require.NoError(t, err)

	for _, p := range src {
		assert.True(t, got.Apply(p).Equals(want.Apply(p)))
	}
}

func TestApplyManyMatchesApply(t *testing.T) {
	tr := geom2d.Rotation(0.3, geom2d.New(1, 1))
	pts := []geom2d.Point2D{geom2d.New(0, 0), geom2d.New(2, 3), geom2d.New(-1, 4)}
	many := tr.ApplyMany(pts)
	for i, p := range pts {
		assert.True(t, many[i].Equals(tr.Apply(p)))
	}
}
