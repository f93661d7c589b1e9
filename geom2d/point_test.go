package geom2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/geom2d"
)

func TestUnitVectorOfZeroIsZero(t *testing.T) {
	z := geom2d.Point2D{}
	assert.True(t, z.UnitVector().Equals(geom2d.Origin))
}

func TestPerpendicularVectorIsCCW90(t *testing.T) {
	p := geom2d.New(1, 0)
	assert.True(t, p.PerpendicularVector().Equals(geom2d.New(0, 1)))
}

func TestAngleBetweenVectorsIsClamped(t *testing.T) {
	a := geom2d.New(1, 0)
	b := geom2d.New(-1, 0)
	got := geom2d.AngleBetweenVectors(a, b)
	assert.InDelta(t, math.Pi, got, 1e-12)
}

func TestDivScalarByZeroFails(t *testing.T) {
	_, err := geom2d.New(1, 1).DivScalar(0)
	require.Error(t, err)
}

func TestDivVecByZeroComponentFails(t *testing.T) {
	_, err := geom2d.New(1, 1).DivVec(geom2d.New(0, 2))
	require.Error(t, err)
}

func TestIsCollinearTo(t *testing.T) {
	pts := []geom2d.Point2D{geom2d.New(0, 0), geom2d.New(1, 0), geom2d.New(2, 0)}
	assert.True(t, geom2d.IsCollinearTo(pts, geom2d.Epsilon))

	pts[2] = geom2d.New(2, 1)
	assert.False(t, geom2d.IsCollinearTo(pts, geom2d.Epsilon))
}

func TestIsCollinearToIgnoresRepeatedFirstPoint(t *testing.T) {
	a := geom2d.New(0, 0)
	b := geom2d.New(1, 0)
	c := geom2d.New(2, 1)
	pts := []geom2d.Point2D{a, b, a, c}
	assert.False(t, geom2d.IsCollinearTo(pts, geom2d.Epsilon))
}

func TestPointRoundTripsThroughString(t *testing.T) {
	p := geom2d.New(3.5, -2.25)
	parsed, err := geom2d.FromString(p.String())
	require.NoError(t, err)
	assert.True(t, p.Equals(parsed))
}

func TestTranslateThenInverseIsIdentity(t *testing.T) {
	p := geom2d.New(5, -3)
	v := geom2d.New(2, 7)
	got := p.Translate(v).Translate(v.Neg())
	assert.True(t, got.Equals(p))
}
