package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/constraint"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

// memBag is a minimal in-memory VarBag, standing in for a real solver's
// variable table.
type memBag struct {
	scalars map[int]float64
	points  map[int]geom2d.Point2D
	fixed   map[int]bool
	next    int
}

func newMemBag() *memBag {
	return &memBag{scalars: map[int]float64{}, points: map[int]geom2d.Point2D{}, fixed: map[int]bool{}}
}

func (b *memBag) alloc() int {
	b.next++
	return b.next
}

func (b *memBag) DeclareScalar(name string, initial float64, fixed bool) constraint.Handle {
	id := b.alloc()
	b.scalars[id] = initial
	b.fixed[id] = fixed
	return constraint.NewHandle(id)
}

func (b *memBag) DeclarePoint(name string, initial geom2d.Point2D, fixed bool) constraint.Handle {
	id := b.alloc()
	b.points[id] = initial
	b.fixed[id] = fixed
	return constraint.NewHandle(id)
}

func (b *memBag) ScalarValue(h constraint.Handle) float64 { return b.scalars[constraint.HandleID(h)] }
func (b *memBag) PointValue(h constraint.Handle) geom2d.Point2D {
	return b.points[constraint.HandleID(h)]
}
func (b *memBag) SetScalarValue(h constraint.Handle, v float64) { b.scalars[constraint.HandleID(h)] = v }
func (b *memBag) SetPointValue(h constraint.Handle, v geom2d.Point2D) {
	b.points[constraint.HandleID(h)] = v
}

func TestLineBindingRoundTripsThroughSolvedValues(t *testing.T) {
	bag := newMemBag()
	l := shape.NewLine(geom2d.New(0, 0), geom2d.New(10, 0))
	b := constraint.BindLine(bag, l)

	names := b.GetConstrainables()
	require.Len(t, names, 2)
	assert.Equal(t, "start", names[0].Name)
	assert.Equal(t, "end", names[1].Name)

	bag.SetPointValue(names[1].Handle, geom2d.New(10, 5))
	solved := b.UpdateFromSolvedConstraints(bag)
	assert.True(t, solved.End.Equals(geom2d.New(10, 5)))
	assert.True(t, solved.Start.Equals(geom2d.New(0, 0)))
}

func TestCircleBindingExposesCenterAndRadius(t *testing.T) {
	bag := newMemBag()
	c, err := shape.NewCircle(geom2d.New(1, 1), 5)
	require.NoError(t, err)
	b := constraint.BindCircle(bag, c)

	names := b.GetConstrainables()
	require.Len(t, names, 2)
	assert.Equal(t, "center", names[0].Name)
	assert.Equal(t, "radius", names[1].Name)
	assert.InDelta(t, 5, bag.ScalarValue(names[1].Handle), 1e-9)

	bag.SetScalarValue(names[1].Handle, 8)
	solved, err := b.UpdateFromSolvedConstraints(bag)
	require.NoError(t, err)
	assert.InDelta(t, 8, solved.Radius, 1e-9)
}

func TestCircleBindingRejectsNegativeSolvedRadius(t *testing.T) {
	bag := newMemBag()
	c, err := shape.NewCircle(geom2d.Origin, 5)
	require.NoError(t, err)
	b := constraint.BindCircle(bag, c)
	names := b.GetConstrainables()
	bag.SetScalarValue(names[1].Handle, -1)
	_, err = b.UpdateFromSolvedConstraints(bag)
	assert.Error(t, err)
}

func TestPolygonBindingNamesVerticesPositionally(t *testing.T) {
	bag := newMemBag()
	p, err := shape.NewPolygon([]geom2d.Point2D{geom2d.New(0, 0), geom2d.New(1, 0), geom2d.New(0, 1)})
	require.NoError(t, err)
	b := constraint.BindPolygon(bag, p)

	names := b.GetConstrainables()
	require.Len(t, names, 3)
	assert.Equal(t, "point_0", names[0].Name)
	assert.Equal(t, "point_2", names[2].Name)

	constraint.PolygonUpdateBeforeSolving(b, bag, p)
	solved, err := constraint.PolygonUpdateFromSolved(b, bag)
	require.NoError(t, err)
	assert.True(t, solved.Points[1].Equals(geom2d.New(1, 0)))
}

func TestBezierPathBindingUsesSameVertexNamingScheme(t *testing.T) {
	bag := newMemBag()
	bp, err := shape.NewBezierPath([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(1, 1), geom2d.New(2, 1), geom2d.New(3, 0),
	})
	require.NoError(t, err)
	b := constraint.BindBezierPath(bag, bp)

	names := b.GetConstrainables()
	require.Len(t, names, 4)
	assert.Equal(t, "point_3", names[3].Name)
}

func TestSpurGearBindingLeavesNumTeethOutOfConstrainables(t *testing.T) {
	bag := newMemBag()
	g, err := shape.NewSpurGear(geom2d.Origin, 20, 2, 0.349066, 0)
	require.NoError(t, err)
	b := constraint.BindSpurGear(bag, g)

	names := b.GetConstrainables()
	for _, n := range names {
		assert.NotContains(t, []string{"num_teeth", "teeth"}, n.Name)
	}

	moduleHandle := names[1].Handle
	bag.SetScalarValue(moduleHandle, 3)
	solved, err := b.UpdateFromSolvedConstraints(bag, g.NumTeeth)
	require.NoError(t, err)
	assert.InDelta(t, 3, solved.Module, 1e-9)
	assert.Equal(t, g.NumTeeth, solved.NumTeeth)
}
