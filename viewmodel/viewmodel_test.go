package viewmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/render"
	"github.com/latticecad/kernel/shape"
	"github.com/latticecad/kernel/viewmodel"
)

func TestCircleSetCenterEmitsCenterChangedThenObjectModifiedOnce(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 5}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewCircleViewModel(doc, obj)

	var signals []viewmodel.Signal
	vm.Subscribe(func(e viewmodel.Event) { signals = append(signals, e.Signal) })

	require.NoError(t, vm.SetCenter(geom2d.New(3, 4)))
	require.Len(t, signals, 2)
	assert.Equal(t, viewmodel.SignalCenterChanged, signals[0])
	assert.Equal(t, viewmodel.SignalObjectModified, signals[1])
	assert.True(t, vm.Center().Equals(geom2d.New(3, 4)))
}

func TestCircleSetCenterToSameValueEmitsNothing(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 5}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewCircleViewModel(doc, obj)

	var signals []viewmodel.Signal
	vm.Subscribe(func(e viewmodel.Event) { signals = append(signals, e.Signal) })

	require.NoError(t, vm.SetCenter(geom2d.New(0, 0)))
	assert.Empty(t, signals)
}

func TestCircleSetRadiusRejectsNegativeWithoutMutating(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 5}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewCircleViewModel(doc, obj)

	err := vm.SetRadius(-1)
	require.Error(t, err)
	assert.Equal(t, 5.0, vm.Radius())
}

func TestCircleControlDatumSetRejectsOutOfRangeWithoutMutating(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 5}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewCircleViewModel(doc, obj)

	datums := vm.ControlDatums(document.UnitMillimeters)
	require.Len(t, datums, 1)
	assert.Equal(t, "radius", datums[0].Name)

	err := datums[0].Set(-10)
	require.Error(t, err)
	assert.Equal(t, 5.0, vm.Radius())
}

func TestCircleControlPointDragReentersGuardedSetter(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 5}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewCircleViewModel(doc, obj)

	var signals []viewmodel.Signal
	vm.Subscribe(func(e viewmodel.Event) { signals = append(signals, e.Signal) })

	vm.ShowControls(noopSurface{})
	pts := vm.UpdateControls(noopSurface{})
	require.Len(t, pts, 2)
	assert.Equal(t, "center", pts[0].Name)
	assert.Equal(t, "radius", pts[1].Name)

	require.NoError(t, pts[0].Set(geom2d.New(10, 10)))
	assert.Contains(t, signals, viewmodel.SignalCenterChanged)
}

func TestLineSetLengthPreservesStartAndDirection(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Line2D{Start: geom2d.New(0, 0), End: geom2d.New(10, 0)}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewLineViewModel(doc, obj)

	require.NoError(t, vm.SetLength(20))
	assert.True(t, vm.Start().Equals(geom2d.New(0, 0)))
	assert.InDelta(t, 20, vm.Length(), 1e-9)
	assert.InDelta(t, 20, vm.End().X, 1e-9)
}

func TestLineSetLengthRejectsNegative(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Line2D{Start: geom2d.New(0, 0), End: geom2d.New(10, 0)}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewLineViewModel(doc, obj)

	err := vm.SetLength(-5)
	require.Error(t, err)
	assert.InDelta(t, 10, vm.Length(), 1e-9)
}

func TestLineTranslateMovesBothEndpointsAndEmitsObjectMoved(t *testing.T) {
	doc := document.New()
	id := doc.Add(shape.Line2D{Start: geom2d.New(0, 0), End: geom2d.New(10, 0)}, document.Style{})
	obj, _ := doc.Get(id)
	vm := viewmodel.NewLineViewModel(doc, obj)

	var signals []viewmodel.Signal
	vm.Subscribe(func(e viewmodel.Event) { signals = append(signals, e.Signal) })

	vm.Translate(geom2d.New(1, 1))
	assert.True(t, vm.Start().Equals(geom2d.New(1, 1)))
	assert.True(t, vm.End().Equals(geom2d.New(11, 1)))
	require.Len(t, signals, 2)
	assert.Equal(t, viewmodel.SignalObjectMoved, signals[0])
}

func TestControlsVisibleOnlyForSoleSelection(t *testing.T) {
	doc := document.New()
	a := doc.Add(shape.Circle{Center: geom2d.New(0, 0), Radius: 1}, document.Style{})
	b := doc.Add(shape.Circle{Center: geom2d.New(1, 1), Radius: 1}, document.Style{})

	doc.SetSelection([]document.ObjectID{a})
	assert.True(t, viewmodel.ControlsVisible(doc, a))
	assert.False(t, viewmodel.ControlsVisible(doc, b))

	doc.SetSelection([]document.ObjectID{a, b})
	assert.False(t, viewmodel.ControlsVisible(doc, a))
	assert.False(t, viewmodel.ControlsVisible(doc, b))
}

type noopSurface struct{}

func (noopSurface) Draw(prims []render.Primitive) {}
