package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/shape"
)

func TestAddAssignsStableIDsAndZOrder(t *testing.T) {
	d := document.New()
	a := d.Add(shape.NewPoint(0, 0), document.Style{})
	b := d.Add(shape.NewPoint(1, 1), document.Style{})
	require.NotEqual(t, a, b)

	objs := d.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, a, objs[0].ID)
	assert.Equal(t, b, objs[1].ID)
}

func TestBatchEditEmitsSignalsOnceAtEnd(t *testing.T) {
	d := document.New()
	id := d.Add(shape.NewPoint(0, 0), document.Style{})

	var events []document.Event
	d.Subscribe(func(e document.Event) { events = append(events, e) })

	err := d.BatchEdit(func() error {
		d.SetShape(id, shape.NewPoint(1, 0))
		d.SetShape(id, shape.NewPoint(2, 0))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, document.SignalObjectModified, e.Signal)
	}
}

func TestBatchEditStillFlushesSignalsOnPanic(t *testing.T) {
	d := document.New()
	id := d.Add(shape.NewPoint(0, 0), document.Style{})

	var events []document.Event
	d.Subscribe(func(e document.Event) { events = append(events, e) })

	assert.Panics(t, func() {
		_ = d.BatchEdit(func() error {
			d.SetShape(id, shape.NewPoint(5, 5))
			panic("boom")
		})
	})
	require.Len(t, events, 1)
	assert.Equal(t, document.SignalObjectModified, events[0].Signal)
}

func TestSelectionExpandsToGroupDescendants(t *testing.T) {
	d := document.New()
	group := d.Add(shape.NewPoint(0, 0), document.Style{})
	child := d.Add(shape.NewPoint(1, 1), document.Style{})
	d.SetParent(child, &group)

	final := d.SetSelection([]document.ObjectID{group})
	assert.Contains(t, final, group)
	assert.Contains(t, final, child)
}

func TestSoleSelectedOnlyTrueForExactlyOne(t *testing.T) {
	d := document.New()
	a := d.Add(shape.NewPoint(0, 0), document.Style{})
	b := d.Add(shape.NewPoint(1, 0), document.Style{})

	d.SetSelection([]document.ObjectID{a})
	_, ok := d.SoleSelected()
	assert.True(t, ok)

	d.SetSelection([]document.ObjectID{a, b})
	_, ok = d.SoleSelected()
	assert.False(t, ok)

	d.SetSelection(nil)
	_, ok = d.SoleSelected()
	assert.False(t, ok)
}

func TestRemoveClearsSelectionAndParentLinks(t *testing.T) {
	d := document.New()
	parent := d.Add(shape.NewPoint(0, 0), document.Style{})
	child := d.Add(shape.NewPoint(1, 1), document.Style{})
	d.SetParent(child, &parent)
	d.SetSelection([]document.ObjectID{parent})

	d.Remove(parent)
	assert.False(t, d.IsSelected(parent))
	obj, ok := d.Get(child)
	require.True(t, ok)
	assert.Nil(t, obj.Parent)
}

func TestFixedPrecisionUnitsFormatsAcrossUnits(t *testing.T) {
	f := document.FixedPrecisionUnits{Precision: 2}
	assert.Equal(t, "25.40mm", f.Format(25.4, document.UnitMillimeters))
	assert.Equal(t, "1.00in", f.Format(25.4, document.UnitInches))
	assert.Equal(t, "2.54cm", f.Format(25.4, document.UnitCentimeters))
}
