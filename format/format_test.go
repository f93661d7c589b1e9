package format_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/format"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

func sampleContainer(t *testing.T) format.Container {
	t.Helper()
	doc := document.New()
	region, err := shape.NewPolygon([]geom2d.Point2D{
		geom2d.New(0, 0), geom2d.New(10, 0), geom2d.New(10, 10), geom2d.New(0, 10),
	})
	require.NoError(t, err)
	group := doc.Add(region, document.Style{Color: color.RGBA{R: 200, G: 10, B: 10, A: 255}, Visible: true})

	circle, err := shape.NewCircle(geom2d.New(5, 5), 2)
	require.NoError(t, err)
	child := doc.Add(circle, document.Style{Color: color.RGBA{A: 255}, Visible: true})
	doc.SetParent(child, &group)

	c, err := format.ToContainer(doc, format.Preferences{Unit: document.UnitMillimeters, Precision: 2})
	require.NoError(t, err)
	return c
}

func TestSaveTextThenLoadTextPreservesObjectsAndPreferences(t *testing.T) {
	c := sampleContainer(t)

	text, err := format.SaveText(c)
	require.NoError(t, err)

	loaded, err := format.LoadText(text)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestSaveTextRoundTripIsByteIdenticalOnReSave(t *testing.T) {
	c := sampleContainer(t)

	first, err := format.SaveText(c)
	require.NoError(t, err)

	loaded, err := format.LoadText(first)
	require.NoError(t, err)

	second, err := format.SaveText(loaded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSaveBundleThenLoadBundleRoundTrips(t *testing.T) {
	c := sampleContainer(t)

	bundle, err := format.SaveBundle(c)
	require.NoError(t, err)

	loaded, err := format.LoadBundle(bundle)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestSaveBundleRoundTripIsByteIdenticalOnReSave(t *testing.T) {
	c := sampleContainer(t)

	first, err := format.SaveBundle(c)
	require.NoError(t, err)

	loaded, err := format.LoadBundle(first)
	require.NoError(t, err)

	second, err := format.SaveBundle(loaded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplyContainerRebuildsParentLinks(t *testing.T) {
	c := sampleContainer(t)

	doc, err := format.ApplyContainer(c)
	require.NoError(t, err)

	objs := doc.Objects()
	require.Len(t, objs, 2)
	assert.Nil(t, objs[0].Parent)
	require.NotNil(t, objs[1].Parent)
	assert.Equal(t, objs[0].ID, *objs[1].Parent)
}
