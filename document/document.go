// Package document owns CadObject identity, Z-order, and parent/child
// group links — the single point of mutation the spec requires shapes
// themselves to stay free of. ObjectID allocation follows the
// teacher's memory.ClusterID pattern in internal/app/cluster.go: a
// monotonic counter behind a map, sorted on read.
package document

import (
	"image/color"
	"sort"

	"github.com/latticecad/kernel/shape"
)

// ObjectID uniquely identifies a CadObject within one Document.
type ObjectID int64

// Style carries the non-geometric attributes a CadObject layers on top
// of its shape.
type Style struct {
	Color     color.RGBA
	LineWidth float64
	Layer     string
	Visible   bool
	Locked    bool
}

// CadObject wraps exactly one shape plus style, layer, and optional
// parent-group link. Shapes hold no back-reference to the document;
// all identity and ownership lives here.
type CadObject struct {
	ID     ObjectID
	Shape  shape.Shape2D
	Style  Style
	Parent *ObjectID
}

// Signal names the document-level notifications a ViewModel or UI
// layer subscribes to.
type Signal string

const (
	SignalObjectAdded      Signal = "object_added"
	SignalObjectRemoved    Signal = "object_removed"
	SignalObjectModified   Signal = "object_modified"
	SignalSelectionChanged Signal = "selection_changed"
)

// Event is one emitted signal, carrying the ids it concerns.
type Event struct {
	Signal Signal
	IDs    []ObjectID
}

// Listener receives document events. Subscribe returns nothing to
// unsubscribe; the document is expected to live as long as its UI.
type Listener func(Event)

// Document is the sole authority over object identity, Z-order, and
// parent/child links, per spec.md §3.4 and §5.
type Document struct {
	objects   map[ObjectID]*CadObject
	order     []ObjectID // Z-order, back to front
	nextID    ObjectID
	selected  map[ObjectID]bool
	listeners []Listener

	batchDepth int
	pending    []Event
}

// New returns an empty Document.
func New() *Document {
	return &Document{
		objects:  make(map[ObjectID]*CadObject),
		selected: make(map[ObjectID]bool),
	}
}

// Subscribe registers fn to receive every emitted Event.
func (d *Document) Subscribe(fn Listener) { d.listeners = append(d.listeners, fn) }

// Add inserts s with style into the document, assigning a fresh
// ObjectID and appending it to the top of Z-order.
func (d *Document) Add(s shape.Shape2D, style Style) ObjectID {
	d.nextID++
	id := d.nextID
	d.objects[id] = &CadObject{ID: id, Shape: s, Style: style}
	d.order = append(d.order, id)
	d.emit(Event{Signal: SignalObjectAdded, IDs: []ObjectID{id}})
	return id
}

// Remove deletes id from the document, from Z-order, from the
// selection, and clears any Parent references pointing at it.
func (d *Document) Remove(id ObjectID) {
	if _, ok := d.objects[id]; !ok {
		return
	}
	delete(d.objects, id)
	delete(d.selected, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	for _, obj := range d.objects {
		if obj.Parent != nil && *obj.Parent == id {
			obj.Parent = nil
		}
	}
	d.emit(Event{Signal: SignalObjectRemoved, IDs: []ObjectID{id}})
}

// Get returns the object for id and whether it exists.
func (d *Document) Get(id ObjectID) (*CadObject, bool) {
	obj, ok := d.objects[id]
	return obj, ok
}

// Objects returns every object in Z-order (back to front).
func (d *Document) Objects() []*CadObject {
	out := make([]*CadObject, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.objects[id])
	}
	return out
}

// SetShape replaces id's shape (the effect of a ViewModel setter or a
// solved constraint) and emits object_modified.
func (d *Document) SetShape(id ObjectID, s shape.Shape2D) {
	obj, ok := d.objects[id]
	if !ok {
		return
	}
	obj.Shape = s
	d.emit(Event{Signal: SignalObjectModified, IDs: []ObjectID{id}})
}

// SetStyle replaces id's style and emits object_modified.
func (d *Document) SetStyle(id ObjectID, style Style) {
	obj, ok := d.objects[id]
	if !ok {
		return
	}
	obj.Style = style
	d.emit(Event{Signal: SignalObjectModified, IDs: []ObjectID{id}})
}

// SetParent assigns id's parent group, or clears it when parent is nil.
func (d *Document) SetParent(id ObjectID, parent *ObjectID) {
	obj, ok := d.objects[id]
	if !ok {
		return
	}
	obj.Parent = parent
	d.emit(Event{Signal: SignalObjectModified, IDs: []ObjectID{id}})
}

// Children returns every object whose Parent is id, sorted by ID for
// determinism.
func (d *Document) Children(id ObjectID) []ObjectID {
	var out []ObjectID
	for oid, obj := range d.objects {
		if obj.Parent != nil && *obj.Parent == id {
			out = append(out, oid)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BatchEdit runs fn with signal emission suppressed until fn returns,
// then flushes every signal raised during fn exactly once, in the
// order it was raised — including when fn panics, so a batch move of N
// objects never leaves listeners without a final notification.
func (d *Document) BatchEdit(fn func() error) (err error) {
	d.batchDepth++
	defer func() {
		d.batchDepth--
		r := recover()
		if d.batchDepth == 0 {
			d.flushPending()
		}
		if r != nil {
			panic(r)
		}
	}()
	err = fn()
	return err
}

func (d *Document) emit(ev Event) {
	if d.batchDepth > 0 {
		d.pending = append(d.pending, ev)
		return
	}
	for _, l := range d.listeners {
		l(ev)
	}
}

func (d *Document) flushPending() {
	pending := d.pending
	d.pending = nil
	for _, ev := range pending {
		for _, l := range d.listeners {
			l(ev)
		}
	}
}
