// Package viewmodel implements the presentation bridge: one ViewModel
// wraps a single CadObject, translating its mutable shape parameters
// into change-guarded properties, control points, control datums, and
// render-surface lifecycle calls, per spec.md §4.11.
//
// A ViewModel holds a read-only reference to its CadObject; it never
// stores shape state of its own, and it mutates the shape only by
// calling back into the owning Document, so a ViewModel never becomes
// the thing a CadObject needs to reference.
package viewmodel

import (
	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
	"github.com/latticecad/kernel/render"
	"github.com/latticecad/kernel/shape"
)

// Signal names a notification a ViewModel emits.
type Signal string

const (
	SignalObjectMoved          Signal = "object_moved"
	SignalObjectSelected       Signal = "object_selected"
	SignalObjectModified       Signal = "object_modified"
	SignalControlPointsUpdated Signal = "control_points_updated"
	SignalCenterChanged        Signal = "center_changed"
	SignalRadiusChanged        Signal = "radius_changed"
	SignalStartChanged         Signal = "start_changed"
	SignalEndChanged           Signal = "end_changed"
)

// Event is one emitted signal with its payload (an offset, a new
// value, a selection flag — shape of Payload depends on Signal).
type Event struct {
	Signal  Signal
	Payload any
}

// Listener receives ViewModel events.
type Listener func(Event)

// ControlPoint is a positional UI handle tied to one named point on a
// shape. Calling Set re-enters the owning ViewModel's guarded setter,
// so dragging a handle and a programmatic edit share one path.
type ControlPoint struct {
	Name     string
	Position geom2d.Point2D
	Set      func(geom2d.Point2D) error
}

// ControlDatum is a dimensional UI handle (radius, length, angle,
// tooth count) tied to one named scalar on a shape.
type ControlDatum struct {
	Name      string
	Value     float64
	Format    string
	Precision int
	HasUnit   bool
	Unit      document.Unit
	Min, Max  *float64
	Set       func(float64) error
}

// RenderSurface is the scene surface a ViewModel draws onto; the
// kernel defines what gets drawn, never how.
type RenderSurface interface {
	Draw(prims []render.Primitive)
}

// base holds the plumbing shared by every per-kind ViewModel: document
// access, listener dispatch, and decoration/control visibility state.
type base struct {
	doc       *document.Document
	obj       *document.CadObject
	listeners []Listener

	decorationsVisible bool
	controlsVisible    bool
}

// Subscribe registers fn to receive this ViewModel's events.
func (b *base) Subscribe(fn Listener) { b.listeners = append(b.listeners, fn) }

// emitOnly fires sig alone, for lifecycle/selection signals that are
// not tied to the setter change-guard contract.
func (b *base) emitOnly(sig Signal, payload any) {
	for _, l := range b.listeners {
		l(Event{Signal: sig, Payload: payload})
	}
}

// emitChange fires sig followed by object_modified, the pair every
// guarded setter emits exactly once when (and only when) a value
// actually changes.
func (b *base) emitChange(sig Signal, payload any) {
	b.emitOnly(sig, payload)
	b.emitOnly(SignalObjectModified, nil)
}

// SetSelected reports a selection-state change to listeners; selection
// itself is owned by Document, this just relays it to this object's UI.
func (b *base) SetSelected(selected bool) { b.emitOnly(SignalObjectSelected, selected) }

// UpdateView draws the shape's own appearance.
func (b *base) UpdateView(surface RenderSurface) error {
	prims, err := render.Emit(b.obj.Shape, render.RoleView)
	if err != nil {
		return err
	}
	surface.Draw(render.WithColor(prims, b.obj.Style.Color))
	return nil
}

// ShowDecorations makes non-editable decorations (e.g. the selection
// outline) visible and draws them immediately.
func (b *base) ShowDecorations(surface RenderSurface) {
	b.decorationsVisible = true
	b.UpdateDecorations(surface)
}

// HideDecorations hides decorations; a later UpdateDecorations call is
// a no-op until Show is called again.
func (b *base) HideDecorations(RenderSurface) { b.decorationsVisible = false }

// UpdateDecorations redraws decorations if currently shown.
func (b *base) UpdateDecorations(surface RenderSurface) {
	if !b.decorationsVisible {
		return
	}
	surface.Draw([]render.Primitive{render.EmitSelectionOutline(b.obj.Shape.Bounds())})
}

// boundedSetter wraps set so values outside [min, max] are rejected
// with OutOfRange and never reach set, leaving the shape unmutated.
func boundedSetter(min, max *float64, set func(float64) error) func(float64) error {
	return func(v float64) error {
		if min != nil && v < *min {
			return geomerr.OutOfRange("viewmodel: value %g is below the minimum %g", v, *min)
		}
		if max != nil && v > *max {
			return geomerr.OutOfRange("viewmodel: value %g is above the maximum %g", v, *max)
		}
		return set(v)
	}
}

// ControlsVisible implements the unified selection rule of spec.md
// §4.11: controls for id are visible iff id is the current selection's
// sole member.
func ControlsVisible(doc *document.Document, id document.ObjectID) bool {
	sole, ok := doc.SoleSelected()
	return ok && sole == id
}

// setShape round-trips s through the owning document so every
// ViewModel mutation path, regardless of kind, funnels through the
// same CadObject.Shape write and object_modified emission at the
// document layer as a constraint-solve write would.
func (b *base) setShape(s shape.Shape2D) { b.doc.SetShape(b.obj.ID, s) }

// controlPointMarkers renders each control point as a selection-style
// dot primitive so a RenderSurface has something to draw without the
// ViewModel depending on any particular UI toolkit.
func controlPointMarkers(pts []ControlPoint) []render.Primitive {
	out := make([]render.Primitive, 0, len(pts))
	for _, p := range pts {
		out = append(out, render.EmitSelectionOutline(geom2d.Box{Min: p.Position, Max: p.Position}))
	}
	return out
}
