package viewmodel

import (
	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
	"github.com/latticecad/kernel/shape"
)

// LineViewModel is the presentation bridge for a CadObject whose shape
// is a shape.Line2D: "start" and "end" control points, and a "length"
// control datum derived from them.
type LineViewModel struct {
	base
}

// NewLineViewModel wraps obj, whose shape must be a shape.Line2D.
func NewLineViewModel(doc *document.Document, obj *document.CadObject) *LineViewModel {
	return &LineViewModel{base{doc: doc, obj: obj}}
}

func (vm *LineViewModel) line() shape.Line2D { return vm.obj.Shape.(shape.Line2D) }

// Start returns the line's current start point.
func (vm *LineViewModel) Start() geom2d.Point2D { return vm.line().Start }

// End returns the line's current end point.
func (vm *LineViewModel) End() geom2d.Point2D { return vm.line().End }

// Length returns the line's current length.
func (vm *LineViewModel) Length() float64 { return vm.line().Length() }

// SetStart moves the start point, emitting start_changed and
// object_modified exactly once, only if it actually changed.
func (vm *LineViewModel) SetStart(p geom2d.Point2D) error {
	cur := vm.line()
	if cur.Start.Equals(p) {
		return nil
	}
	vm.setShape(shape.Line2D{Start: p, End: cur.End})
	vm.emitChange(SignalStartChanged, p)
	return nil
}

// SetEnd moves the end point, emitting end_changed and object_modified
// exactly once, only if it actually changed.
func (vm *LineViewModel) SetEnd(p geom2d.Point2D) error {
	cur := vm.line()
	if cur.End.Equals(p) {
		return nil
	}
	vm.setShape(shape.Line2D{Start: cur.Start, End: p})
	vm.emitChange(SignalEndChanged, p)
	return nil
}

// SetLength keeps Start fixed and moves End along the line's current
// direction to reach length. A degenerate (zero-length) line falls
// back to the +X direction. Negative lengths are rejected.
func (vm *LineViewModel) SetLength(length float64) error {
	if length < 0 {
		return geomerr.OutOfRange("viewmodel: line length must be non-negative, got %g", length)
	}
	cur := vm.line()
	dir := cur.Direction()
	if dir.MagnitudeSquared() == 0 {
		dir = geom2d.Point2D{X: 1, Y: 0}
	}
	return vm.SetEnd(cur.Start.Add(dir.MulScalar(length)))
}

// Translate moves both endpoints by offset, emitting object_moved and
// object_modified.
func (vm *LineViewModel) Translate(offset geom2d.Point2D) {
	moved := vm.line().Translate(offset).(shape.Line2D)
	vm.setShape(moved)
	vm.emitChange(SignalObjectMoved, offset)
}

// ShowControls makes the control-point set visible, draws it, and
// returns it in the stable order [start, end].
func (vm *LineViewModel) ShowControls(surface RenderSurface) []ControlPoint {
	vm.controlsVisible = true
	return vm.UpdateControls(surface)
}

// HideControls hides the control-point set.
func (vm *LineViewModel) HideControls(RenderSurface) { vm.controlsVisible = false }

// UpdateControls redraws the control-point set if currently shown,
// returning nil otherwise.
func (vm *LineViewModel) UpdateControls(surface RenderSurface) []ControlPoint {
	if !vm.controlsVisible {
		return nil
	}
	pts := vm.controlPoints()
	surface.Draw(controlPointMarkers(pts))
	vm.emitOnly(SignalControlPointsUpdated, nil)
	return pts
}

func (vm *LineViewModel) controlPoints() []ControlPoint {
	l := vm.line()
	return []ControlPoint{
		{Name: "start", Position: l.Start, Set: vm.SetStart},
		{Name: "end", Position: l.End, Set: vm.SetEnd},
	}
}

// ControlDatums returns the "length" dimensional datum, bounded to
// non-negative values.
func (vm *LineViewModel) ControlDatums(unit document.Unit) []ControlDatum {
	zero := 0.0
	return []ControlDatum{
		{
			Name:      "length",
			Value:     vm.Length(),
			Format:    "%.3f",
			Precision: 3,
			HasUnit:   true,
			Unit:      unit,
			Min:       &zero,
			Set:       boundedSetter(&zero, nil, vm.SetLength),
		},
	}
}
