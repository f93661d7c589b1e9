package viewmodel

import (
	"github.com/latticecad/kernel/document"
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
	"github.com/latticecad/kernel/shape"
)

// CircleViewModel is the presentation bridge for a CadObject whose
// shape is a shape.Circle: a "center" control point, a "radius"
// control point and matching control datum, and the center_changed /
// radius_changed signals named in spec.md §4.11.
type CircleViewModel struct {
	base
}

// NewCircleViewModel wraps obj, whose shape must be a shape.Circle.
func NewCircleViewModel(doc *document.Document, obj *document.CadObject) *CircleViewModel {
	return &CircleViewModel{base{doc: doc, obj: obj}}
}

func (vm *CircleViewModel) circle() shape.Circle { return vm.obj.Shape.(shape.Circle) }

// Center returns the circle's current center.
func (vm *CircleViewModel) Center() geom2d.Point2D { return vm.circle().Center }

// Radius returns the circle's current radius.
func (vm *CircleViewModel) Radius() float64 { return vm.circle().Radius }

// SetCenter moves the circle, emitting center_changed and
// object_modified exactly once, only if center actually changed.
func (vm *CircleViewModel) SetCenter(center geom2d.Point2D) error {
	cur := vm.circle()
	if cur.Center.Equals(center) {
		return nil
	}
	vm.setShape(shape.Circle{Center: center, Radius: cur.Radius})
	vm.emitChange(SignalCenterChanged, center)
	return nil
}

// SetRadius resizes the circle, emitting radius_changed and
// object_modified exactly once, only if radius actually changed.
// Negative radii are rejected without mutating the shape.
func (vm *CircleViewModel) SetRadius(radius float64) error {
	if radius < 0 {
		return geomerr.OutOfRange("viewmodel: circle radius must be non-negative, got %g", radius)
	}
	cur := vm.circle()
	if cur.Radius == radius {
		return nil
	}
	vm.setShape(shape.Circle{Center: cur.Center, Radius: radius})
	vm.emitChange(SignalRadiusChanged, radius)
	return nil
}

// Translate moves the whole circle by offset, emitting object_moved
// and object_modified — the path a marquee drag takes, as opposed to
// dragging the center control point through SetCenter.
func (vm *CircleViewModel) Translate(offset geom2d.Point2D) {
	moved := vm.circle().Translate(offset).(shape.Circle)
	vm.setShape(moved)
	vm.emitChange(SignalObjectMoved, offset)
}

// ShowControls makes the control-point set visible, draws it, and
// returns it in the stable order [center, radius].
func (vm *CircleViewModel) ShowControls(surface RenderSurface) []ControlPoint {
	vm.controlsVisible = true
	return vm.UpdateControls(surface)
}

// HideControls hides the control-point set.
func (vm *CircleViewModel) HideControls(RenderSurface) { vm.controlsVisible = false }

// UpdateControls redraws the control-point set if currently shown,
// returning nil otherwise.
func (vm *CircleViewModel) UpdateControls(surface RenderSurface) []ControlPoint {
	if !vm.controlsVisible {
		return nil
	}
	pts := vm.controlPoints()
	surface.Draw(controlPointMarkers(pts))
	vm.emitOnly(SignalControlPointsUpdated, nil)
	return pts
}

func (vm *CircleViewModel) controlPoints() []ControlPoint {
	c := vm.circle()
	rim := c.Center.Add(geom2d.Point2D{X: c.Radius, Y: 0})
	return []ControlPoint{
		{Name: "center", Position: c.Center, Set: vm.SetCenter},
		{
			Name:     "radius",
			Position: rim,
			Set: func(p geom2d.Point2D) error {
				return vm.SetRadius(p.Sub(vm.circle().Center).Magnitude())
			},
		},
	}
}

// ControlDatums returns the "radius" dimensional datum, bounded to
// non-negative values.
func (vm *CircleViewModel) ControlDatums(unit document.Unit) []ControlDatum {
	zero := 0.0
	radius := vm.Radius()
	return []ControlDatum{
		{
			Name:      "radius",
			Value:     radius,
			Format:    "%.3f",
			Precision: 3,
			HasUnit:   true,
			Unit:      unit,
			Min:       &zero,
			Set:       boundedSetter(&zero, nil, vm.SetRadius),
		},
	}
}
