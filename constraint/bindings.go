package constraint

import (
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/shape"
)

// LineBinding exposes a Line2D's two endpoints as "start" and "end".
type LineBinding struct {
	start, end Handle
}

// BindLine declares l's endpoints in bag and returns the binding.
func BindLine(bag VarBag, l shape.Line2D) *LineBinding {
	return &LineBinding{
		start: bag.DeclarePoint("start", l.Start, false),
		end:   bag.DeclarePoint("end", l.End, false),
	}
}

func (b *LineBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{{Name: "start", Handle: b.start}, {Name: "end", Handle: b.end}}
}

// UpdateConstrainablesBeforeSolving pushes current's endpoints into bag,
// overwriting whatever the solver last saw (e.g. after an edit made
// outside the solver loop).
func (b *LineBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.Line2D) {
	bag.SetPointValue(b.start, current.Start)
	bag.SetPointValue(b.end, current.End)
}

// UpdateFromSolvedConstraints reads the solved endpoint values back out
// of bag and returns the resulting Line2D.
func (b *LineBinding) UpdateFromSolvedConstraints(bag VarBag) shape.Line2D {
	return shape.Line2D{Start: bag.PointValue(b.start), End: bag.PointValue(b.end)}
}

// CircleBinding exposes a Circle's "center" point and "radius" scalar.
type CircleBinding struct {
	center Handle
	radius Handle
}

func BindCircle(bag VarBag, c shape.Circle) *CircleBinding {
	return &CircleBinding{
		center: bag.DeclarePoint("center", c.Center, false),
		radius: bag.DeclareScalar("radius", c.Radius, false),
	}
}

func (b *CircleBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{{Name: "center", Handle: b.center}, {Name: "radius", Handle: b.radius}}
}

func (b *CircleBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.Circle) {
	bag.SetPointValue(b.center, current.Center)
	bag.SetScalarValue(b.radius, current.Radius)
}

func (b *CircleBinding) UpdateFromSolvedConstraints(bag VarBag) (shape.Circle, error) {
	return shape.NewCircle(bag.PointValue(b.center), bag.ScalarValue(b.radius))
}

// EllipseBinding exposes an Ellipse's "center" point and "major_axis",
// "minor_axis", "rotation" scalars.
type EllipseBinding struct {
	center               Handle
	majorAxis, minorAxis Handle
	rotation             Handle
}

func BindEllipse(bag VarBag, e shape.Ellipse) *EllipseBinding {
	return &EllipseBinding{
		center:    bag.DeclarePoint("center", e.Center, false),
		majorAxis: bag.DeclareScalar("major_axis", e.MajorAxis, false),
		minorAxis: bag.DeclareScalar("minor_axis", e.MinorAxis, false),
		rotation:  bag.DeclareScalar("rotation", e.Rotation, false),
	}
}

func (b *EllipseBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{
		{Name: "center", Handle: b.center},
		{Name: "major_axis", Handle: b.majorAxis},
		{Name: "minor_axis", Handle: b.minorAxis},
		{Name: "rotation", Handle: b.rotation},
	}
}

func (b *EllipseBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.Ellipse) {
	bag.SetPointValue(b.center, current.Center)
	bag.SetScalarValue(b.majorAxis, current.MajorAxis)
	bag.SetScalarValue(b.minorAxis, current.MinorAxis)
	bag.SetScalarValue(b.rotation, current.Rotation)
}

func (b *EllipseBinding) UpdateFromSolvedConstraints(bag VarBag) (shape.Ellipse, error) {
	return shape.NewEllipse(bag.PointValue(b.center), bag.ScalarValue(b.majorAxis), bag.ScalarValue(b.minorAxis), bag.ScalarValue(b.rotation))
}

// ArcBinding exposes an Arc's "center" point and "radius", "start_angle",
// "span_angle" scalars.
type ArcBinding struct {
	center                        Handle
	radius, startAngle, spanAngle Handle
}

func BindArc(bag VarBag, a shape.Arc) *ArcBinding {
	return &ArcBinding{
		center:     bag.DeclarePoint("center", a.Center, false),
		radius:     bag.DeclareScalar("radius", a.Radius, false),
		startAngle: bag.DeclareScalar("start_angle", a.StartAngle, false),
		spanAngle:  bag.DeclareScalar("span_angle", a.SpanAngle, false),
	}
}

func (b *ArcBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{
		{Name: "center", Handle: b.center},
		{Name: "radius", Handle: b.radius},
		{Name: "start_angle", Handle: b.startAngle},
		{Name: "span_angle", Handle: b.spanAngle},
	}
}

func (b *ArcBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.Arc) {
	bag.SetPointValue(b.center, current.Center)
	bag.SetScalarValue(b.radius, current.Radius)
	bag.SetScalarValue(b.startAngle, current.StartAngle)
	bag.SetScalarValue(b.spanAngle, current.SpanAngle)
}

func (b *ArcBinding) UpdateFromSolvedConstraints(bag VarBag) (shape.Arc, error) {
	return shape.NewArc(bag.PointValue(b.center), bag.ScalarValue(b.radius), bag.ScalarValue(b.startAngle), bag.ScalarValue(b.spanAngle))
}

// RectBinding exposes a Rect's corner as "position" and its size as
// "width"/"height" scalars, matching BelfryCAD's rectangle-drag handles.
type RectBinding struct {
	position      Handle
	width, height Handle
}

func BindRect(bag VarBag, r shape.Rect) *RectBinding {
	return &RectBinding{
		position: bag.DeclarePoint("position", geom2d.New(r.Left, r.Bottom), false),
		width:    bag.DeclareScalar("width", r.Width, false),
		height:   bag.DeclareScalar("height", r.Height, false),
	}
}

func (b *RectBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{
		{Name: "position", Handle: b.position},
		{Name: "width", Handle: b.width},
		{Name: "height", Handle: b.height},
	}
}

func (b *RectBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.Rect) {
	bag.SetPointValue(b.position, geom2d.New(current.Left, current.Bottom))
	bag.SetScalarValue(b.width, current.Width)
	bag.SetScalarValue(b.height, current.Height)
}

func (b *RectBinding) UpdateFromSolvedConstraints(bag VarBag) (shape.Rect, error) {
	pos := bag.PointValue(b.position)
	return shape.NewRect(pos.X, pos.Y, bag.ScalarValue(b.width), bag.ScalarValue(b.height))
}

// VertexChainBinding exposes the vertices of a Polygon or PolyLine as
// "point_0".."point_N-1", the naming scheme BezierPath also uses for
// its control points.
type VertexChainBinding struct {
	points []Handle
}

func bindVertexChain(bag VarBag, points []geom2d.Point2D) *VertexChainBinding {
	handles := make([]Handle, len(points))
	for i, p := range points {
		handles[i] = bag.DeclarePoint(vertexHandleName(i), p, false)
	}
	return &VertexChainBinding{points: handles}
}

func vertexHandleName(i int) string {
	return "point_" + itoa(i)
}

// itoa avoids pulling in strconv for a single non-negative int; kept
// local since it is only ever called with small vertex indices.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[i:])
}

func (b *VertexChainBinding) GetConstrainables() []NamedHandle {
	out := make([]NamedHandle, len(b.points))
	for i, h := range b.points {
		out[i] = NamedHandle{Name: vertexHandleName(i), Handle: h}
	}
	return out
}

func (b *VertexChainBinding) pointValues(bag VarBag) []geom2d.Point2D {
	out := make([]geom2d.Point2D, len(b.points))
	for i, h := range b.points {
		out[i] = bag.PointValue(h)
	}
	return out
}

func (b *VertexChainBinding) setPointValues(bag VarBag, points []geom2d.Point2D) {
	for i, h := range b.points {
		if i < len(points) {
			bag.SetPointValue(h, points[i])
		}
	}
}

// BindPolygon declares p's vertices as point_0..point_N-1.
func BindPolygon(bag VarBag, p shape.Polygon) *VertexChainBinding { return bindVertexChain(bag, p.Points) }

func PolygonUpdateBeforeSolving(b *VertexChainBinding, bag VarBag, current shape.Polygon) {
	b.setPointValues(bag, current.Points)
}

func PolygonUpdateFromSolved(b *VertexChainBinding, bag VarBag) (shape.Polygon, error) {
	return shape.NewPolygon(b.pointValues(bag))
}

// BindPolyLine declares pl's vertices as point_0..point_N-1.
func BindPolyLine(bag VarBag, pl shape.PolyLine2D) *VertexChainBinding {
	return bindVertexChain(bag, pl.Points)
}

func PolyLineUpdateBeforeSolving(b *VertexChainBinding, bag VarBag, current shape.PolyLine2D) {
	b.setPointValues(bag, current.Points)
}

func PolyLineUpdateFromSolved(b *VertexChainBinding, bag VarBag) (shape.PolyLine2D, error) {
	return shape.NewPolyLine(b.pointValues(bag))
}

// BindBezierPath declares bp's control points as point_0..point_N-1.
func BindBezierPath(bag VarBag, bp shape.BezierPath) *VertexChainBinding {
	return bindVertexChain(bag, bp.ControlPoints)
}

func BezierPathUpdateBeforeSolving(b *VertexChainBinding, bag VarBag, current shape.BezierPath) {
	b.setPointValues(bag, current.ControlPoints)
}

func BezierPathUpdateFromSolved(b *VertexChainBinding, bag VarBag) (shape.BezierPath, error) {
	return shape.NewBezierPath(b.pointValues(bag))
}

// SpurGearBinding exposes a SpurGear's "center" point and "module",
// "pressure_angle", "rotation" scalars. NumTeeth is intentionally not
// a constrainable: the solver works in continuous variables and tooth
// count is a discrete structural property set at construction time.
type SpurGearBinding struct {
	center                          Handle
	module, pressureAngle, rotation Handle
}

func BindSpurGear(bag VarBag, g shape.SpurGear) *SpurGearBinding {
	return &SpurGearBinding{
		center:        bag.DeclarePoint("center", g.Center, false),
		module:        bag.DeclareScalar("module", g.Module, false),
		pressureAngle: bag.DeclareScalar("pressure_angle", g.PressureAngleRadians, false),
		rotation:      bag.DeclareScalar("rotation", g.Rotation, false),
	}
}

func (b *SpurGearBinding) GetConstrainables() []NamedHandle {
	return []NamedHandle{
		{Name: "center", Handle: b.center},
		{Name: "module", Handle: b.module},
		{Name: "pressure_angle", Handle: b.pressureAngle},
		{Name: "rotation", Handle: b.rotation},
	}
}

func (b *SpurGearBinding) UpdateConstrainablesBeforeSolving(bag VarBag, current shape.SpurGear) {
	bag.SetPointValue(b.center, current.Center)
	bag.SetScalarValue(b.module, current.Module)
	bag.SetScalarValue(b.pressureAngle, current.PressureAngleRadians)
	bag.SetScalarValue(b.rotation, current.Rotation)
}

func (b *SpurGearBinding) UpdateFromSolvedConstraints(bag VarBag, numTeeth int) (shape.SpurGear, error) {
	return shape.NewSpurGear(bag.PointValue(b.center), numTeeth, bag.ScalarValue(b.module), bag.ScalarValue(b.pressureAngle), bag.ScalarValue(b.rotation))
}
