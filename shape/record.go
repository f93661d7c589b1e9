package shape

import (
	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// Record is the flat, serializer-friendly representation of any
// Shape2D. Only the fields belonging to Kind are populated; the rest
// stay at their zero value. This is the one seam package shape exposes
// to an external persistence format — everything else about encoding
// (YAML, compression, file layout) is package format's concern.
type Record struct {
	Kind Kind `yaml:"kind"`

	P     geom2d.Point2D `yaml:"p,omitempty"`
	Start geom2d.Point2D `yaml:"start,omitempty"`
	End   geom2d.Point2D `yaml:"end,omitempty"`

	Points []geom2d.Point2D `yaml:"points,omitempty"`

	Center     geom2d.Point2D `yaml:"center,omitempty"`
	Radius     float64        `yaml:"radius,omitempty"`
	StartAngle float64        `yaml:"start_angle,omitempty"`
	SpanAngle  float64        `yaml:"span_angle,omitempty"`

	Left   float64 `yaml:"left,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	MajorAxis float64 `yaml:"major_axis,omitempty"`
	MinorAxis float64 `yaml:"minor_axis,omitempty"`
	Rotation  float64 `yaml:"rotation,omitempty"`

	NumTeeth             int     `yaml:"num_teeth,omitempty"`
	Module               float64 `yaml:"module,omitempty"`
	PressureAngleRadians float64 `yaml:"pressure_angle_radians,omitempty"`

	Perimeters [][]geom2d.Point2D `yaml:"perimeters,omitempty"`
	Holes      [][]geom2d.Point2D `yaml:"holes,omitempty"`
}

// ToRecord flattens s into its wire Record.
func ToRecord(s Shape2D) (Record, error) {
	switch v := s.(type) {
	case Point:
		return Record{Kind: KindPoint, P: v.P}, nil
	case Line2D:
		return Record{Kind: KindLine, Start: v.Start, End: v.End}, nil
	case PolyLine2D:
		return Record{Kind: KindPolyLine, Points: v.Points}, nil
	case Polygon:
		return Record{Kind: KindPolygon, Points: v.Points}, nil
	case Arc:
		return Record{
			Kind: KindArc, Center: v.Center, Radius: v.Radius,
			StartAngle: v.StartAngle, SpanAngle: v.SpanAngle,
		}, nil
	case Rect:
		return Record{
			Kind: KindRect, Left: v.Left, Bottom: v.Bottom,
			Width: v.Width, Height: v.Height,
		}, nil
	case Circle:
		return Record{Kind: KindCircle, Center: v.Center, Radius: v.Radius}, nil
	case Ellipse:
		return Record{
			Kind: KindEllipse, Center: v.Center,
			MajorAxis: v.MajorAxis, MinorAxis: v.MinorAxis, Rotation: v.Rotation,
		}, nil
	case BezierPath:
		return Record{Kind: KindBezier, Points: v.ControlPoints}, nil
	case Region:
		perims := make([][]geom2d.Point2D, len(v.Perimeters))
		for i, p := range v.Perimeters {
			perims[i] = p.Points
		}
		holes := make([][]geom2d.Point2D, len(v.Holes))
		for i, h := range v.Holes {
			holes[i] = h.Points
		}
		return Record{Kind: KindRegion, Perimeters: perims, Holes: holes}, nil
	case SpurGear:
		return Record{
			Kind: KindSpurGear, Center: v.Center, NumTeeth: v.NumTeeth,
			Module: v.Module, PressureAngleRadians: v.PressureAngleRadians,
			Rotation: v.Rotation,
		}, nil
	default:
		return Record{}, geomerr.Domain("shape: ToRecord does not know shape kind %v", s.Kind())
	}
}

// FromRecord reconstructs the Shape2D r describes, running it through
// the same validating constructors direct construction would use.
func FromRecord(r Record) (Shape2D, error) {
	switch r.Kind {
	case KindPoint:
		return Point{P: r.P}, nil
	case KindLine:
		return NewLine(r.Start, r.End), nil
	case KindPolyLine:
		return NewPolyLine(r.Points)
	case KindPolygon:
		return NewPolygon(r.Points)
	case KindArc:
		return NewArc(r.Center, r.Radius, r.StartAngle, r.SpanAngle)
	case KindRect:
		return NewRect(r.Left, r.Bottom, r.Width, r.Height)
	case KindCircle:
		return NewCircle(r.Center, r.Radius)
	case KindEllipse:
		return NewEllipse(r.Center, r.MajorAxis, r.MinorAxis, r.Rotation)
	case KindBezier:
		return NewBezierPath(r.Points)
	case KindRegion:
		perims := make([]Polygon, len(r.Perimeters))
		for i, pts := range r.Perimeters {
			p, err := NewPolygon(pts)
			if err != nil {
				return nil, err
			}
			perims[i] = p
		}
		holes := make([]Polygon, len(r.Holes))
		for i, pts := range r.Holes {
			h, err := NewPolygon(pts)
			if err != nil {
				return nil, err
			}
			holes[i] = h
		}
		return Region{Perimeters: perims, Holes: holes}, nil
	case KindSpurGear:
		return NewSpurGear(r.Center, r.NumTeeth, r.Module, r.PressureAngleRadians, r.Rotation)
	default:
		return nil, geomerr.Domain("shape: FromRecord does not know shape kind %v", r.Kind)
	}
}
