package shape

import (
	"math"

	"github.com/latticecad/kernel/geom2d"
	"github.com/latticecad/kernel/geomerr"
)

// SpurGear is a procedurally generated involute spur gear outline,
// parameterized by tooth count, module, and pressure angle. Module,
// diametral pitch, and pitch diameter are three equivalent views of
// the same tooth-size parameter; the constructors accept whichever the
// caller has on hand and normalize to Module internally.
type SpurGear struct {
	Center               geom2d.Point2D
	NumTeeth             int
	Module               float64
	PressureAngleRadians float64
	Rotation             float64
}

func (g SpurGear) Kind() Kind { return KindSpurGear }

// minPressureAngleRadians and maxPressureAngleRadians bound
// PressureAngleRadians to [10°, 30°], the standard involute gear range.
const (
	minPressureAngleRadians = 10 * math.Pi / 180
	maxPressureAngleRadians = 30 * math.Pi / 180
)

// NewSpurGear constructs a SpurGear directly from its module.
func NewSpurGear(center geom2d.Point2D, numTeeth int, module, pressureAngleRadians, rotation float64) (SpurGear, error) {
	if numTeeth < 5 {
		return SpurGear{}, geomerr.Domain("shape: SpurGear needs at least 5 teeth, got %d", numTeeth)
	}
	if module <= 0 {
		return SpurGear{}, geomerr.Domain("shape: SpurGear module must be positive, got %g", module)
	}
	if pressureAngleRadians < minPressureAngleRadians-geom2d.Epsilon || pressureAngleRadians > maxPressureAngleRadians+geom2d.Epsilon {
		return SpurGear{}, geomerr.Domain(
			"shape: SpurGear pressure angle must be within [10°, 30°], got %g°",
			pressureAngleRadians*180/math.Pi,
		)
	}
	return SpurGear{Center: center, NumTeeth: numTeeth, Module: module, PressureAngleRadians: pressureAngleRadians, Rotation: rotation}, nil
}

// NewSpurGearFromPitchDiameter derives Module = pitchDiameter / numTeeth.
func NewSpurGearFromPitchDiameter(center geom2d.Point2D, numTeeth int, pitchDiameter, pressureAngleRadians, rotation float64) (SpurGear, error) {
	return NewSpurGear(center, numTeeth, pitchDiameter/float64(numTeeth), pressureAngleRadians, rotation)
}

// NewSpurGearFromDiametralPitch derives Module = 25.4 / diametralPitch
// (diametral pitch is teeth per inch of pitch diameter).
func NewSpurGearFromDiametralPitch(center geom2d.Point2D, numTeeth int, diametralPitch, pressureAngleRadians, rotation float64) (SpurGear, error) {
	if diametralPitch <= 0 {
		return SpurGear{}, geomerr.Domain("shape: SpurGear diametral pitch must be positive, got %g", diametralPitch)
	}
	return NewSpurGear(center, numTeeth, 25.4/diametralPitch, pressureAngleRadians, rotation)
}

// PitchDiameter returns Module * NumTeeth.
func (g SpurGear) PitchDiameter() float64 { return g.Module * float64(g.NumTeeth) }

// PitchRadius returns PitchDiameter / 2.
func (g SpurGear) PitchRadius() float64 { return g.PitchDiameter() / 2 }

// CircularPitch returns pi * Module, the pitch-circle arc length from
// one tooth to the next.
func (g SpurGear) CircularPitch() float64 { return math.Pi * g.Module }

// DiametralPitch returns 25.4 / Module.
func (g SpurGear) DiametralPitch() float64 { return 25.4 / g.Module }

// AddendumRadius is the outer radius of the tooth tips.
func (g SpurGear) AddendumRadius() float64 { return g.PitchRadius() + g.Module }

// DedendumRadius is the radius of the tooth roots.
func (g SpurGear) DedendumRadius() float64 { return g.PitchRadius() - 1.25*g.Module }

// BaseRadius is the radius the involute tooth flanks are generated from.
func (g SpurGear) BaseRadius() float64 {
	return g.PitchRadius() * math.Cos(g.PressureAngleRadians)
}

func (g SpurGear) Bounds() geom2d.Box {
	return Circle{Center: g.Center, Radius: g.AddendumRadius()}.Bounds()
}

// Contains tests against the dedendum (root) circle, a conservative
// inscribed approximation of the true tooth profile.
func (g SpurGear) Contains(p geom2d.Point2D, tol float64) bool {
	return Circle{Center: g.Center, Radius: g.DedendumRadius()}.Contains(p, tol)
}

func (g SpurGear) Translate(v geom2d.Point2D) Shape2D {
	return SpurGear{Center: g.Center.Translate(v), NumTeeth: g.NumTeeth, Module: g.Module, PressureAngleRadians: g.PressureAngleRadians, Rotation: g.Rotation}
}

func (g SpurGear) Rotate(angle float64, center geom2d.Point2D) Shape2D {
	return SpurGear{Center: g.Center.Rotate(angle, center), NumTeeth: g.NumTeeth, Module: g.Module, PressureAngleRadians: g.PressureAngleRadians, Rotation: g.Rotation + angle}
}

// Scale stays a SpurGear for uniform scaling, rescaling Module; a
// non-uniform scale upgrades to a Polygon of the traced path, since a
// sheared involute tooth profile has no parametric SpurGear form.
func (g SpurGear) Scale(sx, sy float64, center geom2d.Point2D) Shape2D {
	if math.Abs(sx-sy) <= geom2d.Epsilon {
		return SpurGear{Center: g.Center.Scale(sx, sy, center), NumTeeth: g.NumTeeth, Module: g.Module * math.Abs(sx), PressureAngleRadians: g.PressureAngleRadians, Rotation: g.Rotation}
	}
	return g.Transform(geom2d.Scaling(sx, sy, center))
}

func (g SpurGear) Transform(t geom2d.Transform2D) Shape2D {
	if isSimilarity(t) {
		tCenter := t.Apply(g.Center)
		axis := t.ApplyVector(geom2d.New(1, 0))
		return SpurGear{Center: tCenter, NumTeeth: g.NumTeeth, Module: g.Module * axis.Magnitude(), PressureAngleRadians: g.PressureAngleRadians, Rotation: g.Rotation + axis.AngleRadians()}
	}
	return Polygon{Points: t.ApplyMany(g.GetGearPathPoints())}
}

// Decompose supports SpurGear (itself), Polygon, and Region (both the
// traced gear path).
func (g SpurGear) Decompose(into []Kind, tol float64) ([]Shape2D, error) {
	switch {
	case containsKind(into, KindSpurGear):
		return []Shape2D{g}, nil
	case containsKind(into, KindPolygon):
		return []Shape2D{Polygon{Points: g.GetGearPathPoints()}}, nil
	case containsKind(into, KindRegion):
		return []Shape2D{Region{Perimeters: []Polygon{{Points: g.GetGearPathPoints()}}}}, nil
	default:
		return nil, unsupportedDecompose(KindSpurGear, into)
	}
}

// GetPitchCirclePoints returns a PitchCirclePolygonSegs-sided regular
// polygon approximating the pitch circle.
func (g SpurGear) GetPitchCirclePoints() []geom2d.Point2D {
	return regularPolygonPoints(g.Center, g.PitchRadius(), geom2d.PitchCirclePolygonSegs, g.Rotation)
}

// involuteAngle is the involute function inv(alpha) = tan(alpha) - alpha.
func involuteAngle(alpha float64) float64 { return math.Tan(alpha) - alpha }

// involutePoint returns the point on the involute of a circle of
// radius rb at roll-angle parameter t, in that circle's local frame.
func involutePoint(rb, t float64) geom2d.Point2D {
	return geom2d.New(rb*(math.Cos(t)+t*math.Sin(t)), rb*(math.Sin(t)-t*math.Cos(t)))
}

const gearInvoluteSamples = 8

// GetGearPathPoints traces the full tooth profile around the gear: for
// each tooth, the rising involute flank from the root/base radius to
// the addendum, then the falling flank back down, with adjacent teeth
// joined directly at the root.
func (g SpurGear) GetGearPathPoints() []geom2d.Point2D {
	rb := g.BaseRadius()
	ra := g.AddendumRadius()
	rd := g.DedendumRadius()
	rp := g.PitchRadius()

	startRadius := math.Max(rb, rd)
	tMax := 0.0
	if ra > rb {
		tMax = math.Sqrt(math.Pow(ra/rb, 2) - 1)
	}
	tStart := 0.0
	if startRadius > rb {
		tStart = math.Sqrt(math.Pow(startRadius/rb, 2) - 1)
	}

	toothHalfAngle := math.Pi / (2 * float64(g.NumTeeth))
	pitchRollAngle := involuteAngle(math.Acos(rb / rp))
	angularPitch := 2 * math.Pi / float64(g.NumTeeth)

	pts := make([]geom2d.Point2D, 0, g.NumTeeth*2*gearInvoluteSamples)
	for tooth := 0; tooth < g.NumTeeth; tooth++ {
		toothCenterAngle := g.Rotation + angularPitch*float64(tooth)

		for i := 0; i < gearInvoluteSamples; i++ {
			t := tStart + (tMax-tStart)*float64(i)/float64(gearInvoluteSamples-1)
			local := involutePoint(rb, t)
			theta := toothCenterAngle - toothHalfAngle - pitchRollAngle + local.AngleRadians()
			pts = append(pts, g.Center.Add(geom2d.FromPolar(local.Magnitude(), theta)))
		}
		for i := 0; i < gearInvoluteSamples; i++ {
			t := tMax - (tMax-tStart)*float64(i)/float64(gearInvoluteSamples-1)
			local := involutePoint(rb, t)
			theta := toothCenterAngle + toothHalfAngle + pitchRollAngle - local.AngleRadians()
			pts = append(pts, g.Center.Add(geom2d.FromPolar(local.Magnitude(), theta)))
		}
	}
	return pts
}
