// Package palette generates default style colors for layers and
// objects. It implements HSV-based generation, adapted from the
// teacher's shimmer-effect palette to a deterministic, creation-order
// keyed scheme suitable for a document's default styling.
package palette

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenAngle is the hue step (in degrees) that spaces successive
// sequential colors maximally apart on the color wheel.
const goldenAngle = 137.50776405003785

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SequentialColor returns a stable, visually-distinct color for the
// nth layer or object created, by stepping hue around the wheel by the
// golden angle so no small run of indices clusters in hue.
func SequentialColor(index int) color.RGBA {
	hue := float64(index%360000) * goldenAngle
	for hue >= 360 {
		hue -= 360
	}
	c := colorful.Hsv(hue, 0.65, 0.85)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// RandomColor draws one HSV-generated color from r, in the teacher's
// own generation style, for callers that want a non-deterministic
// default (e.g. a "randomize layer colors" command).
func RandomColor(r *rand.Rand) color.RGBA {
	hue := r.Float64() * 360
	sat := clamp(r.Float64()*0.5+0.25, 0, 1)
	val := clamp(r.Float64()*0.5+0.25, 0, 1)
	c := colorful.Hsv(hue, sat, val)
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}

// Shimmered applies a brightness jitter to c, used to highlight a
// hovered or recently-modified object without changing its hue.
func Shimmered(c color.RGBA, amount float64, r *rand.Rand) color.RGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, v := cf.Hsv()
	v = clamp(v+(r.Float64()-0.5)*amount, 0, 1)
	out := colorful.Hsv(h, s, v)
	red, green, blue := out.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: c.A}
}
