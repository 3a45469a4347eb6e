// Package colormap maps scalar values onto colours.
package colormap

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Normalize maps [Min, Max] linearly onto [0, 1], clipping outside values.
// A degenerate range maps every value to 0.
type Normalize struct {
	Min, Max float64
}

func (n Normalize) Apply(v float64) float64 {
	if n.Max <= n.Min {
		return 0
	}
	t := (v - n.Min) / (n.Max - n.Min)
	return math.Max(0, math.Min(1, t))
}

// Diverging blends from Low through Mid to High in CIE-Lab space.
type Diverging struct {
	Name           string
	Low, Mid, High colorful.Color
}

// Coolwarm is the blue-grey-red diverging scale.
var Coolwarm = Diverging{
	Name: "coolwarm",
	Low:  colorful.Color{R: 0.2298, G: 0.2987, B: 0.7537},
	Mid:  colorful.Color{R: 0.8654, G: 0.8654, B: 0.8654},
	High: colorful.Color{R: 0.7057, G: 0.0156, B: 0.1502},
}

// At returns the colour at t, clipped to [0, 1].
func (d Diverging) At(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	var c colorful.Color
	if t < 0.5 {
		c = d.Low.BlendLab(d.Mid, t*2)
	} else {
		c = d.Mid.BlendLab(d.High, (t-0.5)*2)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Samples returns n evenly spaced colours from the scale.
func (d Diverging) Samples(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{d.At(0.5)}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = d.At(float64(i) / float64(n-1))
	}
	return out
}

// Map colours each value on the scale normalised to the min/max of values.
func (d Diverging) Map(values []float64) []color.RGBA {
	if len(values) == 0 {
		return nil
	}
	norm := Normalize{Min: values[0], Max: values[0]}
	for _, v := range values {
		norm.Min = math.Min(norm.Min, v)
		norm.Max = math.Max(norm.Max, v)
	}
	out := make([]color.RGBA, len(values))
	for i, v := range values {
		out[i] = d.At(norm.Apply(v))
	}
	return out
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
