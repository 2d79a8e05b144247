// Package palette implements the colour handling used by the particles:
// float RGBA in [0,1], HSV conversion and saturation drift.
package palette

import (
	"image/color"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is a straight-alpha colour with every channel in [0,1].
// It implements color.Color so it can be handed to any drawing call.
type RGBA struct {
	R, G, B, A float64
}

// FromHSV converts HSV (hue: 0-360, saturation: 0-1, value: 0-1) to an
// opaque colour.
func FromHSV(h, s, v float64) RGBA {
	c := colorful.Hsv(h, Clamp01(s), Clamp01(v)).Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}
}

// Random returns an opaque colour of random hue with the given saturation
// and value.
func Random(rng *rand.Rand, s, v float64) RGBA {
	return FromHSV(rng.Float64()*360, s, v)
}

// HSV returns hue (0-360), saturation and value of c.
func (c RGBA) HSV() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
}

func (c RGBA) Saturation() float64 {
	_, s, _ := c.HSV()
	return s
}

// WithSaturation returns c with its HSV saturation replaced, keeping hue,
// value and alpha.
func (c RGBA) WithSaturation(s float64) RGBA {
	h, _, v := c.HSV()
	out := FromHSV(h, s, v)
	out.A = c.A
	return out
}

// Saturate nudges the saturation of c by delta, clamped to [0,1].
func (c RGBA) Saturate(delta float64) RGBA {
	return c.WithSaturation(Clamp01(c.Saturation() + delta))
}

// Blend mixes c toward o by t in RGB space, alpha included.
func (c RGBA) Blend(o RGBA, t float64) RGBA {
	t = Clamp01(t)
	mixed := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t).Clamped()
	return RGBA{R: mixed.R, G: mixed.G, B: mixed.B, A: c.A + (o.A-c.A)*t}
}

func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = Clamp01(a)
	return c
}

// RGBA implements color.Color (alpha-premultiplied, 16 bit).
func (c RGBA) RGBA() (r, g, b, a uint32) {
	alpha := Clamp01(c.A)
	r = uint32(Clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(Clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(Clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

// NRGBA converts c to the 8 bit non-premultiplied form.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp01(c.R)*255 + 0.5),
		G: uint8(Clamp01(c.G)*255 + 0.5),
		B: uint8(Clamp01(c.B)*255 + 0.5),
		A: uint8(Clamp01(c.A)*255 + 0.5),
	}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates between two arbitrary colours in non-premultiplied
// 8 bit space.
func Lerp(a, b color.Color, t float64) color.NRGBA {
	t = Clamp01(t)
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(ca.R, cb.R), G: mix(ca.G, cb.G), B: mix(ca.B, cb.B), A: mix(ca.A, cb.A)}
}
