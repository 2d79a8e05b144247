package palette

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHSVPrimaries(t *testing.T) {
	tests := []struct {
		h    float64
		want RGBA
	}{
		{0, RGBA{1, 0, 0, 1}},
		{120, RGBA{0, 1, 0, 1}},
		{240, RGBA{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		got := FromHSV(tt.h, 1, 1)
		assert.InDelta(t, tt.want.R, got.R, 1e-9)
		assert.InDelta(t, tt.want.G, got.G, 1e-9)
		assert.InDelta(t, tt.want.B, got.B, 1e-9)
		assert.Equal(t, 1.0, got.A)
	}
}

func TestSaturateCapsAtOne(t *testing.T) {
	c := FromHSV(200, 0.5, 0.9).WithAlpha(0.4)

	c = c.Saturate(0.1)
	assert.InDelta(t, 0.6, c.Saturation(), 1e-9)
	assert.Equal(t, 0.4, c.A)

	for i := 0; i < 10; i++ {
		c = c.Saturate(0.1)
	}
	assert.InDelta(t, 1.0, c.Saturation(), 1e-9)

	h, _, v := c.HSV()
	assert.InDelta(t, 200, h, 1e-6)
	assert.InDelta(t, 0.9, v, 1e-9)
}

func TestBlend(t *testing.T) {
	a := RGBA{1, 0, 0, 1}
	b := RGBA{0, 0, 1, 0}

	assert.Equal(t, a, a.Blend(b, 0))
	mid := a.Blend(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)
	assert.InDelta(t, 0.5, mid.A, 1e-9)
}

func TestColorInterface(t *testing.T) {
	var c color.Color = RGBA{1, 0.5, 0, 0.5}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x8000), a)
	assert.Equal(t, uint32(0x8000), r)
	assert.Equal(t, uint32(0x4000), g)
	assert.Equal(t, uint32(0), b)

	assert.Equal(t, color.NRGBA{R: 255, G: 128, B: 0, A: 128}, RGBA{1, 0.5, 0, 0.5}.NRGBA())
}

func TestRandomIsOpaqueAndSaturated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		c := Random(rng, 0.4, 1)
		assert.Equal(t, 1.0, c.A)
		assert.InDelta(t, 0.4, c.Saturation(), 1e-9)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(7))
}

func TestLerp(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 200, G: 100, B: 0, A: 255}

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, color.NRGBA{R: 100, G: 100, B: 100, A: 255}, Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 3))
}
