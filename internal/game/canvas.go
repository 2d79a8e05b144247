package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/particle-sandbox/internal/palette"
)

// screenCanvas implements canvas.Context on an ebiten image. Points go
// through the current GeoM; rectangles stay axis aligned, so only their
// corners are transformed.
type screenCanvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	face  font.Face
}

func newScreenCanvas(dst *ebiten.Image) *screenCanvas {
	return &screenCanvas{dst: dst, face: basicfont.Face7x13}
}

func (c *screenCanvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *screenCanvas) Clear() {
	c.dst.Clear()
}

func (c *screenCanvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *screenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate and Rotate apply in local coordinates, before the existing
// transform.
func (c *screenCanvas) Translate(x, y float64) {
	var local ebiten.GeoM
	local.Translate(x, y)
	local.Concat(c.geo)
	c.geo = local
}

func (c *screenCanvas) Rotate(theta float64) {
	var local ebiten.GeoM
	local.Rotate(theta)
	local.Concat(c.geo)
	c.geo = local
}

func (c *screenCanvas) apply(x, y float64) (float32, float32) {
	tx, ty := c.geo.Apply(x, y)
	return float32(tx), float32(ty)
}

func (c *screenCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	ax, ay := c.apply(x1, y1)
	bx, by := c.apply(x2, y2)
	vector.StrokeLine(c.dst, ax, ay, bx, by, float32(width), clr, true)
}

func (c *screenCanvas) StrokeDashed(x1, y1, x2, y2, width, dash, gap float64, clr color.Color) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || dash <= 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for s := 0.0; s < length; s += dash + gap {
		e := math.Min(s+dash, length)
		c.StrokeLine(x1+ux*s, y1+uy*s, x1+ux*e, y1+uy*e, width, clr)
	}
}

func (c *screenCanvas) StrokeArc(cx, cy, r, start, end, width float64, clr color.Color) {
	segments := int(math.Max(12, math.Abs(end-start)*r/3))
	step := (end - start) / float64(segments)
	px, py := cx+math.Cos(start)*r, cy+math.Sin(start)*r
	for i := 1; i <= segments; i++ {
		a := start + step*float64(i)
		nx, ny := cx+math.Cos(a)*r, cy+math.Sin(a)*r
		c.StrokeLine(px, py, nx, ny, width, clr)
		px, py = nx, ny
	}
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	x, y := c.apply(cx, cy)
	vector.DrawFilledCircle(c.dst, x, y, float32(r), clr, true)
}

func (c *screenCanvas) rect(x, y, w, h float64) (rx, ry, rw, rh float32) {
	x1, y1 := c.apply(x, y)
	x2, y2 := c.apply(x+w, y+h)
	return min(x1, x2), min(y1, y2), abs32(x2 - x1), abs32(y2 - y1)
}

func (c *screenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	rx, ry, rw, rh := c.rect(x, y, w, h)
	vector.DrawFilledRect(c.dst, rx, ry, rw, rh, clr, false)
}

func (c *screenCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	rx, ry, rw, rh := c.rect(x, y, w, h)
	vector.StrokeRect(c.dst, rx, ry, rw, rh, float32(width), clr, false)
}

// FillRectGradient paints one row per pixel, interpolating top to bottom.
func (c *screenCanvas) FillRectGradient(x, y, w, h float64, top, bottom color.Color) {
	rx, ry, rw, rh := c.rect(x, y, w, h)
	rows := int(math.Ceil(float64(rh)))
	for i := 0; i < rows; i++ {
		ratio := 0.0
		if rows > 1 {
			ratio = float64(i) / float64(rows-1)
		}
		vector.DrawFilledRect(c.dst, rx, ry+float32(i), rw, 1, palette.Lerp(top, bottom, ratio), false)
	}
}

func (c *screenCanvas) MeasureText(s string) (float64, float64) {
	b := text.BoundString(c.face, s)
	return float64(b.Dx()), float64(c.face.Metrics().Height.Ceil())
}

func (c *screenCanvas) DrawText(s string, x, y float64, clr color.Color) {
	tx, ty := c.apply(x, y)
	text.Draw(c.dst, s, c.face, int(tx), int(ty)+c.face.Metrics().Ascent.Ceil(), clr)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
