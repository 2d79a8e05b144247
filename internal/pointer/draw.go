package pointer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/particle-sandbox/internal/canvas"
)

const (
	pulseRadius = 8.0
	pulseDepth  = 4.0
	pulseHz     = 0.8

	originRadius = 6.0
	arrowLength  = 18.0
	arrowWing    = 6.0
)

var (
	idleColour  = color.NRGBA{R: 180, G: 200, B: 255, A: 255}
	aimColour   = color.NRGBA{R: 255, G: 220, B: 120, A: 230}
	labelColour = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
)

// Draw paints the pointer indicator: an aiming guide while dragging, a
// pulsing ring while idle, nothing once the pointer has left or gone stale.
func (t *Tracker) Draw(ctx canvas.Context) {
	if t.dragging {
		t.drawAim(ctx)
		return
	}
	if !t.active || t.age > MaxIdleAge {
		return
	}

	fade := 1 - t.age/MaxIdleAge
	r := pulseRadius + pulseDepth*math.Sin(t.age*2*math.Pi*pulseHz)
	c := idleColour
	c.A = uint8(255 * fade)
	ctx.StrokeArc(t.position.X, t.position.Y, r, 0, 2*math.Pi, 1.5, c)
	ctx.FillCircle(t.position.X, t.position.Y, 1.5, c)
}

func (t *Tracker) drawAim(ctx canvas.Context) {
	launch := t.Launch()
	o, p := t.origin, t.position

	ctx.StrokeArc(o.X, o.Y, originRadius, 0, 2*math.Pi, 2, aimColour)
	ctx.StrokeDashed(o.X, o.Y, p.X, p.Y, 1.5, 6, 4, aimColour)

	if launch.IsZero() {
		return
	}

	// Arrow is drawn along local +Y and rotated onto the launch heading.
	ctx.Save()
	ctx.Translate(o.X, o.Y)
	ctx.Rotate(launch.Angle())
	ctx.StrokeLine(0, 0, 0, arrowLength, 2, aimColour)
	ctx.StrokeLine(0, arrowLength, -arrowWing, arrowLength-arrowWing, 2, aimColour)
	ctx.StrokeLine(0, arrowLength, arrowWing, arrowLength-arrowWing, 2, aimColour)
	ctx.Restore()

	label := fmt.Sprintf("%.0f px/s", launch.Magnitude())
	w, h := ctx.MeasureText(label)
	ctx.DrawText(label, p.X-w/2, p.Y+h, labelColour)
}
