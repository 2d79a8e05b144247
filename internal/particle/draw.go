package particle

import (
	"math"

	"github.com/iburimskiy/particle-sandbox/internal/canvas"
)

const (
	glowLayers  = 3
	glowSpread  = 0.9
	glowAlpha   = 0.18
	trailAlpha  = 0.6
	minBodySize = 1.5
)

// Draw paints the trail, fading toward the oldest point, and a glowing body.
func (p *Particle) Draw(ctx canvas.Context) {
	body := math.Max(p.radius, minBodySize)

	trail := p.Trail()
	for i := 1; i < len(trail); i++ {
		fade := float64(i) / float64(len(trail))
		from, to := trail[i-1], trail[i]
		ctx.StrokeLine(from.X, from.Y, to.X, to.Y, math.Max(1, body*2*fade), p.colour.WithAlpha(trailAlpha*fade))
	}

	ctx.Save()
	ctx.Translate(p.position.X, p.position.Y)
	for i := glowLayers; i > 0; i-- {
		r := body * (1 + glowSpread*float64(i))
		ctx.FillCircle(0, 0, r, p.colour.WithAlpha(glowAlpha/float64(i)))
	}
	ctx.FillCircle(0, 0, body, p.colour)
	ctx.Restore()
}
