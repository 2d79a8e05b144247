package stats

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/iburimskiy/particle-sandbox/internal/canvas"
)

// Overlay draws an Aggregate as a boxed HUD anchored at (X, Y).
type Overlay struct {
	X, Y    float64
	Padding float64
	Spacing float64
}

func NewOverlay() *Overlay {
	return &Overlay{X: 12, Y: 12, Padding: 8, Spacing: 3}
}

var (
	boxTop    = color.NRGBA{R: 30, G: 36, B: 52, A: 210}
	boxBottom = color.NRGBA{R: 12, G: 14, B: 22, A: 210}
	boxBorder = color.NRGBA{R: 90, G: 104, B: 140, A: 255}
	textColor = color.NRGBA{R: 220, G: 226, B: 240, A: 255}
)

// Lines returns the HUD text for a.
func (o *Overlay) Lines(a Aggregate, elapsed time.Duration) []string {
	speed := a.Velocity.Magnitude()
	heading := 0.0
	if speed > 0 {
		heading = math.Atan2(a.Velocity.Y, a.Velocity.X) * 180 / math.Pi
	}
	return []string{
		fmt.Sprintf("particles  %d", a.Count),
		fmt.Sprintf("total mass %.1f", a.TotalMass),
		fmt.Sprintf("largest    %.1f", a.LargestMass),
		fmt.Sprintf("mean v     %.1f @ %.0f°", speed, heading),
		fmt.Sprintf("elapsed    %s", formatDuration(elapsed)),
	}
}

func (o *Overlay) Draw(ctx canvas.Context, a Aggregate, elapsed time.Duration) {
	lines := o.Lines(a, elapsed)

	var width, lineHeight float64
	for _, l := range lines {
		w, h := ctx.MeasureText(l)
		width = math.Max(width, w)
		lineHeight = math.Max(lineHeight, h)
	}
	boxW := width + 2*o.Padding
	boxH := float64(len(lines))*(lineHeight+o.Spacing) - o.Spacing + 2*o.Padding

	ctx.FillRectGradient(o.X, o.Y, boxW, boxH, boxTop, boxBottom)
	ctx.StrokeRect(o.X, o.Y, boxW, boxH, 1, boxBorder)

	y := o.Y + o.Padding
	for _, l := range lines {
		ctx.DrawText(l, o.X+o.Padding, y, textColor)
		y += lineHeight + o.Spacing
	}
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
