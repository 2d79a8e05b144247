// Package canvastest provides a canvas.Context that records draw calls
// instead of painting them.
package canvastest

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is a single recorded call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color color.Color
}

func (o Op) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	if o.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", o.Text))
	}
	return o.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Recorder implements canvas.Context. Text is measured as a fixed-width
// font of CharWidth x LineHeight pixels.
type Recorder struct {
	Width, Height float64
	CharWidth     float64
	LineHeight    float64

	Ops   []Op
	depth int
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 7, LineHeight: 13}
}

func (r *Recorder) record(name string, clr color.Color, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args, Color: clr})
}

// Count returns how many calls named name were recorded.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Texts returns the strings passed to DrawText, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Name == "DrawText" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Balanced reports whether every Save was matched by a Restore.
func (r *Recorder) Balanced() bool {
	return r.depth == 0
}

func (r *Recorder) Reset() {
	r.Ops = nil
	r.depth = 0
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear() { r.record("Clear", nil) }

func (r *Recorder) Save() {
	r.depth++
	r.record("Save", nil)
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.record("Restore", nil)
}

func (r *Recorder) Translate(x, y float64) { r.record("Translate", nil, x, y) }

func (r *Recorder) Rotate(theta float64) { r.record("Rotate", nil, theta) }

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.record("StrokeLine", clr, x1, y1, x2, y2, width)
}

func (r *Recorder) StrokeDashed(x1, y1, x2, y2, width, dash, gap float64, clr color.Color) {
	r.record("StrokeDashed", clr, x1, y1, x2, y2, width, dash, gap)
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end, width float64, clr color.Color) {
	r.record("StrokeArc", clr, cx, cy, radius, start, end, width)
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.record("FillCircle", clr, cx, cy, radius)
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record("FillRect", clr, x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.record("StrokeRect", clr, x, y, w, h, width)
}

func (r *Recorder) FillRectGradient(x, y, w, h float64, top, bottom color.Color) {
	r.record("FillRectGradient", top, x, y, w, h)
}

func (r *Recorder) MeasureText(s string) (float64, float64) {
	return float64(len(s)) * r.CharWidth, r.LineHeight
}

func (r *Recorder) DrawText(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Name: "DrawText", Args: []float64{x, y}, Text: s, Color: clr})
}
