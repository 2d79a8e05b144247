// Package canvas describes the 2D drawing surface the simulation paints on.
//
// Coordinates are in surface pixels with Y pointing down. Save, Restore,
// Translate and Rotate maintain a transform stack in the manner of an HTML
// canvas; every primitive is drawn through the current transform.
package canvas

import "image/color"

// Context is a 2D drawing surface.
type Context interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height float64)
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)

	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	StrokeDashed(x1, y1, x2, y2, width, dash, gap float64, clr color.Color)
	// StrokeArc strokes the arc of radius r around (cx, cy) from start to end
	// radians, clockwise on screen.
	StrokeArc(cx, cy, r, start, end, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)

	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	// FillRectGradient fills a rectangle with a vertical linear gradient.
	FillRectGradient(x, y, w, h float64, top, bottom color.Color)

	MeasureText(s string) (width, height float64)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, clr color.Color)
}
