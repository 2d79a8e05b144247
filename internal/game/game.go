// Package game hosts the particle display in an ebiten window: it feeds
// window size and mouse state to the display as resize and pointer events
// and hands it an ebiten-backed canvas each frame.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"

	"github.com/iburimskiy/particle-sandbox/internal/clock"
	"github.com/iburimskiy/particle-sandbox/internal/display"
)

type Game struct {
	display *display.Display
	clock   clock.Source

	width, height int

	// pointer edge detection
	inside       bool
	lastX, lastY int
}

func New(d *display.Display, c clock.Source) *Game {
	return &Game{display: d, clock: c, lastX: -1, lastY: -1}
}

func (g *Game) Update() error {
	g.updatePointer()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.display.Animating() {
			g.display.StopAnimation()
		} else {
			g.display.StartAnimation()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.display.Simulating() {
			g.display.StopSimulation()
		} else {
			g.display.StartSimulation()
		}
		klog.V(1).Infof("physics running: %t", g.display.Simulating())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.display.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.display.Close()
		return ebiten.Termination
	}

	g.display.Simulate(g.clock.Now())
	return nil
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height
	if inside != g.inside {
		if inside {
			g.display.PointerEnter()
		} else {
			g.display.PointerLeave()
		}
		g.inside = inside
	}

	if x != g.lastX || y != g.lastY {
		g.display.PointerMove(float64(x), float64(y))
		g.lastX, g.lastY = x, y
	}

	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.display.PointerDown(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.display.PointerUp(float64(x), float64(y))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.display.Animate(newScreenCanvas(screen))

	// Status line
	status := ""
	switch {
	case !g.display.Animating():
		status = "Animation stopped - Space to resume"
	case !g.display.Simulating():
		status = "Physics paused - P to resume"
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
	}
}

// Layout keeps the logical screen equal to the window and reports size
// changes to the display.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.display.Resize([]display.ResizeEntry{{
			Target: display.Container,
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		}})
		klog.V(2).Infof("surface resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
