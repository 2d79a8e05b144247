// Package pointer tracks the user's pointer over the drawing surface and
// turns drag gestures into launch vectors.
package pointer

import "github.com/iburimskiy/particle-sandbox/internal/geom"

// MaxIdleAge is how long, in seconds, the idle indicator stays visible
// after the last input.
const MaxIdleAge = 10.0

// Tracker is the pointer state machine: idle until pressed, dragging until
// released. It has no physics effect of its own.
type Tracker struct {
	position geom.Vector
	origin   geom.Vector
	dragging bool
	active   bool
	age      float64
}

// NewTracker returns an idle tracker whose indicator is hidden until the
// first input.
func NewTracker() *Tracker {
	return &Tracker{age: MaxIdleAge + 1}
}

func (t *Tracker) Position() geom.Vector { return t.position }
func (t *Tracker) Active() bool { return t.active }
func (t *Tracker) Age() float64 { return t.age }
func (t *Tracker) Dragging() bool { return t.dragging }

// DragOrigin returns where the current drag started, if one is in progress.
func (t *Tracker) DragOrigin() (geom.Vector, bool) {
	return t.origin, t.dragging
}

// Launch returns the vector a release at the current position would
// produce, or zero when not dragging.
func (t *Tracker) Launch() geom.Vector {
	if !t.dragging {
		return geom.Zero
	}
	return t.position.Subtract(t.origin)
}

func (t *Tracker) Move(p geom.Vector) {
	t.position = p
	t.age = 0
}

// Down starts a drag at p.
func (t *Tracker) Down(p geom.Vector) {
	t.position = p
	t.origin = p
	t.dragging = true
	t.age = 0
}

// Up ends a drag at p and returns its launch vector. ok is false when no
// drag was in progress.
func (t *Tracker) Up(p geom.Vector) (launch geom.Vector, ok bool) {
	t.position = p
	t.age = 0
	if !t.dragging {
		return geom.Zero, false
	}
	launch = t.position.Subtract(t.origin)
	t.dragging = false
	t.origin = geom.Zero
	return launch, true
}

func (t *Tracker) Enter() {
	t.active = true
	t.age = 0
}

func (t *Tracker) Leave() {
	t.active = false
}

// Advance ages the tracker by dt seconds.
func (t *Tracker) Advance(dt float64) {
	t.age += dt
}
