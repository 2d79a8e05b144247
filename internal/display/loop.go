package display

import "time"

func (d *Display) nextHandle() uint64 {
	d.lastHandle++
	return d.lastHandle
}

// StartAnimation enables frame painting. Starting a running animation is a
// no-op.
func (d *Display) StartAnimation() {
	if d.closed || d.animationID != 0 {
		return
	}
	d.animationID = d.nextHandle()
}

// StopAnimation disables frame painting. Stopping twice is a no-op.
func (d *Display) StopAnimation() {
	d.animationID = 0
}

func (d *Display) Animating() bool { return d.animationID != 0 }

// StartSimulation enables physics ticks. The first tick after a start only
// records its timestamp, so a pause is never integrated.
func (d *Display) StartSimulation() {
	if d.closed || d.simulationID != 0 {
		return
	}
	d.simulationID = d.nextHandle()
	d.previous = time.Time{}
}

// StopSimulation disables physics ticks. Stopping twice is a no-op.
func (d *Display) StopSimulation() {
	d.simulationID = 0
}

func (d *Display) Simulating() bool { return d.simulationID != 0 }

// Start runs both loops.
func (d *Display) Start() {
	d.StartSimulation()
	d.StartAnimation()
}

// Close stops both loops for good and drops the listener. Later Start
// calls are ignored.
func (d *Display) Close() {
	d.StopAnimation()
	d.StopSimulation()
	d.listener = nil
	d.closed = true
}
