package display

import (
	"k8s.io/klog/v2"

	"github.com/iburimskiy/particle-sandbox/internal/geom"
)

func (d *Display) PointerMove(x, y float64) {
	d.pointer.Move(geom.Vec(x, y))
}

func (d *Display) PointerDown(x, y float64) {
	d.pointer.Down(geom.Vec(x, y))
}

// PointerUp ends a drag and launches a particle from where the drag began,
// with the drag displacement times LaunchScale as its velocity. It returns
// the new particle's index, or -1 when no drag was in progress.
func (d *Display) PointerUp(x, y float64) int {
	origin, _ := d.pointer.DragOrigin()
	launch, ok := d.pointer.Up(geom.Vec(x, y))
	if !ok {
		return -1
	}
	v := launch.Scaled(d.opts.LaunchScale)
	d.Spawn(origin, v, d.opts.LaunchMass)
	klog.V(2).Infof("launched particle at %v with %v", origin, v)
	return len(d.particles) - 1
}

func (d *Display) PointerEnter() {
	d.pointer.Enter()
}

func (d *Display) PointerLeave() {
	d.pointer.Leave()
}
