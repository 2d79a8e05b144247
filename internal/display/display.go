// Package display drives the simulation: it owns the particles and the
// pointer tracker, runs the physics tick and paints frames.
//
// Physics and rendering are clocked independently. The host calls Simulate
// at the physics cadence with the current time and Animate once per
// refreshed frame; both run on the host's single game goroutine, so every
// frame sees a whole tick.
package display

import (
	"image/color"
	"math/rand"
	"time"

	"k8s.io/klog/v2"

	"github.com/iburimskiy/particle-sandbox/internal/canvas"
	"github.com/iburimskiy/particle-sandbox/internal/config"
	"github.com/iburimskiy/particle-sandbox/internal/geom"
	"github.com/iburimskiy/particle-sandbox/internal/palette"
	"github.com/iburimskiy/particle-sandbox/internal/particle"
	"github.com/iburimskiy/particle-sandbox/internal/pointer"
	"github.com/iburimskiy/particle-sandbox/internal/stats"
)

// Container is the resize target the display listens to.
const Container = "canvas"

// Listener is told about the contacts of each tick that had any.
type Listener interface {
	Collisions(merges, bounces int, largestMerged float64)
}

// Options configures a Display.
type Options struct {
	Width, Height float64

	Particles       int
	Gravity         float64
	MaxTickInterval time.Duration
	InitialSpeed    float64
	MaxInitialMass  float64
	LaunchMass      float64
	LaunchScale     float64

	Backdrop bool
	Stats    bool

	Rand     *rand.Rand
	Listener Listener
}

// OptionsFrom maps the runtime configuration onto display options.
func OptionsFrom(c config.Config) Options {
	return Options{
		Width:           float64(c.Window.Width),
		Height:          float64(c.Window.Height),
		Particles:       c.Simulation.Particles,
		Gravity:         c.Simulation.Gravity,
		MaxTickInterval: time.Duration(c.Simulation.MaxTickInterval * float64(time.Second)),
		InitialSpeed:    c.Simulation.InitialSpeed,
		MaxInitialMass:  c.Simulation.MaxInitialMass,
		LaunchMass:      c.Simulation.LaunchMass,
		LaunchScale:     c.Simulation.LaunchScale,
		Backdrop:        c.Render.Backdrop,
		Stats:           c.Render.Stats,
	}
}

// ResizeEntry is a size change notification for a container.
type ResizeEntry struct {
	Target        string
	Width, Height float64
}

type Display struct {
	opts     Options
	rng      *rand.Rand
	listener Listener

	particles []*particle.Particle
	pointer   *pointer.Tracker
	stats     stats.Aggregate
	overlay   *stats.Overlay

	bounds   geom.Vector
	previous time.Time
	elapsed  time.Duration

	lastHandle   uint64
	animationID  uint64
	simulationID uint64
	closed       bool
}

var (
	backdropTop    = color.NRGBA{R: 8, G: 10, B: 22, A: 255}
	backdropBottom = color.NRGBA{R: 18, G: 14, B: 32, A: 255}
)

// New creates a display with its initial particles. Neither loop runs
// until started.
func New(opts Options) *Display {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.MaxTickInterval <= 0 {
		opts.MaxTickInterval = time.Second
	}
	if opts.LaunchScale == 0 {
		opts.LaunchScale = 1
	}
	d := &Display{
		opts:     opts,
		rng:      opts.Rand,
		listener: opts.Listener,
		pointer:  pointer.NewTracker(),
		overlay:  stats.NewOverlay(),
		bounds:   geom.Vec(opts.Width, opts.Height),
	}
	d.seed(opts.Particles)
	d.recount(0, 0)
	return d
}

func (d *Display) seed(n int) {
	for i := 0; i < n; i++ {
		d.Spawn(
			geom.RandomIn(d.rng, d.bounds),
			geom.Random(d.rng).Scaled(d.opts.InitialSpeed),
			d.opts.MaxInitialMass*(1-d.rng.Float64()),
		)
	}
}

// Reseed discards every particle and seeds a fresh set.
func (d *Display) Reseed() {
	d.particles = nil
	d.seed(d.opts.Particles)
	d.recount(0, 0)
	klog.V(1).Infof("reseeded %d particles in %v", len(d.particles), d.bounds)
}

// Spawn adds a particle with a random colour.
func (d *Display) Spawn(position, velocity geom.Vector, mass float64) *particle.Particle {
	p := particle.New(position, velocity, mass, palette.Random(d.rng, particle.RestingSaturation, 1))
	d.particles = append(d.particles, p)
	return p
}

// Particles returns a snapshot of the live particles.
func (d *Display) Particles() []*particle.Particle {
	out := make([]*particle.Particle, len(d.particles))
	copy(out, d.particles)
	return out
}

func (d *Display) Pointer() *pointer.Tracker { return d.pointer }
func (d *Display) Stats() stats.Aggregate { return d.stats }
func (d *Display) Bounds() geom.Vector { return d.bounds }
func (d *Display) Elapsed() time.Duration { return d.elapsed }

// Resize applies the entries addressed to Container. Foreign targets and
// non-positive sizes are ignored. Existing particles are not moved; they
// meet the new bounds on their next advance.
func (d *Display) Resize(entries []ResizeEntry) {
	for _, e := range entries {
		if e.Target != Container || e.Width <= 0 || e.Height <= 0 {
			klog.V(4).Infof("ignoring resize %+v", e)
			continue
		}
		d.bounds = geom.Vec(e.Width, e.Height)
	}
}

// Simulate runs one physics tick at time now. The first call after
// starting only records the reference time. Ticks whose measured interval
// is not positive or exceeds MaxTickInterval are skipped.
func (d *Display) Simulate(now time.Time) {
	if d.simulationID == 0 {
		return
	}
	if d.previous.IsZero() {
		d.previous = now
		return
	}

	interval := now.Sub(d.previous)
	d.previous = now
	if interval <= 0 {
		return
	}
	if interval > d.opts.MaxTickInterval {
		klog.V(2).Infof("skipping tick: %v since the last one", interval)
		return
	}

	d.tick(interval.Seconds())
	d.elapsed += interval
}

func (d *Display) tick(dt float64) {
	var merges, bounces int
	var largest float64

	ps := d.particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if ps[i].Expired() {
				break
			}
			switch particle.Interact(ps[i], ps[j], dt, d.opts.Gravity) {
			case particle.Merged:
				merges++
				largest = max(largest, ps[i].Mass(), ps[j].Mass())
			case particle.Bounced:
				bounces++
			}
		}
	}

	live := ps[:0]
	for _, p := range ps {
		if !p.Expired() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(ps); i++ {
		ps[i] = nil
	}
	d.particles = live

	d.pointer.Advance(dt)
	for _, p := range d.particles {
		p.Advance(dt, d.bounds)
	}

	d.recount(merges, bounces)
	if d.listener != nil && merges+bounces > 0 {
		d.listener.Collisions(merges, bounces, largest)
	}
}

func (d *Display) recount(merges, bounces int) {
	d.stats.Reset()
	for _, p := range d.particles {
		d.stats.Add(p.Mass(), p.Velocity())
	}
	d.stats.Normalize()
	d.stats.Merges = merges
	d.stats.Bounces = bounces
}

// Animate paints one frame. It reads the simulation without changing it
// and does nothing while the animation is stopped.
func (d *Display) Animate(ctx canvas.Context) {
	if d.animationID == 0 {
		return
	}

	ctx.Clear()
	if d.opts.Backdrop {
		w, h := ctx.Size()
		ctx.FillRectGradient(0, 0, w, h, backdropTop, backdropBottom)
	}
	for _, p := range d.particles {
		p.Draw(ctx)
	}
	d.pointer.Draw(ctx)
	if d.opts.Stats {
		d.overlay.Draw(ctx, d.stats, d.elapsed)
	}
}
