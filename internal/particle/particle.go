// Package particle implements the bodies of the simulation: integration,
// boundary handling, pairwise interaction and drawing.
package particle

import (
	"fmt"
	"math"

	"github.com/iburimskiy/particle-sandbox/internal/geom"
	"github.com/iburimskiy/particle-sandbox/internal/palette"
)

const (
	// SpeedCeiling is the squared speed above which velocity is damped.
	SpeedCeiling = 1e5
	// SpeedDamping is applied once per tick while above SpeedCeiling.
	SpeedDamping = 0.99

	TrailLength = 6
	MinMass     = 0.05

	// ExcitementStep is the saturation added by a contact interaction.
	ExcitementStep = 0.1
	// RestingSaturation is where saturation settles without contacts.
	RestingSaturation = 0.35
	// SaturationDecay is the saturation lost per second above rest.
	SaturationDecay = 0.15
)

// Particle is a massive disc. Interactions write only the pending velocity;
// Advance commits it, so every interaction of a tick sees the same
// velocities regardless of order.
type Particle struct {
	position geom.Vector
	velocity geom.Vector
	pending  geom.Vector

	mass   float64
	radius float64
	colour palette.RGBA

	age     float64
	expired bool

	trail      [TrailLength]geom.Vector
	trailStart int
	trailLen   int
}

// New creates a particle. Masses below MinMass are raised to it.
func New(position, velocity geom.Vector, mass float64, colour palette.RGBA) *Particle {
	p := &Particle{
		position: position,
		velocity: velocity,
		pending:  velocity,
		colour:   colour,
	}
	p.setMass(mass)
	return p
}

func (p *Particle) setMass(m float64) {
	if m < MinMass || math.IsNaN(m) {
		m = MinMass
	}
	p.mass = m
	p.radius = math.Cbrt(m)
}

func (p *Particle) Position() geom.Vector { return p.position }
func (p *Particle) Velocity() geom.Vector { return p.velocity }
func (p *Particle) PendingVelocity() geom.Vector { return p.pending }
func (p *Particle) Mass() float64 { return p.mass }
func (p *Particle) Radius() float64 { return p.radius }
func (p *Particle) Colour() palette.RGBA { return p.colour }
func (p *Particle) Age() float64 { return p.age }
func (p *Particle) Expired() bool { return p.expired }

// Momentum returns mass times velocity.
func (p *Particle) Momentum() geom.Vector {
	return p.velocity.Scaled(p.mass)
}

// Trail returns the recorded positions, oldest first.
func (p *Particle) Trail() []geom.Vector {
	out := make([]geom.Vector, p.trailLen)
	for i := range out {
		out[i] = p.trail[(p.trailStart+i)%TrailLength]
	}
	return out
}

func (p *Particle) pushTrail(v geom.Vector) {
	if p.trailLen < TrailLength {
		p.trail[(p.trailStart+p.trailLen)%TrailLength] = v
		p.trailLen++
		return
	}
	p.trail[p.trailStart] = v
	p.trailStart = (p.trailStart + 1) % TrailLength
}

// Advance commits the pending velocity, integrates over dt seconds and
// keeps the particle inside bounds.
func (p *Particle) Advance(dt float64, bounds geom.Vector) {
	if p.pending.MagnitudeSquared() > SpeedCeiling {
		p.pending = p.pending.Scaled(SpeedDamping)
	}
	p.velocity = p.pending

	p.position = p.position.Add(p.velocity.Scaled(dt))

	x, vx := reflectAxis(p.position.X, p.velocity.X, p.radius, bounds.X)
	y, vy := reflectAxis(p.position.Y, p.velocity.Y, p.radius, bounds.Y)
	p.position = geom.Vec(x, y)
	p.velocity = geom.Vec(vx, vy)
	p.pending = p.velocity

	p.age += dt
	p.pushTrail(p.position)
	p.relax(dt)
}

// reflectAxis mirrors pos back inside [r, size-r] on either edge and points
// vel inward. A step that overshoots the whole domain is wrapped into
// [0, size).
func reflectAxis(pos, vel, r, size float64) (float64, float64) {
	if size <= 0 {
		return pos, vel
	}
	low, high := r, size-r
	if high < low {
		low, high = size/2, size/2
	}

	switch {
	case pos < low:
		pos = low + (low - pos)
		vel = math.Abs(vel)
	case pos > high:
		pos = high - (pos - high)
		vel = -math.Abs(vel)
	}

	if pos < 0 || pos >= size {
		pos = math.Mod(pos, size)
		if pos < 0 {
			pos += size
		}
	}
	return pos, vel
}

func (p *Particle) excite() {
	p.colour = p.colour.Saturate(ExcitementStep)
}

func (p *Particle) relax(dt float64) {
	s := p.colour.Saturation()
	if s <= RestingSaturation {
		return
	}
	p.colour = p.colour.WithSaturation(math.Max(RestingSaturation, s-SaturationDecay*dt))
}

func (p *Particle) String() string {
	return fmt.Sprintf("Particle(pos=%v vel=%v mass=%.3g expired=%t)", p.position, p.velocity, p.mass, p.expired)
}
