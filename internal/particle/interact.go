package particle

import (
	"math"

	"github.com/iburimskiy/particle-sandbox/internal/geom"
)

// Outcome reports what an interaction did to a pair.
type Outcome int

const (
	None Outcome = iota
	Attracted
	Bounced
	Merged
)

func (o Outcome) String() string {
	switch o {
	case Attracted:
		return "attracted"
	case Bounced:
		return "bounced"
	case Merged:
		return "merged"
	default:
		return "none"
	}
}

// Interact applies the mutual effect of a and b over dt seconds with
// gravitational constant g. It must be called once per unordered pair and
// tick. Separated particles attract, overlapping ones merge when slow
// enough and bounce otherwise. Merging expires the lighter particle (b on
// a tie).
func Interact(a, b *Particle, dt, g float64) Outcome {
	if a == b || a.expired || b.expired {
		return None
	}

	rel := a.position.Subtract(b.position)
	if rel.IsZero() {
		return None
	}

	dist := rel.Magnitude()
	if dist >= a.radius+b.radius {
		da := attraction(a, b, rel, dist, dt, g)
		db := attraction(b, a, rel.Scaled(-1), dist, dt, g)
		a.pending = a.pending.Subtract(da)
		b.pending = b.pending.Subtract(db)
		return Attracted
	}

	relVel := a.velocity.Subtract(b.velocity)
	if relVel.MagnitudeSquared() < (a.mass+b.mass)*g {
		if a.mass >= b.mass {
			a.absorb(b)
		} else {
			b.absorb(a)
		}
		return Merged
	}

	va, pa := deflection(a, b, rel, dist)
	vb, pb := deflection(b, a, rel.Scaled(-1), dist)
	a.pending = a.pending.Add(va)
	b.pending = b.pending.Add(vb)
	a.position = a.position.Add(pa)
	b.position = b.position.Add(pb)
	a.excite()
	b.excite()
	return Bounced
}

// attraction is the velocity change pulling self toward other; rel points
// from other to self.
func attraction(self, other *Particle, rel geom.Vector, dist, dt, g float64) geom.Vector {
	total := self.mass + other.mass
	return rel.Normalized().Scaled(total / self.mass / (dist * dist) * g * dt)
}

// deflection returns the velocity delta and positional push self receives
// from bouncing off other. Both are computed from committed velocities so
// the two sides of a pair do not see each other's result.
func deflection(self, other *Particle, rel geom.Vector, dist float64) (dv, push geom.Vector) {
	r1, r2 := self.radius, other.radius
	m1, m2 := self.mass, other.mass

	phi := math.Atan(math.Mod((r1*r1+r2*r2-dist*dist)/(2*r1*r2), 1))

	v1, t1 := self.velocity.Magnitude(), heading(self.velocity)
	v2, t2 := other.velocity.Magnitude(), heading(other.velocity)

	along := (v1*math.Cos(t1-phi)*(m1-m2) + 2*m2*v2*math.Cos(t2-phi)) / (m1 + m2)
	perp := v1 * math.Sin(t1-phi)

	next := geom.Vec(
		along*math.Cos(phi)-perp*math.Sin(phi),
		along*math.Sin(phi)+perp*math.Cos(phi),
	)

	overlap := r1 + r2 - dist
	push = rel.Normalized().Scaled(overlap * r2 / (r1 + r2))
	return next.Subtract(self.velocity), push
}

func heading(v geom.Vector) float64 {
	return math.Atan2(v.Y, v.X)
}

// absorb takes other's mass, momentum and colour into p and expires other.
func (p *Particle) absorb(other *Particle) {
	total := p.mass + other.mass
	p.pending = p.pending.Scaled(p.mass).Add(other.pending.Scaled(other.mass)).Scaled(1 / total)
	p.colour = p.colour.Blend(other.colour, other.mass/total)
	p.setMass(total)
	p.excite()
	other.expired = true
}
