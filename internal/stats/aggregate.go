// Package stats aggregates per-tick figures over the live particles and
// renders them as a HUD.
package stats

import "github.com/iburimskiy/particle-sandbox/internal/geom"

// Aggregate is rebuilt from scratch every tick: Reset, Add each particle,
// then Normalize.
type Aggregate struct {
	Count       int
	TotalMass   float64
	LargestMass float64
	// Velocity is the mass-weighted mean velocity once normalized.
	Velocity geom.Vector

	// Merges and Bounces count the contacts of the tick.
	Merges  int
	Bounces int
}

func (a *Aggregate) Reset() {
	*a = Aggregate{}
}

// Add accumulates one particle.
func (a *Aggregate) Add(mass float64, velocity geom.Vector) {
	a.Count++
	a.TotalMass += mass
	if mass > a.LargestMass {
		a.LargestMass = mass
	}
	a.Velocity = a.Velocity.Add(velocity.Scaled(mass))
}

// Normalize turns the accumulated momentum into a mean velocity.
func (a *Aggregate) Normalize() {
	if a.TotalMass == 0 {
		a.Velocity = geom.Zero
		return
	}
	a.Velocity = a.Velocity.Scaled(1 / a.TotalMass)
}
