package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-sandbox/internal/canvas/canvastest"
	"github.com/iburimskiy/particle-sandbox/internal/geom"
	"github.com/iburimskiy/particle-sandbox/internal/palette"
)

const (
	dt      = 1.0 / 60
	testG   = 500.0
	restful = RestingSaturation
)

var (
	screen = geom.Vec(800, 600)
	green  = palette.FromHSV(120, restful, 1)
)

func TestNewDerivesRadius(t *testing.T) {
	p := New(geom.Vec(1, 2), geom.Vec(3, 4), 27, green)
	assert.Equal(t, 27.0, p.Mass())
	assert.InDelta(t, 3.0, p.Radius(), 1e-12)
	assert.Equal(t, p.Velocity(), p.PendingVelocity())
	assert.False(t, p.Expired())
	assert.Empty(t, p.Trail())

	tiny := New(geom.Zero, geom.Zero, 0, green)
	assert.Equal(t, MinMass, tiny.Mass())
	assert.InDelta(t, math.Cbrt(MinMass), tiny.Radius(), 1e-12)
}

func TestAdvanceMovesByVelocityTimesDt(t *testing.T) {
	start := geom.Vec(100, 100)
	v := geom.Vec(30, -20)
	p := New(start, v, 1, green)

	p.Advance(dt, screen)

	assert.Equal(t, start.Add(v.Scaled(dt)), p.Position())
	assert.Equal(t, v, p.Velocity())
	assert.InDelta(t, dt, p.Age(), 1e-15)
}

func TestSpeedLimiterDampsOnePercentPerTick(t *testing.T) {
	bounds := geom.Vec(1e6, 1e6)
	p := New(geom.Vec(5e5, 5e5), geom.Vec(400, 0), 1, green)

	ticks := 0
	for p.PendingVelocity().MagnitudeSquared() > SpeedCeiling {
		before := p.PendingVelocity()
		p.Advance(dt, bounds)
		ticks++

		assert.Equal(t, before.Scaled(SpeedDamping), p.Velocity())
		assert.Greater(t, p.Velocity().X, 0.0)
		require.Less(t, ticks, 100, "limiter never converged")
	}

	settled := p.Velocity()
	p.Advance(dt, bounds)
	assert.Equal(t, settled, p.Velocity())
	assert.LessOrEqual(t, settled.MagnitudeSquared(), SpeedCeiling)
}

func TestAdvanceReflectsAtEdges(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel geom.Vector
		check    func(t *testing.T, p *Particle)
	}{
		{
			name: "low x",
			pos:  geom.Vec(0, 300), // radius - 1
			vel:  geom.Vec(-10, 0),
			check: func(t *testing.T, p *Particle) {
				assert.Greater(t, p.Velocity().X, 0.0)
			},
		},
		{
			name: "high x",
			pos:  geom.Vec(799.5, 300),
			vel:  geom.Vec(10, 0),
			check: func(t *testing.T, p *Particle) {
				assert.Less(t, p.Velocity().X, 0.0)
				assert.LessOrEqual(t, p.Position().X, 799.0)
			},
		},
		{
			name: "low y",
			pos:  geom.Vec(400, 0.5),
			vel:  geom.Vec(0, -30),
			check: func(t *testing.T, p *Particle) {
				assert.Greater(t, p.Velocity().Y, 0.0)
				assert.GreaterOrEqual(t, p.Position().Y, 1.0)
			},
		},
		{
			name: "high y",
			pos:  geom.Vec(400, 599.9),
			vel:  geom.Vec(0, 30),
			check: func(t *testing.T, p *Particle) {
				assert.Less(t, p.Velocity().Y, 0.0)
			},
		},
		{
			name: "overshoot",
			pos:  geom.Vec(10, 300),
			vel:  geom.Vec(-300, 0),
			check: func(t *testing.T, p *Particle) {
				assert.Greater(t, p.Velocity().X, 0.0)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.pos, tt.vel, 1, green)
			step := dt
			if tt.name == "overshoot" {
				step = 10
			}
			p.Advance(step, screen)

			pos := p.Position()
			assert.True(t, pos.X >= 0 && pos.X < screen.X, "x=%v", pos.X)
			assert.True(t, pos.Y >= 0 && pos.Y < screen.Y, "y=%v", pos.Y)
			assert.Equal(t, p.Velocity(), p.PendingVelocity())
			tt.check(t, p)
		})
	}
}

func TestTrailIsBounded(t *testing.T) {
	p := New(geom.Vec(100, 100), geom.Vec(60, 0), 1, green)

	var seen []geom.Vector
	for i := 0; i < 10; i++ {
		p.Advance(dt, screen)
		seen = append(seen, p.Position())
	}

	trail := p.Trail()
	require.Len(t, trail, TrailLength)
	assert.Equal(t, seen[len(seen)-TrailLength:], trail)
}

func TestInteractZeroSeparationIsNoop(t *testing.T) {
	a := New(geom.Vec(50, 50), geom.Vec(1, 0), 2, green)
	b := New(geom.Vec(50, 50), geom.Vec(0, 1), 3, green)
	wantA, wantB := *a, *b

	assert.Equal(t, None, Interact(a, b, dt, testG))
	assert.Equal(t, wantA, *a)
	assert.Equal(t, wantB, *b)
}

func TestInteractSkipsSelfAndExpired(t *testing.T) {
	a := New(geom.Vec(50, 50), geom.Zero, 2, green)
	assert.Equal(t, None, Interact(a, a, dt, testG))

	b := New(geom.Vec(51, 50), geom.Zero, 1, green)
	c := New(geom.Vec(90, 50), geom.Zero, 1, green)
	require.Equal(t, Merged, Interact(a, b, dt, testG))

	before := *c
	assert.Equal(t, None, Interact(c, b, dt, testG))
	assert.Equal(t, None, Interact(b, c, dt, testG))
	assert.Equal(t, before, *c)
}

func TestInteractMerges(t *testing.T) {
	for _, swapped := range []bool{false, true} {
		a := New(geom.Vec(100, 100), geom.Vec(10, 0), 8, green)
		b := New(geom.Vec(102, 100), geom.Vec(-8, 0), 1, palette.FromHSV(0, restful, 1))

		var out Outcome
		if swapped {
			out = Interact(b, a, dt, testG)
		} else {
			out = Interact(a, b, dt, testG)
		}

		assert.Equal(t, Merged, out)
		assert.True(t, b.Expired())
		assert.False(t, a.Expired())
		assert.Equal(t, 9.0, a.Mass())
		assert.InDelta(t, math.Pow(9, 1.0/3), a.Radius(), 1e-12)
		// momentum weighted: (8*10 + 1*-8) / 9
		assert.InDelta(t, 8.0, a.PendingVelocity().X, 1e-12)
		assert.Equal(t, geom.Vec(10, 0), a.Velocity())
	}
}

func TestInteractBouncesFastContacts(t *testing.T) {
	a := New(geom.Vec(100, 100), geom.Vec(200, 0), 1, green)
	b := New(geom.Vec(101.5, 100), geom.Vec(-200, 0), 1, green)

	assert.Equal(t, Bounced, Interact(a, b, dt, testG))
	assert.False(t, a.Expired())
	assert.False(t, b.Expired())

	// committed velocities are untouched until Advance
	assert.Equal(t, geom.Vec(200, 0), a.Velocity())
	assert.Equal(t, geom.Vec(-200, 0), b.Velocity())
	assert.NotEqual(t, a.Velocity(), a.PendingVelocity())

	// pushed apart to exactly touching
	sep := a.Position().Subtract(b.Position()).Magnitude()
	assert.InDelta(t, a.Radius()+b.Radius(), sep, 1e-12)
	assert.Less(t, a.Position().X, 100.0)
	assert.Greater(t, b.Position().X, 101.5)

	assert.InDelta(t, restful+ExcitementStep, a.Colour().Saturation(), 1e-6)
	assert.InDelta(t, restful+ExcitementStep, b.Colour().Saturation(), 1e-6)
}

func TestInteractAttracts(t *testing.T) {
	a := New(geom.Vec(100, 100), geom.Zero, 1, green)
	b := New(geom.Vec(200, 100), geom.Zero, 1, green)

	assert.Equal(t, Attracted, Interact(a, b, dt, testG))

	want := 2.0 / (100 * 100) * testG * dt
	assert.InDelta(t, want, a.PendingVelocity().X, 1e-15)
	assert.InDelta(t, -want, b.PendingVelocity().X, 1e-15)
	assert.Equal(t, 0.0, a.PendingVelocity().Y)
	assert.Equal(t, geom.Zero, a.Velocity())

	// colour is only excited by contact
	assert.Equal(t, green, a.Colour())
}

func TestSaturationRelaxes(t *testing.T) {
	p := New(geom.Vec(100, 100), geom.Zero, 1, palette.FromHSV(30, 1, 1))
	for i := 0; i < 600; i++ {
		p.Advance(dt, screen)
	}
	assert.InDelta(t, RestingSaturation, p.Colour().Saturation(), 1e-6)
}

func TestDraw(t *testing.T) {
	p := New(geom.Vec(100, 100), geom.Vec(60, 0), 1, green)
	for i := 0; i < 4; i++ {
		p.Advance(dt, screen)
	}

	rec := canvastest.NewRecorder(800, 600)
	p.Draw(rec)

	assert.True(t, rec.Balanced())
	assert.Equal(t, len(p.Trail())-1, rec.Count("StrokeLine"))
	assert.Equal(t, glowLayers+1, rec.Count("FillCircle"))
	assert.Equal(t, 1, rec.Count("Translate"))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "merged", Merged.String())
	assert.Equal(t, "bounced", Bounced.String())
	assert.Equal(t, "attracted", Attracted.String())
	assert.Equal(t, "none", None.String())
}
