package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(-1, 2)

	assert.Equal(t, Vec(2, 6), a.Add(b))
	assert.Equal(t, Vec(4, 2), a.Subtract(b))
	assert.Equal(t, Vec(6, 8), a.Scaled(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 25.0, a.MagnitudeSquared())
	assert.Equal(t, 5.0, a.Magnitude())

	// receivers are untouched
	assert.Equal(t, Vec(3, 4), a)
	assert.Equal(t, Vec(-1, 2), b)
}

func TestNormalizedMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := Random(rng).Scaled(rng.Float64() * 1000)
		assert.InDelta(t, 1.0, v.Normalized().Magnitude(), 1e-12, "v=%v", v)
	}

	assert.Equal(t, Zero, Zero.Normalized())
	assert.Equal(t, 0.0, Zero.Normalized().Magnitude())
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{"down", UnitY, 0},
		{"right", UnitX, -math.Pi / 2},
		{"up", Vec(0, -1), -math.Pi},
		{"left", Vec(-1, 0), math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Angle(), 1e-12)
		})
	}
}

func TestRandomRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bounds := Vec(800, 600)
	for i := 0; i < 500; i++ {
		v := Random(rng)
		assert.True(t, v.X >= -1 && v.X < 1 && v.Y >= -1 && v.Y < 1, "%v", v)

		p := RandomIn(rng, bounds)
		assert.True(t, p.X >= 0 && p.X < bounds.X && p.Y >= 0 && p.Y < bounds.Y, "%v", p)
	}
}

func TestWith(t *testing.T) {
	v := Vec(1, 2)
	assert.Equal(t, Vec(9, 2), v.WithX(9))
	assert.Equal(t, Vec(1, 9), v.WithY(9))
	assert.True(t, Zero.IsZero())
	assert.False(t, v.IsZero())
	assert.Equal(t, "Vector(1, 2)", v.String())
}
