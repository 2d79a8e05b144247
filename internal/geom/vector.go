// Package geom holds the 2D vector value type shared by the simulation,
// the pointer tracker and the renderer.
package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Vector is a 2D vector. Every method returns a new value; nothing mutates
// the receiver.
type Vector struct {
	X, Y float64
}

var (
	Zero  = Vector{}
	UnitX = Vector{X: 1}
	UnitY = Vector{Y: 1}
)

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

func (v Vector) Subtract(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y}
}

func (v Vector) Scaled(k float64) Vector {
	return Vector{v.X * k, v.Y * k}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v is zero.
func (v Vector) Normalized() Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Zero
	}
	return v.Scaled(1 / mag)
}

// Angle returns the heading of v rotated so that +Y is angle 0. Rotating a
// shape drawn along +Y by Angle points it along v.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X) - math.Pi/2
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// WithX returns a copy of v with X replaced.
func (v Vector) WithX(x float64) Vector {
	return Vector{x, v.Y}
}

// WithY returns a copy of v with Y replaced.
func (v Vector) WithY(y float64) Vector {
	return Vector{v.X, y}
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%g, %g)", v.X, v.Y)
}

// Random returns a vector uniform in [-1,1]².
func Random(rng *rand.Rand) Vector {
	return Vector{rng.Float64()*2 - 1, rng.Float64()*2 - 1}
}

// RandomIn returns a vector uniform in [0,bounds.X)×[0,bounds.Y).
func RandomIn(rng *rand.Rand, bounds Vector) Vector {
	return Vector{rng.Float64() * bounds.X, rng.Float64() * bounds.Y}
}
