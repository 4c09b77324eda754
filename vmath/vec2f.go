package vmath

import (
	"math"
	"math/rand/v2"
)

// Vec2F is a float64 2D vector for agent physics
// Mutating methods operate in place; the value is owned by its holder
type Vec2F struct {
	X, Y float64
}

// Add accumulates o into v
func (v *Vec2F) Add(o Vec2F) {
	v.X += o.X
	v.Y += o.Y
}

// Scale multiplies v by n
func (v *Vec2F) Scale(n float64) {
	v.X *= n
	v.Y *= n
}

// SetMag rescales v to magnitude m, zero vector is left unchanged
func (v *Vec2F) SetMag(m float64) {
	mag := v.Mag()
	if mag == 0 {
		return
	}
	v.X = v.X * m / mag
	v.Y = v.Y * m / mag
}

// Heading returns the angle of v in radians, atan2(y, x)
func (v Vec2F) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2F) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2F) Sub(o Vec2F) Vec2F {
	return Vec2F{v.X - o.X, v.Y - o.Y}
}

// Dist returns Euclidean distance between v and o
func (v Vec2F) Dist(o Vec2F) float64 {
	return v.Sub(o).Mag()
}

// RandomUnit2F returns a unit vector with heading uniform in [0, 2π)
func RandomUnit2F(rng *rand.Rand) Vec2F {
	angle := rng.Float64() * 2 * math.Pi
	return Vec2F{math.Cos(angle), math.Sin(angle)}
}

// FromHeading2F returns a vector of magnitude mag pointing at angle radians
func FromHeading2F(angle, mag float64) Vec2F {
	return Vec2F{math.Cos(angle) * mag, math.Sin(angle) * mag}
}
