package vmath

// RectF is an axis-aligned rectangle in float space, origin at top-left
type RectF struct {
	X, Y, W, H float64
}

// ContainsOpen checks if p lies strictly inside the rectangle, edges excluded
// A zero-size rectangle contains nothing
func (r RectF) ContainsOpen(p Vec2F) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Outside checks if p lies beyond the rectangle, edges count as inside
func (r RectF) Outside(p Vec2F) bool {
	return p.X < r.X || p.X > r.X+r.W || p.Y < r.Y || p.Y > r.Y+r.H
}

// Clamp returns p moved onto the nearest point of the closed rectangle
func (r RectF) Clamp(p Vec2F) Vec2F {
	return Vec2F{
		X: min(max(p.X, r.X), r.X+r.W),
		Y: min(max(p.Y, r.Y), r.Y+r.H),
	}
}

// Center returns the midpoint of the rectangle
func (r RectF) Center() Vec2F {
	return Vec2F{r.X + r.W/2, r.Y + r.H/2}
}
