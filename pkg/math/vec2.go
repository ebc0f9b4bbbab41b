// Package math provides the small vector and matrix set the renderer needs.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Array returns the components for a vec2 uniform.
func (v Vec2) Array() [2]float32 {
	return [2]float32{v.X, v.Y}
}
