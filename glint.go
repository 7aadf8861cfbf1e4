package glint

import "math/rand/v2"

// Vec2 is a 2D vector used for offsets, positions, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Range is a general-purpose min/max range.
// Used by SprayConfig for angle, distance, and jitter draws.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] from the global generator.
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Sample returns a random float64 in [Min, Max] drawn from src.
// A nil src falls back to the global generator.
func (r Range) Sample(src Source) float64 {
	if src == nil {
		return r.Random()
	}
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// Source yields uniformly distributed values in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it; tests substitute fixed sequences to pin
// trajectory draws.
type Source interface {
	Float64() float64
}

// Frame is the composite visual state produced by evaluating a Timeline:
// a translation, an opacity, and a rotation angle in degrees. A Frame is
// built fresh on every evaluation and never mutated afterwards.
//
// Opacity is intended to stay in [0, 1] but is not clamped. Angle is an
// unbounded scalar: interpolation never wraps it at 360°, so a track can
// spin through multiple full turns.
type Frame struct {
	Offset  Vec2
	Opacity float64
	Angle   float64
}

// IdentityFrame is the state of a symbol outside any animation: no offset,
// fully opaque, no rotation.
var IdentityFrame = Frame{Opacity: 1}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpVec2 linearly interpolates between a and b component-wise by t.
func lerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}
