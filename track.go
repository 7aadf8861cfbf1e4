package glint

import "fmt"

// Keyframe is one segment of a Track: the value to reach and the time, in
// abstract duration units, spent easing into it from the previous
// keyframe's value (or the track's start value for the first keyframe).
// A nil Ease selects SmoothStep.
type Keyframe[T any] struct {
	Value    T
	Duration float64
	Ease     Ease
}

// LerpFunc linearly interpolates between a and b by t.
type LerpFunc[T any] func(a, b T, t float64) T

// Track is an ordered keyframe sequence for one animated property. Tracks
// are immutable after construction and safe to share between timelines.
type Track[T any] struct {
	keys  []Keyframe[T]
	total float64
	lerp  LerpFunc[T]
}

// NewTrack creates a Track from at least one keyframe. It returns an error
// if keys is empty or any keyframe has a non-positive duration.
func NewTrack[T any](lerp LerpFunc[T], keys ...Keyframe[T]) (*Track[T], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("glint: track needs at least one keyframe")
	}
	for i, k := range keys {
		if k.Duration <= 0 {
			return nil, fmt.Errorf("glint: keyframe %d: duration must be positive, got %v", i, k.Duration)
		}
	}
	return newTrack(lerp, append([]Keyframe[T](nil), keys...)...), nil
}

// newTrack builds a track from keyframes already known to be valid.
func newTrack[T any](lerp LerpFunc[T], keys ...Keyframe[T]) *Track[T] {
	total := 0.0
	for _, k := range keys {
		total += k.Duration
	}
	return &Track[T]{keys: keys, total: total, lerp: lerp}
}

// NewOffsetTrack creates a Track of Vec2 keyframes.
func NewOffsetTrack(keys ...Keyframe[Vec2]) (*Track[Vec2], error) {
	return NewTrack(lerpVec2, keys...)
}

// NewScalarTrack creates a Track of scalar keyframes. Opacity and angle
// tracks are both scalar; angle values interpolate as plain unbounded
// scalars with no wrapping.
func NewScalarTrack(keys ...Keyframe[float64]) (*Track[float64], error) {
	return NewTrack(lerp, keys...)
}

// Total returns the sum of all keyframe durations.
func (tr *Track[T]) Total() float64 {
	return tr.total
}

// Len returns the number of keyframes.
func (tr *Track[T]) Len() int {
	return len(tr.keys)
}

// Last returns the final keyframe's target value.
func (tr *Track[T]) Last() T {
	return tr.keys[len(tr.keys)-1].Value
}

// Evaluate returns the track's value elapsed duration units in, starting
// from start. Elapsed at or below zero returns start; elapsed at or beyond
// Total returns the last keyframe's target. In between, a linear scan of
// cumulative durations finds the containing segment and its ease shapes
// the local normalized time.
func (tr *Track[T]) Evaluate(start T, elapsed float64) T {
	if elapsed <= 0 {
		return start
	}
	if elapsed >= tr.total {
		return tr.keys[len(tr.keys)-1].Value
	}
	from := start
	for _, k := range tr.keys {
		if elapsed < k.Duration {
			fn := k.Ease
			if fn == nil {
				fn = SmoothStep
			}
			return tr.lerp(from, k.Value, fn(elapsed/k.Duration))
		}
		elapsed -= k.Duration
		from = k.Value
	}
	// Floating-point drift can land exactly on the final boundary.
	return tr.keys[len(tr.keys)-1].Value
}
