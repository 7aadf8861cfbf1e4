package glint

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionTimeline builds the canonical removal timeline for a symbol
// leaving the view along tr: the offset overshoots past the trajectory's
// endpoint, pulls back, and settles (durations 0.3/0.2/0.5 of the span);
// opacity pops to 1 over 0.2 then fades to 0 over 0.8; the angle turns one
// full revolution over 0.7 and holds for the remaining 0.3.
//
// The initial frame is transparent at the origin, so the whole effect
// fades in, flies, spins, and fades back out.
func TransitionTimeline(tr Trajectory) *Timeline {
	end := tr.EndOffset()
	return &Timeline{
		Offset: newTrack(lerpVec2,
			Keyframe[Vec2]{Value: end.Scale(1.2), Duration: 0.3},
			Keyframe[Vec2]{Value: end.Scale(0.9), Duration: 0.2},
			Keyframe[Vec2]{Value: end, Duration: 0.5},
		),
		Opacity: newTrack(lerp,
			Keyframe[float64]{Value: 1, Duration: 0.2},
			Keyframe[float64]{Value: 0, Duration: 0.8},
		),
		Angle: newTrack(lerp,
			Keyframe[float64]{Value: 360, Duration: 0.7},
			Keyframe[float64]{Value: 360, Duration: 0.3},
		),
	}
}

// Transition plays a removal timeline once over a wall-clock duration.
// Create one with NewTransition and call Update(dt) each frame, or drive
// progress yourself and call At. On "insertion" (the symbol appearing
// rather than leaving) render IdentityFrame instead of playing anything.
//
// There is no global animation manager. Users call Update themselves.
type Transition struct {
	timeline *Timeline
	tween    *gween.Tween
	progress float64
	Done     bool
}

// NewTransition creates a Transition that drives the removal timeline for
// tr from progress 0 to 1 over duration seconds. fn shapes how progress
// advances in real time (slowing or accelerating the whole timeline); nil
// means linear. The keyframe easing inside the timeline is unaffected.
func NewTransition(tr Trajectory, duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.Linear
	}
	return &Transition{
		timeline: TransitionTimeline(tr),
		tween:    gween.New(0, 1, duration, fn),
	}
}

// Update advances the transition by dt seconds and returns the frame to
// render. The second return reports completion; once true, further calls
// keep returning the timeline's end state.
func (tn *Transition) Update(dt float32) (Frame, bool) {
	if !tn.Done {
		p, finished := tn.tween.Update(dt)
		tn.progress = float64(p)
		tn.Done = finished
	}
	return tn.timeline.Evaluate(tn.progress), tn.Done
}

// At evaluates the transition's timeline at an externally driven progress,
// independent of Update's internal clock.
func (tn *Transition) At(progress float64) Frame {
	return tn.timeline.Evaluate(progress)
}

// Timeline returns the underlying removal timeline.
func (tn *Transition) Timeline() *Timeline {
	return tn.timeline
}
