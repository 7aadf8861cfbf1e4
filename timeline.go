package glint

// Timeline is a set of property tracks sharing one normalized progress
// domain. Tracks left nil hold the corresponding Initial field for the
// whole animation.
//
// The timeline's duration is the longest track total; shorter tracks hold
// their last keyframe's value once their own total is passed. Clamping is
// per track, never global, so progress outside [0, 1] extrapolates by
// holding: below 0 every track sits at its start, above 1 at its end. An
// overshooting clock is therefore well defined and not an error.
type Timeline struct {
	Initial Frame
	Offset  *Track[Vec2]
	Opacity *Track[float64]
	Angle   *Track[float64]
}

// Duration returns the longest track total, or 0 when no tracks are set.
func (tl *Timeline) Duration() float64 {
	d := 0.0
	if tl.Offset != nil && tl.Offset.Total() > d {
		d = tl.Offset.Total()
	}
	if tl.Opacity != nil && tl.Opacity.Total() > d {
		d = tl.Opacity.Total()
	}
	if tl.Angle != nil && tl.Angle.Total() > d {
		d = tl.Angle.Total()
	}
	return d
}

// Evaluate maps progress onto the timeline's duration and evaluates every
// track at that global elapsed time, assembling a fresh Frame. Properties
// without a track keep their Initial value. Evaluation is pure:
// deterministic in (tl, progress) with no hidden state.
func (tl *Timeline) Evaluate(progress float64) Frame {
	elapsed := progress * tl.Duration()
	f := tl.Initial
	if tl.Offset != nil {
		f.Offset = tl.Offset.Evaluate(tl.Initial.Offset, elapsed)
	}
	if tl.Opacity != nil {
		f.Opacity = tl.Opacity.Evaluate(tl.Initial.Opacity, elapsed)
	}
	if tl.Angle != nil {
		f.Angle = tl.Angle.Evaluate(tl.Initial.Angle, elapsed)
	}
	return f
}
