package glint

import "math"

// Trajectory is one particle's randomized flight profile: a launch
// direction in degrees and a travel distance in abstract units. Both are
// drawn once at creation and never change; re-rolls happen only by
// creating a new Trajectory on the next trigger cycle.
type Trajectory struct {
	Angle    float64
	Distance float64
}

// NewTrajectory draws a Trajectory from the given ranges: two independent
// uniform samples from src. A nil src uses the global generator.
func NewTrajectory(src Source, angle, distance Range) Trajectory {
	return Trajectory{
		Angle:    angle.Sample(src),
		Distance: distance.Sample(src),
	}
}

// EndOffset returns the displacement reached at the end of the flight,
// (cos(angle)*distance, sin(angle)*distance), converting the angle from
// degrees to radians at the trig call.
func (t Trajectory) EndOffset() Vec2 {
	sin, cos := math.Sincos(t.Angle * math.Pi / 180)
	return Vec2{cos * t.Distance, sin * t.Distance}
}
