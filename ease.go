package glint

import (
	"fmt"

	"github.com/fogleman/ease"
)

// Ease maps a normalized time t in [0, 1] to an eased fraction. The
// signature matches github.com/fogleman/ease, so its functions can be used
// directly as keyframe eases (e.g. Keyframe{..., Ease: ease.OutCubic}).
type Ease func(t float64) float64

// SmoothStep is the cubic Hermite ease with zero tangents at both ends,
// t*t*(3-2*t). It is the default ease for keyframe segments: motion starts
// and stops smoothly and never overshoots.
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// easeNames maps the names accepted in YAML timelines to easing functions.
var easeNames = map[string]Ease{
	"smooth":       SmoothStep,
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
	"out-elastic":  ease.OutElastic,
	"out-bounce":   ease.OutBounce,
}

// EaseByName returns the easing function registered under name. Recognized
// names: smooth, linear, in-quad, out-quad, in-out-quad, in-cubic,
// out-cubic, in-out-cubic, in-sine, out-sine, in-out-sine, in-expo,
// out-expo, out-elastic, out-bounce.
func EaseByName(name string) (Ease, error) {
	fn, ok := easeNames[name]
	if !ok {
		return nil, fmt.Errorf("glint: unknown ease %q", name)
	}
	return fn, nil
}
