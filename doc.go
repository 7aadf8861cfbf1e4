// Package glint is a small real-time animation kernel for particle sprays
// and exit transitions.
//
// Glint turns a trigger change into a burst of independently timed,
// independently aimed micro-animations: a multi-track keyframe [Timeline]
// maps a normalized progress value to a composite [Frame] (offset,
// opacity, angle), a randomized [Trajectory] gives each particle its own
// flight, and a [Spray] schedules a whole cycle on a shared clock, drawing
// every visible particle through a [RenderSink].
//
// The kernel is deliberately headless. It never opens a window or owns a
// render loop; the host supplies a trigger value, a symbol resolver, and a
// sink, then calls [Spray.Tick] with timestamps from a [TimeSource].
// Backend sinks for Ebitengine, tcell terminals, and MQTT-driven LED
// strips live in the canvas, term, and led subpackages.
//
// # Quick start
//
//	cfg := glint.DefaultSprayConfig()
//	cfg.Symbols = func(string) any { return mySymbol }
//	cfg.Sink = mySink // e.g. &canvas.Sink{Target: screen}
//
//	spray, err := glint.NewSpray(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	clock := glint.NewClock()
//	spray.SetTrigger(likeCount, clock.Now())
//	// each frame:
//	if !spray.Tick(clock.Now()) {
//		clock.Pause() // idle until the next trigger
//	}
//
// # Timelines
//
// A [Timeline] holds up to three tracks (offset, opacity, angle) sharing
// one progress domain. Tracks may have different totals; shorter ones hold
// their final value while the longest finishes. Segments ease with a cubic
// Hermite smoothstep by default; any [Ease] can be set per keyframe,
// including the functions from github.com/fogleman/ease.
//
//	fade, _ := glint.NewScalarTrack(
//		glint.Keyframe[float64]{Value: 1, Duration: 0.2},
//		glint.Keyframe[float64]{Value: 0, Duration: 0.8},
//	)
//	tl := &glint.Timeline{Opacity: fade}
//	frame := tl.Evaluate(0.35)
//
// Timelines can also be declared in YAML and loaded with [LoadTimeline];
// spray settings load with [LoadSprayConfig].
//
// # Exit transitions
//
// [NewTransition] plays the canonical removal effect (overshoot flight,
// fade, full spin) once over a wall-clock duration, driven by a gween
// tween; [Transition.At] evaluates the same timeline under an external
// progress instead.
//
// # Clocks and scheduling
//
// Sprays do not tick themselves. Hosts poll [Spray.Tick] each frame and
// may stop when it reports the cycle finished; [Clock.Pause] keeps
// animation time gapless across idle spans. [ManualClock] drives tests
// and offline rendering.
package glint
