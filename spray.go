package glint

import "fmt"

// ParticleTimeline builds the canonical per-particle timeline for tr: a
// straight flight to the trajectory's end offset spanning the whole
// duration, opacity up to 1 over 0.2 then down to 0 over 0.8, and a 45°
// twist that waits out the first 0.7. It differs from TransitionTimeline
// only in shape; both run through the same evaluator.
func ParticleTimeline(tr Trajectory) *Timeline {
	return &Timeline{
		Offset: newTrack(lerpVec2,
			Keyframe[Vec2]{Value: tr.EndOffset(), Duration: 1.0},
		),
		Opacity: newTrack(lerp,
			Keyframe[float64]{Value: 1, Duration: 0.2},
			Keyframe[float64]{Value: 0, Duration: 0.8},
		),
		Angle: newTrack(lerp,
			Keyframe[float64]{Value: 0, Duration: 0.7},
			Keyframe[float64]{Value: 45, Duration: 0.3},
		),
	}
}

// particle holds per-particle spray state. Unexported; managed by Spray.
// Trajectory draws and the start time are fixed at spawn; everything else
// is recomputed from them on every tick.
type particle struct {
	timeline *Timeline
	start    float64
}

// Spray simulates one trigger-driven burst of particles. A change of the
// trigger value spawns a full cycle: every particle gets an independent
// random trajectory and a random start delay within the configured jitter
// window. Each Tick recomputes every particle's progress from the shared
// clock and draws the visible ones through the configured sink.
//
// A Spray is single-threaded: SetTrigger and Tick must run on the same
// goroutine (or be externally serialized). Ticks are idempotent, so a
// host may freely pause, resume, or repeat them.
type Spray struct {
	cfg       SprayConfig
	duration  float64 // per-particle duration within the cycle
	trigger   any
	triggered bool
	particles []particle
	alive     int
}

// NewSpray validates cfg and creates an idle Spray with a preallocated
// particle pool. Configuration errors are returned immediately; nothing is
// deferred to the first trigger.
func NewSpray(cfg SprayConfig) (*Spray, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Spray{
		cfg:       cfg,
		duration:  cfg.CycleDuration - cfg.MaxStartJitter,
		particles: make([]particle, cfg.Particles),
	}, nil
}

// SetTrigger records a new trigger value at time now. A changed value
// (compared with ==, so trigger values must be comparable) abandons any
// in-flight cycle outright and spawns a fresh one; writing the current
// value again is a no-op. The first call always starts a cycle.
func (s *Spray) SetTrigger(value any, now float64) {
	if s.triggered && value == s.trigger {
		return
	}
	s.trigger = value
	s.triggered = true
	s.spawn(now)
}

// spawn fills the pool with a fresh cycle's particles.
func (s *Spray) spawn(now float64) {
	jitter := Range{0, s.cfg.MaxStartJitter}
	for i := range s.particles {
		tr := NewTrajectory(s.cfg.Rand, s.cfg.Angle, s.cfg.Distance)
		s.particles[i] = particle{
			timeline: ParticleTimeline(tr),
			start:    now + jitter.Sample(s.cfg.Rand),
		}
	}
	s.alive = len(s.particles)
}

// Tick advances the spray to time now. Expired particles (progress at or
// beyond 1) are pruned with swap-remove; pending ones (start time still in
// the future) are skipped; each remaining particle's timeline is evaluated
// at its own progress and drawn through the sink. The return value reports
// whether the cycle still has pending or active particles; once false the
// host may stop ticking until the next trigger.
//
// Every tick is a complete recomputation from (now, start times). Nothing
// is integrated frame to frame, so ticks may be dropped or repeated freely.
func (s *Spray) Tick(now float64) bool {
	// Prune expired particles, swap-remove.
	i := 0
	for i < s.alive {
		if now-s.particles[i].start >= s.duration {
			s.alive--
			s.particles[i] = s.particles[s.alive]
			continue
		}
		i++
	}
	if s.alive == 0 {
		return false
	}

	// The symbol is resolved at most once per tick, right before the
	// first draw. A tick where every particle is still pending never
	// asks for it.
	var symbol any
	resolved := false

	for i := 0; i < s.alive; i++ {
		p := &s.particles[i]
		if now < p.start {
			continue
		}
		if !resolved {
			symbol = s.cfg.Symbols(s.cfg.Symbol)
			if symbol == nil {
				panic(fmt.Sprintf("glint: symbol %q not found", s.cfg.Symbol))
			}
			resolved = true
		}
		progress := (now - p.start) / s.duration
		s.cfg.Sink.ApplyTransform(p.timeline.Evaluate(progress))
		s.cfg.Sink.DrawSymbol(symbol)
	}
	return true
}

// Active reports whether the current cycle still has particles that have
// not expired, as of the last Tick or SetTrigger.
func (s *Spray) Active() bool {
	return s.alive > 0
}

// Alive returns the number of particles not yet pruned.
func (s *Spray) Alive() int {
	return s.alive
}

// Trigger returns the last trigger value, or nil before the first
// SetTrigger.
func (s *Spray) Trigger() any {
	return s.trigger
}

// Config returns a pointer to the spray's config for live tuning of the
// random ranges. Pool size and durations are fixed at construction.
func (s *Spray) Config() *SprayConfig {
	return &s.cfg
}
