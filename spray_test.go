package glint

import "testing"

// drainSink counts sink calls without retaining anything, for alloc checks
// and benchmarks.
type drainSink struct {
	applies int
	draws   int
}

func (d *drainSink) ApplyTransform(Frame) { d.applies++ }
func (d *drainSink) DrawSymbol(any)       { d.draws++ }

// recordSink captures every frame and symbol handed to it.
type recordSink struct {
	frames  []Frame
	symbols []any
}

func (r *recordSink) ApplyTransform(f Frame) { r.frames = append(r.frames, f) }
func (r *recordSink) DrawSymbol(s any)       { r.symbols = append(r.symbols, s) }

func (r *recordSink) reset() {
	r.frames = r.frames[:0]
	r.symbols = r.symbols[:0]
}

// sprayTestConfig pins every random range so trajectories are fully
// deterministic: angle 90°, distance 50, no start jitter.
func sprayTestConfig(sink RenderSink) SprayConfig {
	cfg := DefaultSprayConfig()
	cfg.Particles = 3
	cfg.CycleDuration = 1.0
	cfg.MaxStartJitter = 0
	cfg.Angle = Range{90, 90}
	cfg.Distance = Range{50, 50}
	cfg.Symbols = func(name string) any { return "glyph:" + name }
	cfg.Sink = sink
	return cfg
}

func TestNewSprayValidation(t *testing.T) {
	if _, err := NewSpray(sprayTestConfig(&drainSink{})); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*SprayConfig)
	}{
		{"zero particles", func(c *SprayConfig) { c.Particles = 0 }},
		{"negative particles", func(c *SprayConfig) { c.Particles = -5 }},
		{"zero cycle", func(c *SprayConfig) { c.CycleDuration = 0 }},
		{"negative jitter", func(c *SprayConfig) { c.MaxStartJitter = -0.1 }},
		{"jitter swallows cycle", func(c *SprayConfig) { c.MaxStartJitter = 1.0 }},
		{"inverted angle range", func(c *SprayConfig) { c.Angle = Range{90, 10} }},
		{"inverted distance range", func(c *SprayConfig) { c.Distance = Range{100, 25} }},
		{"nil symbols", func(c *SprayConfig) { c.Symbols = nil }},
		{"nil sink", func(c *SprayConfig) { c.Sink = nil }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := sprayTestConfig(&drainSink{})
			c.mutate(&cfg)
			if _, err := NewSpray(cfg); err == nil {
				t.Error("expected config error")
			}
		})
	}
}

func TestNewSprayPool(t *testing.T) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 500
	s, err := NewSpray(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.particles) != 500 {
		t.Errorf("pool size = %d, want 500", len(s.particles))
	}
	if s.alive != 0 {
		t.Errorf("alive = %d, want 0", s.alive)
	}
	if s.Active() {
		t.Error("spray should be idle before the first trigger")
	}
}

func TestSetTriggerSpawnsFullCycle(t *testing.T) {
	s, _ := NewSpray(sprayTestConfig(&drainSink{}))
	s.SetTrigger("burst", 10.0)
	if s.Alive() != 3 {
		t.Errorf("alive = %d, want 3", s.Alive())
	}
	if !s.Active() {
		t.Error("spray should be active after trigger")
	}
	if s.Trigger() != "burst" {
		t.Errorf("Trigger = %v, want burst", s.Trigger())
	}
}

func TestSetTriggerSameValueNoOp(t *testing.T) {
	s, _ := NewSpray(sprayTestConfig(&drainSink{}))
	s.SetTrigger("a", 5.0)
	starts := make([]float64, s.Alive())
	for i := range starts {
		starts[i] = s.particles[i].start
	}

	s.SetTrigger("a", 7.0)
	for i := range starts {
		if s.particles[i].start != starts[i] {
			t.Fatalf("particle %d respawned on a repeated trigger value", i)
		}
	}
}

func TestSingleParticleLifecycle(t *testing.T) {
	rec := &recordSink{}
	cfg := sprayTestConfig(rec)
	cfg.Particles = 1
	s, _ := NewSpray(cfg)

	s.SetTrigger(1, 10.0)
	want := ParticleTimeline(Trajectory{Angle: 90, Distance: 50})

	// At spawn: progress 0, the initial transparent frame.
	if !s.Tick(10.0) {
		t.Fatal("Tick = false with a live particle")
	}
	if len(rec.frames) != 1 {
		t.Fatalf("draws = %d, want 1", len(rec.frames))
	}
	assertNear(t, "opacity@0", rec.frames[0].Opacity, 0)
	assertNear(t, "offset.X@0", rec.frames[0].Offset.X, 0)
	assertNear(t, "offset.Y@0", rec.frames[0].Offset.Y, 0)
	assertNear(t, "angle@0", rec.frames[0].Angle, 0)

	// Midway: the frame matches the timeline at progress 0.5.
	rec.reset()
	s.Tick(10.5)
	f := rec.frames[0]
	mid := want.Evaluate(0.5)
	assertNear(t, "opacity@0.5", f.Opacity, mid.Opacity)
	assertNear(t, "offset.X@0.5", f.Offset.X, mid.Offset.X)
	assertNear(t, "offset.Y@0.5", f.Offset.Y, mid.Offset.Y)
	assertNear(t, "angle@0.5", f.Angle, mid.Angle)

	// At full duration the particle expires: pruned, not drawn.
	rec.reset()
	if s.Tick(11.0) {
		t.Error("Tick = true after the cycle expired")
	}
	if len(rec.frames) != 0 {
		t.Errorf("draws after expiry = %d, want 0", len(rec.frames))
	}
	if s.Active() {
		t.Error("spray still active after expiry")
	}
}

func TestPendingParticlesNotRendered(t *testing.T) {
	rec := &recordSink{}
	cfg := sprayTestConfig(rec)
	cfg.Particles = 1
	cfg.CycleDuration = 1.5
	cfg.MaxStartJitter = 0.5
	cfg.Rand = &seqSource{vals: []float64{0.8}} // start delay 0.4
	resolves := 0
	cfg.Symbols = func(name string) any { resolves++; return name }
	s, _ := NewSpray(cfg)

	s.SetTrigger(1, 10.0)

	// Before its start time the particle is pending: no draw, and the
	// symbol is never resolved, but the cycle reports active.
	if !s.Tick(10.2) {
		t.Fatal("Tick = false while a particle is pending")
	}
	if len(rec.frames) != 0 {
		t.Errorf("draws = %d, want 0 while pending", len(rec.frames))
	}
	if resolves != 0 {
		t.Errorf("symbol resolved %d times on an all-pending tick, want 0", resolves)
	}

	// From its start time on it renders.
	s.Tick(10.4)
	if len(rec.frames) != 1 {
		t.Errorf("draws = %d, want 1 at start time", len(rec.frames))
	}
	if resolves != 1 {
		t.Errorf("symbol resolves = %d, want 1", resolves)
	}
}

func TestTriggerChangeReplacesCycle(t *testing.T) {
	rec := &recordSink{}
	s, _ := NewSpray(sprayTestConfig(rec))

	s.SetTrigger("a", 0)
	s.Tick(0.5)
	if len(rec.frames) != 3 {
		t.Fatalf("draws = %d, want 3", len(rec.frames))
	}

	// Change the trigger mid-cycle with a different distance; every
	// frame after that must come from the new cycle's trajectories.
	s.Config().Distance = Range{200, 200}
	rec.reset()
	s.SetTrigger("b", 0.5)
	if s.Alive() != 3 {
		t.Fatalf("alive = %d, want a full replacement cycle", s.Alive())
	}

	s.Tick(0.75) // progress 0.25 in the new cycle
	if len(rec.frames) != 3 {
		t.Fatalf("draws = %d, want 3", len(rec.frames))
	}
	want := ParticleTimeline(Trajectory{Angle: 90, Distance: 200}).Evaluate(0.25)
	for _, f := range rec.frames {
		assertNear(t, "offset.X", f.Offset.X, want.Offset.X)
		assertNear(t, "offset.Y", f.Offset.Y, want.Offset.Y)
	}
}

func TestRapidTriggerChangesLastWins(t *testing.T) {
	rec := &recordSink{}
	s, _ := NewSpray(sprayTestConfig(rec))

	s.SetTrigger("a", 0)
	s.Config().Distance = Range{80, 80}
	s.SetTrigger("b", 0.1)
	s.Config().Distance = Range{120, 120}
	s.SetTrigger("c", 0.2)

	if s.Trigger() != "c" {
		t.Errorf("Trigger = %v, want c", s.Trigger())
	}
	if s.Alive() != 3 {
		t.Errorf("alive = %d, want 3", s.Alive())
	}

	s.Tick(0.7) // progress 0.5 for the "c" cycle
	want := ParticleTimeline(Trajectory{Angle: 90, Distance: 120}).Evaluate(0.5)
	for _, f := range rec.frames {
		assertNear(t, "offset.Y", f.Offset.Y, want.Offset.Y)
	}
}

func TestTickIdempotent(t *testing.T) {
	rec := &recordSink{}
	s, _ := NewSpray(sprayTestConfig(rec))
	s.SetTrigger(7, 0)

	s.Tick(0.4)
	first := append([]Frame(nil), rec.frames...)
	rec.reset()
	s.Tick(0.4)

	if len(rec.frames) != len(first) {
		t.Fatalf("second tick drew %d frames, first drew %d", len(rec.frames), len(first))
	}
	for i := range first {
		if rec.frames[i] != first[i] {
			t.Errorf("frame %d = %+v, want %+v", i, rec.frames[i], first[i])
		}
	}
	if s.Alive() != 3 {
		t.Errorf("alive = %d after repeated ticks, want 3", s.Alive())
	}
}

func TestJitterWithinBounds(t *testing.T) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 100
	cfg.CycleDuration = 1.5
	cfg.MaxStartJitter = 1.0
	cfg.Angle = Range{0, 360}
	cfg.Distance = Range{25, 100}
	s, _ := NewSpray(cfg)

	s.SetTrigger(true, 5.0)
	distinct := false
	for i := range s.particles {
		start := s.particles[i].start
		if start < 5.0 || start >= 6.0 {
			t.Fatalf("start = %v, outside [5, 6)", start)
		}
		if start != s.particles[0].start {
			distinct = true
		}
	}
	if !distinct {
		t.Error("all 100 start delays identical; jitter not applied")
	}
}

func TestExpiryPrunesIncrementally(t *testing.T) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.CycleDuration = 1.6
	cfg.MaxStartJitter = 0.6
	cfg.Rand = &seqSource{vals: []float64{0, 0.5, 0.999}}
	s, _ := NewSpray(cfg)

	s.SetTrigger(1, 0) // starts 0, 0.3, 0.5994; per-particle duration 1.0

	s.Tick(0.9)
	if s.Alive() != 3 {
		t.Errorf("alive@0.9 = %d, want 3", s.Alive())
	}
	s.Tick(1.05)
	if s.Alive() != 2 {
		t.Errorf("alive@1.05 = %d, want 2", s.Alive())
	}
	s.Tick(1.35)
	if s.Alive() != 1 {
		t.Errorf("alive@1.35 = %d, want 1", s.Alive())
	}
	if s.Tick(1.7) {
		t.Error("Tick = true after every particle expired")
	}
	if s.Alive() != 0 {
		t.Errorf("alive@1.7 = %d, want 0", s.Alive())
	}
}

func TestMissingSymbolPanics(t *testing.T) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Symbols = func(string) any { return nil }
	s, _ := NewSpray(cfg)
	s.SetTrigger(1, 0)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing symbol, got none")
		}
	}()
	s.Tick(0.5) // should panic
}

func TestSymbolResolvedOncePerTick(t *testing.T) {
	resolves := 0
	cfg := sprayTestConfig(&drainSink{})
	cfg.Symbols = func(name string) any { resolves++; return name }
	s, _ := NewSpray(cfg)
	s.SetTrigger(1, 0)

	s.Tick(0.1)
	s.Tick(0.2)
	s.Tick(0.3)
	if resolves != 3 {
		t.Errorf("resolves = %d, want 1 per tick over 3 ticks", resolves)
	}
}

func TestSinkCallsArePaired(t *testing.T) {
	rec := &recordSink{}
	s, _ := NewSpray(sprayTestConfig(rec))
	s.SetTrigger(1, 0)

	s.Tick(0.25)
	s.Tick(0.5)
	if len(rec.frames) != len(rec.symbols) {
		t.Errorf("ApplyTransform calls = %d, DrawSymbol calls = %d, want equal",
			len(rec.frames), len(rec.symbols))
	}
	for _, sym := range rec.symbols {
		if sym != "glyph:particle" {
			t.Errorf("symbol = %v, want glyph:particle", sym)
		}
	}
}

func TestConfigPointerForLiveTuning(t *testing.T) {
	s, _ := NewSpray(sprayTestConfig(&drainSink{}))
	s.Config().Distance = Range{1, 2}
	if s.cfg.Distance != (Range{1, 2}) {
		t.Error("Config() should return pointer to internal config")
	}
}

func TestZeroAllocsDuringTick(t *testing.T) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 1000
	sym := any("dot")
	cfg.Symbols = func(string) any { return sym }
	s, _ := NewSpray(cfg)
	s.SetTrigger(1, 0)

	allocs := testing.AllocsPerRun(100, func() {
		s.Tick(0.5)
	})
	if allocs > 0 {
		t.Errorf("Tick allocs = %f, want 0", allocs)
	}
}

// --- Benchmarks ---

func BenchmarkSprayTick_30(b *testing.B) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 30
	sym := any("dot")
	cfg.Symbols = func(string) any { return sym }
	s, _ := NewSpray(cfg)
	s.SetTrigger(1, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.Tick(0.5)
	}
}

func BenchmarkSprayTick_10000(b *testing.B) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 10000
	sym := any("dot")
	cfg.Symbols = func(string) any { return sym }
	s, _ := NewSpray(cfg)
	s.SetTrigger(1, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.Tick(0.5)
	}
}

func BenchmarkSprayCycle_1000(b *testing.B) {
	cfg := sprayTestConfig(&drainSink{})
	cfg.Particles = 1000
	cfg.MaxStartJitter = 0.5
	cfg.CycleDuration = 1.5
	sym := any("dot")
	cfg.Symbols = func(string) any { return sym }
	s, _ := NewSpray(cfg)

	b.ReportAllocs()
	b.ResetTimer()
	n := 0
	for b.Loop() {
		n++
		s.SetTrigger(n, 0)
		for now := 0.0; now < 1.5; now += 1.0 / 60.0 {
			s.Tick(now)
		}
	}
}
