package glint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SprayConfig controls how a Spray spawns and renders particles.
type SprayConfig struct {
	// Particles is the pool size: the number of particles spawned per
	// trigger cycle. Must be positive.
	Particles int
	// CycleDuration is the length of one cycle in seconds, from trigger
	// to the expiry of the latest-starting particle. Each particle
	// animates for CycleDuration - MaxStartJitter seconds.
	CycleDuration float64
	// MaxStartJitter is the upper bound of each particle's random start
	// delay within the cycle. Must be non-negative and strictly less
	// than CycleDuration.
	MaxStartJitter float64
	// Angle is the launch direction range in degrees.
	Angle Range
	// Distance is the travel distance range in abstract units.
	Distance Range
	// Symbol is the name handed to Symbols when a frame is drawn.
	Symbol string
	// Symbols resolves Symbol to a renderable handle. Required.
	Symbols SymbolFunc
	// Sink receives the per-particle draw calls. Required.
	Sink RenderSink
	// Rand is the random source for trajectories and jitter. Nil uses
	// the global generator.
	Rand Source
}

// DefaultSprayConfig returns the documented defaults: 30 particles, a 1.5
// second cycle with up to 1 second of start jitter, launch angles covering
// the full circle, travel distances of 25 to 100 units, and symbol name
// "particle". Symbols and Sink are runtime collaborators and must still be
// supplied before NewSpray.
func DefaultSprayConfig() SprayConfig {
	return SprayConfig{
		Particles:      30,
		CycleDuration:  1.5,
		MaxStartJitter: 1.0,
		Angle:          Range{0, 360},
		Distance:       Range{25, 100},
		Symbol:         "particle",
	}
}

// validate reports the first configuration error, if any.
func (c SprayConfig) validate() error {
	if c.Particles <= 0 {
		return fmt.Errorf("glint: spray: particles must be positive, got %d", c.Particles)
	}
	if c.CycleDuration <= 0 {
		return fmt.Errorf("glint: spray: cycle duration must be positive, got %v", c.CycleDuration)
	}
	if c.MaxStartJitter < 0 {
		return fmt.Errorf("glint: spray: max start jitter must not be negative, got %v", c.MaxStartJitter)
	}
	if c.MaxStartJitter >= c.CycleDuration {
		return fmt.Errorf("glint: spray: max start jitter %v leaves no particle duration within cycle %v", c.MaxStartJitter, c.CycleDuration)
	}
	if c.Angle.Min > c.Angle.Max {
		return fmt.Errorf("glint: spray: angle range inverted: %v > %v", c.Angle.Min, c.Angle.Max)
	}
	if c.Distance.Min > c.Distance.Max {
		return fmt.Errorf("glint: spray: distance range inverted: %v > %v", c.Distance.Min, c.Distance.Max)
	}
	if c.Symbols == nil {
		return fmt.Errorf("glint: spray: Symbols resolver is required")
	}
	if c.Sink == nil {
		return fmt.Errorf("glint: spray: Sink is required")
	}
	return nil
}

// sprayDoc is the YAML document shape for LoadSprayConfig. Pointer fields
// distinguish an omitted key from an explicit zero.
type sprayDoc struct {
	Particles      *int      `yaml:"particles"`
	CycleDuration  *float64  `yaml:"cycleDuration"`
	MaxStartJitter *float64  `yaml:"maxStartJitter"`
	Angle          *rangeDoc `yaml:"angle"`
	Distance       *rangeDoc `yaml:"distance"`
	Symbol         string    `yaml:"symbol"`
}

type rangeDoc struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LoadSprayConfig reads a YAML spray description, applying the defaults
// from DefaultSprayConfig to omitted keys. Symbols, Sink, and Rand cannot
// come from YAML; set them on the result before calling NewSpray, which
// performs the full validation.
func LoadSprayConfig(path string) (SprayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SprayConfig{}, fmt.Errorf("glint: read spray config: %w", err)
	}
	return ParseSprayConfig(data)
}

// ParseSprayConfig is LoadSprayConfig for in-memory YAML.
func ParseSprayConfig(data []byte) (SprayConfig, error) {
	var doc sprayDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return SprayConfig{}, fmt.Errorf("glint: parse spray config: %w", err)
	}
	cfg := DefaultSprayConfig()
	if doc.Particles != nil {
		cfg.Particles = *doc.Particles
	}
	if doc.CycleDuration != nil {
		cfg.CycleDuration = *doc.CycleDuration
	}
	if doc.MaxStartJitter != nil {
		cfg.MaxStartJitter = *doc.MaxStartJitter
	}
	if doc.Angle != nil {
		cfg.Angle = Range{doc.Angle.Min, doc.Angle.Max}
	}
	if doc.Distance != nil {
		cfg.Distance = Range{doc.Distance.Min, doc.Distance.Max}
	}
	if doc.Symbol != "" {
		cfg.Symbol = doc.Symbol
	}
	return cfg, nil
}

// timelineDoc is the YAML document shape for LoadTimeline.
type timelineDoc struct {
	Initial struct {
		X       float64 `yaml:"x"`
		Y       float64 `yaml:"y"`
		Opacity float64 `yaml:"opacity"`
		Angle   float64 `yaml:"angle"`
	} `yaml:"initial"`
	Offset  []offsetKeyDoc `yaml:"offset"`
	Opacity []scalarKeyDoc `yaml:"opacity"`
	Angle   []scalarKeyDoc `yaml:"angle"`
}

type offsetKeyDoc struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

type scalarKeyDoc struct {
	Value    float64 `yaml:"value"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// LoadTimeline reads a declarative keyframe timeline from a YAML file.
func LoadTimeline(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glint: read timeline: %w", err)
	}
	return ParseTimeline(data)
}

// ParseTimeline builds a Timeline from YAML. An omitted section leaves the
// corresponding track nil, so the property holds its initial value. Each
// keyframe may name an ease recognized by EaseByName; omitted means
// smooth. Track validation errors fail the parse.
func ParseTimeline(data []byte) (*Timeline, error) {
	var doc timelineDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("glint: parse timeline: %w", err)
	}
	tl := &Timeline{Initial: Frame{
		Offset:  Vec2{doc.Initial.X, doc.Initial.Y},
		Opacity: doc.Initial.Opacity,
		Angle:   doc.Initial.Angle,
	}}
	if len(doc.Offset) > 0 {
		keys := make([]Keyframe[Vec2], len(doc.Offset))
		for i, k := range doc.Offset {
			fn, err := easeFor(k.Ease)
			if err != nil {
				return nil, err
			}
			keys[i] = Keyframe[Vec2]{Value: Vec2{k.X, k.Y}, Duration: k.Duration, Ease: fn}
		}
		track, err := NewOffsetTrack(keys...)
		if err != nil {
			return nil, err
		}
		tl.Offset = track
	}
	if track, err := scalarTrackDoc(doc.Opacity); err != nil {
		return nil, err
	} else if track != nil {
		tl.Opacity = track
	}
	if track, err := scalarTrackDoc(doc.Angle); err != nil {
		return nil, err
	} else if track != nil {
		tl.Angle = track
	}
	return tl, nil
}

// scalarTrackDoc converts YAML scalar keyframes into a track; an empty
// list yields a nil track and no error.
func scalarTrackDoc(docs []scalarKeyDoc) (*Track[float64], error) {
	if len(docs) == 0 {
		return nil, nil
	}
	keys := make([]Keyframe[float64], len(docs))
	for i, k := range docs {
		fn, err := easeFor(k.Ease)
		if err != nil {
			return nil, err
		}
		keys[i] = Keyframe[float64]{Value: k.Value, Duration: k.Duration, Ease: fn}
	}
	return NewScalarTrack(keys...)
}

// easeFor resolves an optional ease name; empty selects the default.
func easeFor(name string) (Ease, error) {
	if name == "" {
		return nil, nil
	}
	return EaseByName(name)
}
