// Package led projects glint sprays onto a one-dimensional LED strip and
// streams the resulting frames to an ledrx-style device over MQTT.
//
// The strip has no second axis and no glyphs: only the X component of a
// frame's offset moves a particle, and the symbol is a colorful.Color
// blended into the pixel it lands on, weighted by the frame opacity.
package led

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lanternworks/glint"
)

// Sink accumulates spray particles into a pixel strip. Call Clear before
// each tick, tick the spray, then hand Pixels to MarshalFrame or a
// Publisher.
type Sink struct {
	Pixels []colorful.Color
	// Origin is the strip index that frame offsets are relative to.
	Origin float64
	// Scale converts offset units to pixels; 0 means 1.
	Scale float64
	// Background is the pixel value restored by Clear.
	Background colorful.Color

	frame glint.Frame
}

// NewSink creates a strip sink with n pixels, cleared to background.
func NewSink(n int, origin float64, background colorful.Color) *Sink {
	s := &Sink{
		Pixels:     make([]colorful.Color, n),
		Origin:     origin,
		Background: background,
	}
	s.Clear()
	return s
}

// Clear resets every pixel to the background color.
func (s *Sink) Clear() {
	for i := range s.Pixels {
		s.Pixels[i] = s.Background
	}
}

// ApplyTransform stores f for the DrawSymbol call that follows it.
func (s *Sink) ApplyTransform(f glint.Frame) {
	s.frame = f
}

// DrawSymbol blends symbol into the pixel the frame lands on, in HCL
// space weighted by the frame opacity. Particles off the strip are
// clipped.
func (s *Sink) DrawSymbol(symbol any) {
	clr, ok := symbol.(colorful.Color)
	if !ok {
		panic(fmt.Sprintf("glint: led: symbol %T is not a colorful.Color", symbol))
	}

	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	i := int(math.Round(s.Origin + s.frame.Offset.X*scale))
	if i < 0 || i >= len(s.Pixels) {
		return
	}

	bias := s.frame.Opacity
	if bias < 0 {
		bias = 0
	} else if bias > 1 {
		bias = 1
	}
	s.Pixels[i] = s.Pixels[i].BlendHcl(clr, bias)
}

// MarshalFrame converts a strip to the ledrx wire format: a little-endian
// uint16 pixel count followed by 3 bytes of RGB per pixel.
func MarshalFrame(pixels []colorful.Color) []byte {
	data := make([]byte, 2, len(pixels)*3+2)
	binary.LittleEndian.PutUint16(data, uint16(len(pixels)))
	for _, p := range pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}
	return data
}

// PublisherConfig identifies the broker and the stream topic frames go to.
type PublisherConfig struct {
	Broker   string // e.g. "tcp://localhost:1883"
	ClientID string
	Username string
	Password string
	Topic    string
	// OnConnect, if set, runs after every successful (re)connect.
	OnConnect mqtt.OnConnectHandler
}

// Publisher streams marshaled strip frames to an MQTT broker.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// NewPublisher connects to the broker in cfg and returns a Publisher for
// its topic.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	options := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	if cfg.OnConnect != nil {
		options.SetOnConnectHandler(cfg.OnConnect)
	}
	client := mqtt.NewClient(options)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("glint: led: connect %s: %w", cfg.Broker, token.Error())
	}
	return &Publisher{client: client, topic: cfg.Topic}, nil
}

// Publish sends one marshaled frame at QoS 2, not retained.
func (p *Publisher) Publish(pixels []colorful.Color) error {
	token := p.client.Publish(p.topic, 2, false, MarshalFrame(pixels))
	token.Wait()
	return token.Error()
}

// Close disconnects from the broker, allowing 250ms for in-flight
// messages to finish.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
