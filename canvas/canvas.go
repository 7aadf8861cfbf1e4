// Package canvas renders glint sprays and transitions onto ebiten images.
//
// A Sink is handed to glint.SprayConfig (or used directly with a
// Transition's frames) and draws each particle as a rotated, faded image.
// Symbols resolved for this sink must be *ebiten.Image values.
package canvas

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lanternworks/glint"
)

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied; premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WhitePixel is a 1x1 white image used as the default symbol for solid
// color particles. Scale it through a wrapper image or tint it via
// Sink.Tint.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(color.White)
}

// BlendMode selects a compositing operation for particle rendering. Each
// maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// Sink draws spray particles onto Target. ApplyTransform stores the
// incoming frame and DrawSymbol renders with it, so no transform or
// opacity state survives from one particle to the next.
//
// The zero Blend is BlendNormal and a zero Tint renders white. A Sink
// keeps one DrawImageOptions and reuses it for every draw; it is not safe
// for concurrent use, matching the single-threaded kernel.
type Sink struct {
	// Target is the image drawn into. Swap it per frame when rendering
	// into ebiten's screen argument.
	Target *ebiten.Image
	// Origin is the point, in Target coordinates, that frame offsets
	// are relative to.
	Origin glint.Vec2
	// Blend is the compositing mode for every particle.
	Blend BlendMode
	// Tint multiplies the symbol color per channel.
	Tint Color

	frame glint.Frame
	op    ebiten.DrawImageOptions
}

// NewSink creates a Sink drawing onto target with frame offsets measured
// from origin.
func NewSink(target *ebiten.Image, origin glint.Vec2) *Sink {
	return &Sink{Target: target, Origin: origin, Tint: ColorWhite}
}

// ApplyTransform stores f for the DrawSymbol call that follows it.
func (s *Sink) ApplyTransform(f glint.Frame) {
	s.frame = f
}

// DrawSymbol renders symbol with the last applied frame: centered, rotated
// by the frame angle, translated to the sink origin plus the frame offset,
// and faded by the frame opacity with premultiplied alpha.
func (s *Sink) DrawSymbol(symbol any) {
	img, ok := symbol.(*ebiten.Image)
	if !ok {
		panic(fmt.Sprintf("glint: canvas: symbol %T is not an *ebiten.Image", symbol))
	}

	b := img.Bounds()

	op := &s.op
	op.GeoM.Reset()
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Rotate(s.frame.Angle * math.Pi / 180)
	op.GeoM.Translate(s.Origin.X+s.frame.Offset.X, s.Origin.Y+s.frame.Offset.Y)

	tint := s.Tint
	if tint == (Color{}) {
		tint = ColorWhite
	}
	a := float32(clamp01(s.frame.Opacity) * tint.A)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)

	op.Blend = s.Blend.EbitenBlend()
	s.Target.DrawImage(img, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
