// Package term renders glint sprays into a tcell terminal screen.
//
// Symbols resolved for this sink must be rune values; each visible
// particle becomes one colored cell. Terminal cells cannot rotate glyphs,
// so the frame angle is not representable here and is ignored. Opacity is
// approximated by dimming the particle color toward black.
package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lanternworks/glint"
)

// Sink draws spray particles as colored runes. ApplyTransform stores the
// incoming frame and DrawSymbol renders with it; nothing carries over
// between particles. Cells that land outside the screen are clipped.
type Sink struct {
	Screen tcell.Screen
	// Origin is the cell, in screen coordinates, that frame offsets are
	// relative to.
	Origin glint.Vec2
	// Color is the particle color at full opacity.
	Color tcell.Color

	frame glint.Frame
}

// NewSink creates a Sink drawing onto screen with frame offsets measured
// from origin.
func NewSink(screen tcell.Screen, origin glint.Vec2, color tcell.Color) *Sink {
	return &Sink{Screen: screen, Origin: origin, Color: color}
}

// ApplyTransform stores f for the DrawSymbol call that follows it.
func (s *Sink) ApplyTransform(f glint.Frame) {
	s.frame = f
}

// DrawSymbol places symbol at the frame's position, rounded to the
// nearest cell, in the sink color dimmed by the frame opacity.
func (s *Sink) DrawSymbol(symbol any) {
	ch, ok := symbol.(rune)
	if !ok {
		panic(fmt.Sprintf("glint: term: symbol %T is not a rune", symbol))
	}

	fx, fy := s.frame.Affine(s.Origin).Apply(0, 0)
	x := int(math.Round(fx))
	y := int(math.Round(fy))
	w, h := s.Screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	style := tcell.StyleDefault.Foreground(dim(s.Color, s.frame.Opacity))
	s.Screen.SetContent(x, y, ch, nil, style)
}

// dim scales c toward black by opacity.
func dim(c tcell.Color, opacity float64) tcell.Color {
	if opacity > 1 {
		opacity = 1
	}
	if opacity < 0 {
		opacity = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*opacity),
		int32(float64(g)*opacity),
		int32(float64(b)*opacity),
	)
}
