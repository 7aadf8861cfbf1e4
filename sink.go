package glint

// RenderSink receives one draw request per visible particle per tick. The
// Spray calls ApplyTransform with the particle's frame and then DrawSymbol
// with the resolved symbol, always as a pair. Implementations must reset
// any transform or opacity state on each ApplyTransform call so nothing
// leaks from one particle to the next; the pairing is the push/pop of an
// immediate-mode graphics context.
type RenderSink interface {
	ApplyTransform(f Frame)
	DrawSymbol(symbol any)
}

// SymbolFunc resolves a symbol name to a renderable handle. The Spray
// calls it at most once per tick, right before the first draw, and hands
// the result to the sink unchanged; the kernel never retains or manages
// the handle. Returning nil is a wiring bug and panics at render time.
type SymbolFunc func(name string) any
