package core

import "time"

// Overlay is a unit of application behavior living in an OverlayStack.
// Embed BaseOverlay to get the no-op default for every capability and
// override only the ones you need.
//
// The boolean input callbacks report whether the event was consumed; a
// consumed event is not delivered to overlays further down the stack.
type Overlay interface {
	// OnAttach runs once when the overlay is pushed. Resources created here
	// must be released in OnDetach. Returning an error aborts the push.
	OnAttach(r Renderer, in Input) error
	// OnDetach runs once when the overlay is removed or the stack closes.
	OnDetach(r Renderer)
	OnUpdate(dt time.Duration, in Input)
	OnRender(r Renderer)

	OnWindowCloseRequested()
	OnWindowResize(width, height int)

	OnKeyPress(b Button, repeat bool) bool
	OnKeyRelease(b Button) bool
	OnTextWritten(ch rune) bool
	OnMouseDown(b Button) bool
	OnMouseUp(b Button) bool
	OnMouseMove(x, y, dx, dy int) bool
	OnMouseScroll(dx, dy float32) bool
}

// BaseOverlay implements every Overlay capability as a no-op.
type BaseOverlay struct{}

func (BaseOverlay) OnAttach(Renderer, Input) error      { return nil }
func (BaseOverlay) OnDetach(Renderer)                   {}
func (BaseOverlay) OnUpdate(time.Duration, Input)       {}
func (BaseOverlay) OnRender(Renderer)                   {}
func (BaseOverlay) OnWindowCloseRequested()             {}
func (BaseOverlay) OnWindowResize(int, int)             {}
func (BaseOverlay) OnKeyPress(Button, bool) bool        { return false }
func (BaseOverlay) OnKeyRelease(Button) bool            { return false }
func (BaseOverlay) OnTextWritten(rune) bool             { return false }
func (BaseOverlay) OnMouseDown(Button) bool             { return false }
func (BaseOverlay) OnMouseUp(Button) bool               { return false }
func (BaseOverlay) OnMouseMove(int, int, int, int) bool { return false }
func (BaseOverlay) OnMouseScroll(float32, float32) bool { return false }
