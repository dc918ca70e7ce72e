package core

import "fmt"

// Event is one input or window occurrence. Dispatch delivers it to the
// matching capability of an overlay and records whether it was consumed.
type Event interface {
	Dispatch(o Overlay)
	Handled() bool
	Kind() EventKind
	fmt.Stringer
}

type EventKind uint8

const (
	KindWindowCloseRequested EventKind = iota + 1
	KindWindowResized
	KindKeyPressed
	KindKeyReleased
	KindTextWritten
	KindMouseDown
	KindMouseUp
	KindMouseMove
	KindMouseScrolled
)

func (k EventKind) String() string {
	switch k {
	case KindWindowCloseRequested:
		return "WindowCloseRequested"
	case KindWindowResized:
		return "WindowResized"
	case KindKeyPressed:
		return "KeyPressed"
	case KindKeyReleased:
		return "KeyReleased"
	case KindTextWritten:
		return "TextWritten"
	case KindMouseDown:
		return "MouseDown"
	case KindMouseUp:
		return "MouseUp"
	case KindMouseMove:
		return "MouseMove"
	case KindMouseScrolled:
		return "MouseScrolled"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// handled holds the consumed flag shared by the input events.
type handled struct{ done bool }

func (h *handled) Handled() bool { return h.done }

// Window events carry no consumed flag: every overlay sees them.

type WindowCloseRequestedEvent struct{}

func (*WindowCloseRequestedEvent) Dispatch(o Overlay) { o.OnWindowCloseRequested() }
func (*WindowCloseRequestedEvent) Handled() bool      { return false }
func (*WindowCloseRequestedEvent) Kind() EventKind    { return KindWindowCloseRequested }
func (*WindowCloseRequestedEvent) String() string     { return "WindowCloseRequested" }

type WindowResizedEvent struct{ Width, Height int }

func (e *WindowResizedEvent) Dispatch(o Overlay) { o.OnWindowResize(e.Width, e.Height) }
func (*WindowResizedEvent) Handled() bool        { return false }
func (*WindowResizedEvent) Kind() EventKind      { return KindWindowResized }
func (e *WindowResizedEvent) String() string {
	return fmt.Sprintf("WindowResized(%dx%d)", e.Width, e.Height)
}

type KeyPressedEvent struct {
	handled
	Button Button
	Repeat bool
}

func (e *KeyPressedEvent) Dispatch(o Overlay) { e.done = o.OnKeyPress(e.Button, e.Repeat) }
func (*KeyPressedEvent) Kind() EventKind      { return KindKeyPressed }
func (e *KeyPressedEvent) String() string {
	return fmt.Sprintf("KeyPressed(%s, repeat=%t)", e.Button, e.Repeat)
}

type KeyReleasedEvent struct {
	handled
	Button Button
}

func (e *KeyReleasedEvent) Dispatch(o Overlay) { e.done = o.OnKeyRelease(e.Button) }
func (*KeyReleasedEvent) Kind() EventKind      { return KindKeyReleased }
func (e *KeyReleasedEvent) String() string     { return fmt.Sprintf("KeyReleased(%s)", e.Button) }

type TextWrittenEvent struct {
	handled
	Char rune
}

func (e *TextWrittenEvent) Dispatch(o Overlay) { e.done = o.OnTextWritten(e.Char) }
func (*TextWrittenEvent) Kind() EventKind      { return KindTextWritten }
func (e *TextWrittenEvent) String() string     { return fmt.Sprintf("TextWritten(%q)", e.Char) }

type MouseDownEvent struct {
	handled
	Button Button
}

func (e *MouseDownEvent) Dispatch(o Overlay) { e.done = o.OnMouseDown(e.Button) }
func (*MouseDownEvent) Kind() EventKind      { return KindMouseDown }
func (e *MouseDownEvent) String() string     { return fmt.Sprintf("MouseDown(%s)", e.Button) }

type MouseUpEvent struct {
	handled
	Button Button
}

func (e *MouseUpEvent) Dispatch(o Overlay) { e.done = o.OnMouseUp(e.Button) }
func (*MouseUpEvent) Kind() EventKind      { return KindMouseUp }
func (e *MouseUpEvent) String() string     { return fmt.Sprintf("MouseUp(%s)", e.Button) }

// MouseMoveEvent carries the new cursor position and the delta from the
// previously recorded one.
type MouseMoveEvent struct {
	handled
	X, Y   int
	DX, DY int
}

func (e *MouseMoveEvent) Dispatch(o Overlay) { e.done = o.OnMouseMove(e.X, e.Y, e.DX, e.DY) }
func (*MouseMoveEvent) Kind() EventKind      { return KindMouseMove }
func (e *MouseMoveEvent) String() string {
	return fmt.Sprintf("MouseMove(%d,%d delta %d,%d)", e.X, e.Y, e.DX, e.DY)
}

type MouseScrolledEvent struct {
	handled
	DX, DY float32
}

func (e *MouseScrolledEvent) Dispatch(o Overlay) { e.done = o.OnMouseScroll(e.DX, e.DY) }
func (*MouseScrolledEvent) Kind() EventKind      { return KindMouseScrolled }
func (e *MouseScrolledEvent) String() string {
	return fmt.Sprintf("MouseScrolled(%g,%g)", e.DX, e.DY)
}
