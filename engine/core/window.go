package core

// WindowProps are the startup parameters of the native window.
type WindowProps struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window abstraction. Update polls the platform and returns the events
// gathered since the previous call, in the order they occurred.
type Window interface {
	Update() []Event
	CloseRequested() bool
	SwapBuffers()
	Size() (int, int)
	SetTitle(title string)
	Destroy()
}

// WindowFactory creates the window. The Input lets the adapter compute
// mouse-move deltas from the last recorded cursor position.
type WindowFactory func(props WindowProps, in Input) (Window, error)

// RendererFactory creates the renderer once the window (and its graphics
// context) exists.
type RendererFactory func(win Window) (RendererBackend, error)
