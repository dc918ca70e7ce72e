package platform

import (
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/strata/engine/core"
)

// GLFWWindow implements core.Window. GLFW callbacks fire inside PollEvents;
// they are buffered and handed to the engine by Update.
type GLFWWindow struct {
	w       *glfw.Window
	pending []core.Event
	cursor  *core.CursorTracker
}

var _ core.Window = (*GLFWWindow)(nil)

// NewGLFWWindow creates the window and its GL 3.3 core context. It must be
// called on the main thread before any GL calls.
func NewGLFWWindow(props core.WindowProps, in core.Input) (core.Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	// Mac requires the forward-compatible flag.
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(props.Width, props.Height, props.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if props.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	core.Logger().Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gw := &GLFWWindow{w: win, cursor: core.NewCursorTracker(in)}
	gw.installCallbacks()
	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) { g.pending = append(g.pending, ev) }

func (g *GLFWWindow) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) {
		g.emit(&core.WindowCloseRequestedEvent{})
	})
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(&core.WindowResizedEvent{Width: w, Height: h})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		b := translateKey(key)
		if b == core.ButtonUnknown {
			return
		}
		switch action {
		case glfw.Press:
			g.emit(&core.KeyPressedEvent{Button: b})
		case glfw.Repeat:
			g.emit(&core.KeyPressedEvent{Button: b, Repeat: true})
		case glfw.Release:
			g.emit(&core.KeyReleasedEvent{Button: b})
		}
	})
	g.w.SetCharCallback(func(_ *glfw.Window, r rune) {
		g.emit(&core.TextWrittenEvent{Char: r})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b := translateMouseButton(button)
		if b == core.ButtonUnknown {
			return
		}
		if action == glfw.Press {
			g.emit(&core.MouseDownEvent{Button: b})
		} else {
			g.emit(&core.MouseUpEvent{Button: b})
		}
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, fx, fy float64) {
		g.emit(g.cursor.Move(int(fx), int(fy)))
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(&core.MouseScrolledEvent{DX: float32(xoff), DY: float32(yoff)})
	})
}

// Update polls GLFW and returns the events gathered since the last call.
func (g *GLFWWindow) Update() []core.Event {
	g.cursor.Sync()
	glfw.PollEvents()
	evs := g.pending
	g.pending = nil
	return evs
}

func (g *GLFWWindow) CloseRequested() bool { return g.w.ShouldClose() }
func (g *GLFWWindow) SwapBuffers()         { g.w.SwapBuffers() }
func (g *GLFWWindow) Size() (int, int)     { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)    { g.w.SetTitle(t) }

func (g *GLFWWindow) Destroy() {
	if g.w == nil {
		return
	}
	g.w.Destroy()
	g.w = nil
	glfw.Terminate()
}
