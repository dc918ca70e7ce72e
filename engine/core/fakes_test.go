package core

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hubastard/strata/engine/colors"
)

func init() {
	SetLogger(log.New(io.Discard))
}

// recorder collects callback traces from several overlays in call order.
type recorder struct{ calls []string }

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

// traceOverlay records every callback it receives under its name.
type traceOverlay struct {
	name      string
	rec       *recorder
	consume   map[EventKind]bool
	attachErr error

	onKey    func(b Button)
	onUpdate func()
	onDetach func()
}

func newTrace(name string, rec *recorder) *traceOverlay {
	return &traceOverlay{name: name, rec: rec, consume: map[EventKind]bool{}}
}

func (o *traceOverlay) OnAttach(Renderer, Input) error {
	o.rec.add("%s.attach", o.name)
	return o.attachErr
}

func (o *traceOverlay) OnDetach(Renderer) {
	o.rec.add("%s.detach", o.name)
	if o.onDetach != nil {
		o.onDetach()
	}
}

func (o *traceOverlay) OnUpdate(time.Duration, Input) {
	o.rec.add("%s.update", o.name)
	if o.onUpdate != nil {
		o.onUpdate()
	}
}

func (o *traceOverlay) OnRender(Renderer) { o.rec.add("%s.render", o.name) }

func (o *traceOverlay) OnWindowCloseRequested() { o.rec.add("%s.close", o.name) }

func (o *traceOverlay) OnWindowResize(w, h int) { o.rec.add("%s.resize(%d,%d)", o.name, w, h) }

func (o *traceOverlay) OnKeyPress(b Button, repeat bool) bool {
	o.rec.add("%s.key(%s,%t)", o.name, b, repeat)
	if o.onKey != nil {
		o.onKey(b)
	}
	return o.consume[KindKeyPressed]
}

func (o *traceOverlay) OnKeyRelease(b Button) bool {
	o.rec.add("%s.keyup(%s)", o.name, b)
	return o.consume[KindKeyReleased]
}

func (o *traceOverlay) OnTextWritten(c rune) bool {
	o.rec.add("%s.text(%c)", o.name, c)
	return o.consume[KindTextWritten]
}

func (o *traceOverlay) OnMouseDown(b Button) bool {
	o.rec.add("%s.down(%s)", o.name, b)
	return o.consume[KindMouseDown]
}

func (o *traceOverlay) OnMouseUp(b Button) bool {
	o.rec.add("%s.up(%s)", o.name, b)
	return o.consume[KindMouseUp]
}

func (o *traceOverlay) OnMouseMove(x, y, dx, dy int) bool {
	o.rec.add("%s.move(%d,%d,%d,%d)", o.name, x, y, dx, dy)
	return o.consume[KindMouseMove]
}

func (o *traceOverlay) OnMouseScroll(dx, dy float32) bool {
	o.rec.add("%s.scroll(%g,%g)", o.name, dx, dy)
	return o.consume[KindMouseScrolled]
}

// fakeRenderer records the calls the engine makes on its renderer.
type fakeRenderer struct {
	rec        *recorder
	clearColor colors.Color
	width      int
	height     int
	shutdowns  int
}

var _ RendererBackend = (*fakeRenderer)(nil)

func (r *fakeRenderer) Clear()                       { r.rec.add("renderer.clear") }
func (r *fakeRenderer) SetClearColor(c colors.Color) { r.clearColor = c }
func (r *fakeRenderer) CreateShader(string) (ShaderHandle, error) {
	return NoShader, errors.New("not supported")
}
func (r *fakeRenderer) BindShader(ShaderHandle)                  {}
func (r *fakeRenderer) DeleteShader(ShaderHandle)                {}
func (r *fakeRenderer) SetUniform(ShaderHandle, string, Uniform) {}
func (r *fakeRenderer) CreateMesh(Vertices, BufferLayout, Indices) (MeshHandle, error) {
	return NoMesh, errors.New("not supported")
}
func (r *fakeRenderer) BindMesh(MeshHandle)             {}
func (r *fakeRenderer) DeleteMesh(MeshHandle)           {}
func (r *fakeRenderer) Render(MeshHandle, ShaderHandle) {}
func (r *fakeRenderer) Resize(w, h int)                 { r.width, r.height = w, h }
func (r *fakeRenderer) Shutdown()                       { r.shutdowns++ }

// fakeWindow replays one batch of events per Update call.
type fakeWindow struct {
	rec       *recorder
	frames    [][]Event
	close     bool
	width     int
	height    int
	title     string
	destroyed int
}

var _ Window = (*fakeWindow)(nil)

func (w *fakeWindow) Update() []Event {
	w.rec.add("window.update")
	if len(w.frames) == 0 {
		return nil
	}
	evs := w.frames[0]
	w.frames = w.frames[1:]
	return evs
}

func (w *fakeWindow) CloseRequested() bool { return w.close }
func (w *fakeWindow) SwapBuffers()         { w.rec.add("window.swap") }
func (w *fakeWindow) Size() (int, int)     { return w.width, w.height }
func (w *fakeWindow) SetTitle(t string)    { w.title = t }
func (w *fakeWindow) Destroy()             { w.destroyed++ }
