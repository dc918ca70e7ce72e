package core

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/strata/engine/assets"
	"github.com/hubastard/strata/engine/profiler"
)

// App defines the application hooks around the overlay stack.
type App interface {
	OnStart(e *Engine) error              // called once before the first frame
	OnUpdate(e *Engine, dt time.Duration) // after every overlay updated
	OnShutdown(e *Engine)                 // after the loop, before overlays detach
}

type Stage uint8

const (
	StageCreated Stage = iota
	StageRunning
	StageExiting
	StageStopped
)

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "created"
	case StageRunning:
		return "running"
	case StageExiting:
		return "exiting"
	case StageStopped:
		return "stopped"
	default:
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
}

// shaderReloader is implemented by renderers able to recompile shaders
// in place when their sources change.
type shaderReloader interface {
	ShaderLocators() []string
	ReloadSource(path string) (int, error)
}

// Engine composes the window, the renderer, the input state and the overlay
// stack into the frame loop.
type Engine struct {
	cfg      Config
	window   Window
	renderer RendererBackend
	input    *InputState
	stack    *OverlayStack
	app      App

	stage   Stage
	running bool
	metrics FrameMetrics
	start   time.Time
	last    time.Time
	now     func() time.Time

	watcher   *assets.Watcher
	reloader  shaderReloader
	unwatched map[string]struct{} // locators the watcher rejected
}

// New creates the window and renderer and pins the input overlay at the
// front of the overlay stack.
func New(cfg Config, newWindow WindowFactory, newRenderer RendererFactory) (*Engine, error) {
	if newWindow == nil {
		return nil, ErrNoWindow
	}
	if newRenderer == nil {
		return nil, ErrNoRenderer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		if err := SetLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	in := NewInputState()
	win, err := newWindow(cfg.WindowProps(), in)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	rend, err := newRenderer(win)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	w, h := win.Size()
	rend.Resize(w, h)
	rend.SetClearColor(cfg.ClearColor)

	e := &Engine{
		cfg:      cfg,
		window:   win,
		renderer: rend,
		input:    in,
		stack:    NewOverlayStack(rend, in),
		stage:    StageCreated,
		now:      time.Now,
	}
	if _, err := e.stack.pinFront(&inputOverlay{state: in}); err != nil {
		rend.Shutdown()
		win.Destroy()
		return nil, err
	}

	if cfg.HotReload {
		e.enableHotReload()
	}
	Logger().Info("engine created", "title", cfg.Title, "width", w, "height", h)
	return e, nil
}

func (e *Engine) enableHotReload() {
	r, ok := e.renderer.(shaderReloader)
	if !ok {
		Logger().Warn("hot reload requested but renderer cannot reload shaders")
		return
	}
	w, err := assets.NewWatcher(Logger())
	if err != nil {
		Logger().Warn("hot reload disabled", "err", err)
		return
	}
	e.watcher, e.reloader = w, r
	e.unwatched = make(map[string]struct{})
}

func (e *Engine) Config() Config            { return e.cfg }
func (e *Engine) Window() Window            { return e.window }
func (e *Engine) Renderer() Renderer        { return e.renderer }
func (e *Engine) Input() Input              { return e.input }
func (e *Engine) Stage() Stage              { return e.stage }
func (e *Engine) Metrics() *FrameMetrics    { return &e.metrics }
func (e *Engine) IsRunning() bool           { return e.running }
func (e *Engine) Uptime() time.Duration     { return e.now().Sub(e.start) }
func (e *Engine) Overlays() []OverlayHandle { return e.stack.Handles() }

// PushOverlayFront adds o ahead of every application overlay. Input
// tracking always stays in front of it.
func (e *Engine) PushOverlayFront(o Overlay) (OverlayHandle, error) { return e.stack.PushFront(o) }

func (e *Engine) PushOverlayBack(o Overlay) (OverlayHandle, error) { return e.stack.PushBack(o) }

func (e *Engine) RemoveOverlay(h OverlayHandle) bool { return e.stack.Remove(h) }

// Exit stops the loop. The frame in progress still completes.
func (e *Engine) Exit() { e.running = false }

// Run executes the frame loop until Exit is called or the window asks to
// close, then tears everything down. A nil app is allowed.
func (e *Engine) Run(app App) error {
	if e.stage != StageCreated {
		return fmt.Errorf("engine already %s", e.stage)
	}
	if app == nil {
		app = nopApp{}
	}
	e.app = app
	e.stage = StageRunning
	e.running = true
	e.start = e.now()
	e.last = e.start

	if err := app.OnStart(e); err != nil {
		e.running = false
		e.stage = StageExiting
		e.teardown()
		return fmt.Errorf("app start: %w", err)
	}

	for e.running {
		e.frame()
	}

	e.stage = StageExiting
	app.OnShutdown(e)
	e.teardown()
	Logger().Info("engine exit", "frames", e.metrics.Frames())
	return nil
}

// frame runs one iteration: events, update, render, present. The order is
// fixed: input is fully dispatched before update, update before render.
func (e *Engine) frame() {
	endFrame := profiler.Start("Engine.frame")
	defer endFrame()

	now := e.now()
	dt := now.Sub(e.last)
	e.last = now

	e.reloadShaders()

	endEvents := profiler.Start("Engine.events")
	for _, ev := range e.window.Update() {
		switch ev.Kind() {
		case KindWindowCloseRequested:
			e.running = false
		case KindWindowResized:
			if r, ok := ev.(*WindowResizedEvent); ok && r.Width > 0 && r.Height > 0 {
				e.renderer.Resize(r.Width, r.Height)
			}
		}
		e.stack.Submit(ev)
	}
	if e.window.CloseRequested() {
		e.running = false
	}
	endEvents()

	endUpdate := profiler.Start("Engine.update")
	e.stack.CallUpdate(dt)
	e.app.OnUpdate(e, dt)
	endUpdate()

	endRender := profiler.Start("Engine.render")
	e.renderer.Clear()
	e.stack.CallRender()
	endRender()

	e.window.SwapBuffers()
	e.metrics.Update(dt)
}

func (e *Engine) reloadShaders() {
	if e.watcher == nil {
		return
	}
	for _, loc := range e.reloader.ShaderLocators() {
		if _, ok := e.unwatched[loc]; ok {
			continue
		}
		if err := e.watcher.Watch(loc); err != nil {
			e.unwatched[loc] = struct{}{}
			Logger().Warn("cannot watch shader source", "locator", loc, "err", err)
		}
	}
	for _, path := range e.watcher.Drain() {
		n, err := e.reloader.ReloadSource(path)
		if err != nil {
			Logger().Error("shader reload failed", "path", path, "err", err)
			continue
		}
		if n > 0 {
			Logger().Info("shader reloaded", "path", path, "shaders", n)
		}
	}
}

func (e *Engine) teardown() {
	e.stack.Close()
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			Logger().Warn("close watcher", "err", err)
		}
		e.watcher = nil
	}
	e.renderer.Shutdown()
	e.window.Destroy()
	e.stage = StageStopped
}

type nopApp struct{}

func (nopApp) OnStart(*Engine) error           { return nil }
func (nopApp) OnUpdate(*Engine, time.Duration) {}
func (nopApp) OnShutdown(*Engine)              {}
