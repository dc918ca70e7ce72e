package main

import (
	"fmt"
	"time"

	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/profiler"
)

// DebugOverlay owns the engine-level shortcuts: Escape quits, Ctrl+P dumps
// the profiler capture. It shows frame timing in the window title.
type DebugOverlay struct {
	core.BaseOverlay

	engine *core.Engine
	input  core.Input
	since  time.Duration
}

func (d *DebugOverlay) OnAttach(_ core.Renderer, in core.Input) error {
	d.input = in
	return nil
}

func (d *DebugOverlay) OnUpdate(dt time.Duration, _ core.Input) {
	d.since += dt
	if d.since < 500*time.Millisecond {
		return
	}
	d.since = 0
	m := d.engine.Metrics()
	d.engine.Window().SetTitle(fmt.Sprintf("%s | %.2f ms (%.0f FPS) | %d overlays",
		d.engine.Config().Title,
		float64(m.FrameTime().Microseconds())/1000,
		m.FPS(),
		len(d.engine.Overlays())))
}

func (d *DebugOverlay) OnKeyPress(b core.Button, repeat bool) bool {
	switch {
	case b == core.KeyEscape:
		d.engine.Exit()
		return true
	case b == core.KeyP && !repeat && d.ctrlDown():
		if !profiler.Enabled() {
			core.Logger().Warn("profiler disabled, build with -tags profile")
			return true
		}
		path, err := profiler.OpenProfilerGraph()
		if err != nil {
			core.Logger().Error("profiler dump", "err", err)
		} else {
			core.Logger().Info("speedscope dump", "path", path)
		}
		return true
	}
	return false
}

func (d *DebugOverlay) ctrlDown() bool {
	return d.input.IsPressed(core.KeyLeftCtrl) || d.input.IsPressed(core.KeyRightCtrl)
}
