package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hubastard/strata/engine/core"
	glbackend "github.com/hubastard/strata/engine/gfx/gl"
	"github.com/hubastard/strata/engine/platform"
	"github.com/hubastard/strata/engine/profiler"
)

type App struct {
	debug *DebugOverlay
}

func (a *App) OnStart(e *core.Engine) error {
	profiler.Init(1 << 16)

	if _, err := e.PushOverlayBack(NewExampleOverlay()); err != nil {
		return err
	}
	a.debug = &DebugOverlay{engine: e}
	if _, err := e.PushOverlayFront(a.debug); err != nil {
		return err
	}
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt time.Duration) {}

func (a *App) OnShutdown(e *core.Engine) {
	log.Info("sandbox stopped", "uptime", e.Uptime().Round(time.Millisecond))
}

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml engine config")
	flag.Parse()

	cfg := core.DefaultConfig()
	cfg.Title = "Strata Sandbox"
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			log.Fatal("load config", "err", err)
		}
	}
	if lvl := os.Getenv("STRATA_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	e, err := core.New(cfg, platform.NewGLFWWindow, glbackend.NewRenderer)
	if err != nil {
		log.Fatal("create engine", "err", err)
	}
	if err := e.Run(&App{}); err != nil {
		log.Fatal("run", "err", err)
	}
}
