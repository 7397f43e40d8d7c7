// Package gui runs the tk desktop viewer around an app container.
package gui

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/holdmark/app"
	"github.com/soocke/holdmark/config"
	"github.com/soocke/holdmark/debug"
	"github.com/soocke/holdmark/ui/theme"
	"github.com/soocke/holdmark/ui/view"
)

type gui struct {
	config  *config.Config
	logger  *slog.Logger
	root    *view.RootView
	c       *app.AppContainer
	tick    time.Duration
	afterID string
	stats   *debug.StatsSlot
	stop    func()
}

// Run builds the window, loads the configured wall and blocks until it is closed.
func Run(cfg *config.Config, logger *slog.Logger) error {
	g := &gui{config: cfg, logger: logger, tick: time.Duration(cfg.TickMillis) * time.Millisecond}
	g.root = view.NewRootView(cfg.Style, logger)
	g.c = app.BuildContainer(cfg, logger, g.root, g.root)
	g.c.Annotation.SetFocusView(g.root)
	defer g.c.Close()

	App.WmTitle("holdmark")
	WmProtocol(App, "WM_DELETE_WINDOW", g.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.MaxViewW+20, cfg.MaxViewH+90))
	theme.InitStyles()
	g.root.Build(g.handlers())

	if err := g.c.LoadInputs(0); err != nil {
		Destroy(App)
		return err
	}
	g.c.StartWatcher()
	if cfg.Debug {
		g.stats = &debug.StatsSlot{}
		g.stop = debug.StartStatsLogger(time.Duration(cfg.StatsSeconds)*time.Second, logger, g.stats)
	}
	g.c.Loop.Schedule = g.scheduleUpdate
	g.c.Loop.Tick()

	App.Wait()
	return nil
}

func (g *gui) handlers() view.Handlers {
	ann := g.c.Annotation
	return view.Handlers{
		Mode:       ann.SetMode,
		FocusNext:  ann.FocusNext,
		FocusPrev:  ann.FocusPrev,
		Click:      ann.ClickFocused,
		Mark:       ann.Mark,
		Number:     ann.SetNumber,
		Delete:     ann.DeleteFocused,
		ZoomIn:     func() { ann.Zoom(g.config.ZoomStep) },
		ZoomOut:    func() { ann.Zoom(1 / g.config.ZoomStep) },
		ToggleDark: func() { theme.ToggleDark() },
		Exit:       g.exitHandler,

		PointerMove:  ann.PointerAt,
		PointerOut:   ann.PointerLeft,
		PointerClick: func(x, y int) { ann.ClickAt(x, y) },
	}
}

func (g *gui) exitHandler() {
	// Cancel scheduled after event if any.
	if g.afterID != "" {
		TclAfterCancel(g.afterID)
	}
	if g.stop != nil {
		g.stop()
	}
	Destroy(App)
}

// scheduleUpdate queues the next loop tick on Tk's event loop thread.
func (g *gui) scheduleUpdate() {
	g.stats.Publish(g.c.Layer.Stats())
	g.afterID = TclAfter(g.tick, g.c.Loop.Tick)
}
