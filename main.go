package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soocke/holdmark/app"
	"github.com/soocke/holdmark/app/gui"
	"github.com/soocke/holdmark/config"
	"github.com/soocke/holdmark/domain/hold"
)

func main() {
	var (
		cfgPath    = flag.String("config", "holdmark.json", "path to JSON config")
		imagePath  = flag.String("image", "", "wall photo (overrides config)")
		detections = flag.String("detections", "", "detections JSON (overrides config)")
		renderOut  = flag.String("render", "", "render headless to this PNG/WebP file and exit")
		inspect    = flag.Bool("inspect", false, "print the boxes as a table and exit")
		scale      = flag.Float64("scale", 1, "headless resize factor applied before rendering")
		mode       = flag.String("mode", "", "select mode: draw, hand or foot")
		clicks     = flag.String("click", "", "headless: comma separated box ids to click")
		debugFlag  = flag.Bool("debug", false, "debug logging and runtime stats")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	level := slog.LevelInfo
	if *debugFlag || cfg.Debug {
		cfg.Debug = true
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *imagePath != "" {
		cfg.ImagePath = *imagePath
	}
	if *detections != "" {
		cfg.DetectionsPath = *detections
	}
	if *mode != "" {
		m, err := hold.ParseSelectMode(*mode)
		if err != nil {
			fail(logger, err)
		}
		cfg.SelectMode = m.String()
	}

	if *renderOut == "" && !*inspect {
		if err := gui.Run(cfg, logger); err != nil {
			fail(logger, err)
		}
		return
	}
	if err := runHeadless(cfg, logger, *renderOut, *inspect, *scale, *clicks); err != nil {
		fail(logger, err)
	}
}

func runHeadless(cfg *config.Config, logger *slog.Logger, out string, inspect bool, scale float64, clicks string) error {
	ids, err := app.ParseClicks(clicks)
	if err != nil {
		return err
	}
	cfg.WatchDetection = false
	c := app.BuildContainer(cfg, logger, nil, nil)
	defer c.Close()
	if err := c.LoadInputs(1); err != nil {
		return err
	}
	if err := c.ApplyClicks(ids); err != nil {
		return err
	}
	if out != "" {
		if err := c.RenderPNG(out, scale); err != nil {
			return err
		}
	}
	if inspect {
		return c.Inspect(os.Stdout)
	}
	return nil
}

func fail(logger *slog.Logger, err error) {
	logger.Error("holdmark failed", "error", err)
	fmt.Fprintln(os.Stderr, "holdmark:", err)
	os.Exit(1)
}
