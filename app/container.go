package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/holdmark/config"
	"github.com/soocke/holdmark/domain/detection"
	"github.com/soocke/holdmark/ui/canvas"
	"github.com/soocke/holdmark/ui/images"
	"github.com/soocke/holdmark/ui/model"
	"github.com/soocke/holdmark/ui/presenter"
)

// AppContainer assembles models, the drawing layer and presenters.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger
	Layer  *canvas.Layer
	Boxes  *model.AnnotationModel
	Modes  *model.ModeModel
	Image  image.Image

	// Presenters
	Annotation *presenter.AnnotationPresenter
	Status     *presenter.StatusPresenter
	Watcher    *presenter.DetectionsWatcher
	Loop       *presenter.Loop
}

// BuildContainer constructs all components. Views may be nil (headless use).
// No files are read until LoadInputs.
func BuildContainer(cfg *config.Config, logger *slog.Logger, wall presenter.WallView, status presenter.StatusView) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Layer = canvas.NewLayer(1, 1, logger)
	c.Boxes = model.NewAnnotationModel()
	c.Modes = model.NewModeModel(cfg.Mode())
	c.Annotation = presenter.NewAnnotationPresenter(c.Layer, c.Boxes, c.Modes, cfg.Style, wall, logger)
	c.Annotation.SetZoomLimits(cfg.MinZoom, cfg.MaxZoom)
	c.Status = presenter.NewStatusPresenter(c.Boxes, c.Modes, status)
	c.Annotation.OnChange(c.Status.Invalidate)
	if cfg.WatchDetection && cfg.DetectionsPath != "" {
		c.Watcher = presenter.NewDetectionsWatcher(cfg.DetectionsPath, logger, nil)
	}
	var reloads presenter.ReloadSource
	if c.Watcher != nil {
		reloads = c.Watcher
	}
	c.Loop = presenter.NewLoop(c.Annotation, c.Status, reloads, c.Resolve, nil)
	return c
}

// LoadInputs reads the wall image and detections named in the config and
// registers one box per detection. A non-positive scale fits the image into
// the configured view size.
func (c *AppContainer) LoadInputs(scale float64) error {
	if c.Config.ImagePath == "" {
		return fmt.Errorf("no wall image configured")
	}
	img, err := images.Load(c.Config.ImagePath)
	if err != nil {
		return err
	}
	c.Image = img
	var holds []detection.Hold
	if c.Config.DetectionsPath != "" {
		f, err := detection.Load(c.Config.DetectionsPath)
		if err != nil {
			return err
		}
		holds = c.Resolve(f)
	}
	if scale <= 0 {
		b := img.Bounds()
		scale = images.FitFactor(b.Dx(), b.Dy(), c.Config.MaxViewW, c.Config.MaxViewH)
	}
	c.Annotation.Load(img, holds, scale)
	return nil
}

// Resolve converts a detections file to holds against the loaded image,
// logging boxes whose state could not be parsed.
func (c *AppContainer) Resolve(f *detection.File) []detection.Hold {
	w, h := 0, 0
	if c.Image != nil {
		b := c.Image.Bounds()
		w, h = b.Dx(), b.Dy()
	}
	holds, skipped := f.Resolve(w, h, detection.Defaults{State: c.Config.BoxState(), Number: c.Config.DefaultNumber})
	for _, err := range skipped {
		if c.Logger != nil {
			c.Logger.Warn("detection state ignored", "error", err)
		}
	}
	return holds
}

// StartWatcher begins watching the detections file when configured.
func (c *AppContainer) StartWatcher() {
	if c.Watcher == nil {
		return
	}
	if err := c.Watcher.Start(); err != nil && c.Logger != nil {
		c.Logger.Error("detections watcher start failed", "error", err)
	}
}

// Close stops background work.
func (c *AppContainer) Close() {
	c.Watcher.Stop()
}
