package presenter

import (
	"image"
	"log/slog"
	"math"

	"github.com/soocke/holdmark/domain/detection"
	"github.com/soocke/holdmark/domain/hold"
	"github.com/soocke/holdmark/ui/images"
	"github.com/soocke/holdmark/ui/model"
)

// Surface is the drawing layer the presenter needs: the controller-facing
// hold.Layer plus background, reset, pointer dispatch and coalesced flush.
type Surface interface {
	hold.Layer
	SetBackground(img image.Image)
	Clear()
	PointerMove(x, y float64)
	PointerOut()
	Click(x, y float64) bool
	Flush() (image.Image, bool)
}

// WallView shows the rendered wall.
type WallView interface{ UpdateWall(img image.Image) }

// FocusView shows a close-up of the focused hold.
type FocusView interface{ UpdateFocus(img image.Image) }

const (
	focusPad  = 12
	focusSize = 160
)

// AnnotationPresenter turns viewer input into box controller calls and pushes
// rendered frames to the view on Tick.
type AnnotationPresenter struct {
	surface Surface
	boxes   *model.AnnotationModel
	modes   *model.ModeModel
	style   hold.Style
	view    WallView
	focus   FocusView
	logger  *slog.Logger

	natural  image.Image
	minZoom  float64
	maxZoom  float64
	onChange func() // state, focus or box set changed
}

func NewAnnotationPresenter(surface Surface, boxes *model.AnnotationModel, modes *model.ModeModel, style hold.Style, view WallView, logger *slog.Logger) *AnnotationPresenter {
	return &AnnotationPresenter{surface: surface, boxes: boxes, modes: modes, style: style, view: view, logger: logger, minZoom: 0.1, maxZoom: 8}
}

// SetZoomLimits bounds the display scale. Invalid ranges are ignored.
func (p *AnnotationPresenter) SetZoomLimits(min, max float64) {
	if p == nil || min <= 0 || max < min {
		return
	}
	p.minZoom, p.maxZoom = min, max
}

// SetFocusView sets the close-up target; nil disables crops.
func (p *AnnotationPresenter) SetFocusView(v FocusView) {
	if p != nil {
		p.focus = v
	}
}

// OnChange registers a callback fired after any state, focus or load change.
func (p *AnnotationPresenter) OnChange(fn func()) {
	if p != nil {
		p.onChange = fn
	}
}

// Load replaces the wall image and boxes. Hold dimensions are in natural image
// pixels and are registered at the given display scale.
func (p *AnnotationPresenter) Load(img image.Image, holds []detection.Hold, scale float64) {
	if p == nil || p.surface == nil || p.boxes == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	p.natural = img
	p.boxes.SetScale(scale)
	if img != nil {
		p.surface.SetBackground(images.Scale(img, scale))
	}
	p.Replace(holds)
}

// Replace swaps the box set while keeping the image and scale.
func (p *AnnotationPresenter) Replace(holds []detection.Hold) {
	if p == nil || p.surface == nil || p.boxes == nil {
		return
	}
	p.surface.Clear()
	p.boxes.Clear()
	scale := p.boxes.Scale()
	for _, h := range holds {
		cfg := hold.ControllerConfig{ID: h.ID, Style: p.style, InitialState: h.State, Number: h.Number}
		c := hold.NewBoxController(p.surface, p.modes, cfg, p.logger)
		c.AddListener(func(prev, next hold.BoxState) {
			if p.logger != nil {
				p.logger.Debug("box state", "id", cfg.ID, "from", prev.String(), "to", next.String())
			}
			p.changed()
		})
		c.Register(h.Dims.Scale(scale))
		p.boxes.Add(c, h.Class)
	}
	p.surface.RequestRedraw()
	if p.logger != nil {
		p.logger.Info("boxes loaded", "count", len(holds), "scale", scale)
	}
	p.changed()
}

// FocusNext moves hover focus forward; the old box gets pointer-leave and the new one pointer-enter.
func (p *AnnotationPresenter) FocusNext() { p.moveFocus(1) }

// FocusPrev moves hover focus backward.
func (p *AnnotationPresenter) FocusPrev() { p.moveFocus(-1) }

func (p *AnnotationPresenter) moveFocus(delta int) {
	if p == nil || p.boxes == nil {
		return
	}
	prev, next := p.boxes.MoveFocus(delta)
	if prev != nil {
		prev.PointerLeave()
	}
	if next != nil {
		next.PointerEnter()
		p.showFocus(next)
	}
	p.changed()
}

// showFocus crops the hold out of the natural-size image.
func (p *AnnotationPresenter) showFocus(c *hold.BoxController) {
	if p.focus == nil || p.natural == nil {
		return
	}
	d := c.Dimensions().Scale(1 / p.boxes.Scale())
	crop, _, err := images.CropBox(p.natural, d, focusPad)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("focus crop failed", "id", c.ID(), "error", err)
		}
		return
	}
	img, _ := images.ScaleToFit(crop, focusSize, focusSize)
	p.focus.UpdateFocus(img)
}

// PointerAt moves the mouse pointer to (x, y) in wall pixels; boxes under it
// get hover events through the surface hit test.
func (p *AnnotationPresenter) PointerAt(x, y int) {
	if p == nil || p.surface == nil {
		return
	}
	p.surface.PointerMove(float64(x), float64(y))
}

// PointerLeft reports that the pointer left the wall.
func (p *AnnotationPresenter) PointerLeft() {
	if p == nil || p.surface == nil {
		return
	}
	p.surface.PointerOut()
}

// ClickAt clicks the topmost box at (x, y) in wall pixels and reports whether one was hit.
func (p *AnnotationPresenter) ClickAt(x, y int) bool {
	if p == nil || p.surface == nil {
		return false
	}
	return p.surface.Click(float64(x), float64(y))
}

// ClickFocused delivers a click to the focused box.
func (p *AnnotationPresenter) ClickFocused() {
	if p == nil || p.boxes == nil {
		return
	}
	if c := p.boxes.Focused(); c != nil {
		c.Click()
	}
}

// Mark sets the focused box's state directly (start, end and hidden marks).
func (p *AnnotationPresenter) Mark(s hold.BoxState) {
	if p == nil || p.boxes == nil {
		return
	}
	if c := p.boxes.Focused(); c != nil {
		c.SetState(s)
	}
}

// DeleteFocused removes the focused box from the scene and the model. Focus
// passes to the box that takes its place.
func (p *AnnotationPresenter) DeleteFocused() {
	if p == nil || p.boxes == nil {
		return
	}
	c := p.boxes.RemoveFocused()
	if c == nil {
		return
	}
	c.Unregister()
	if next := p.boxes.Focused(); next != nil {
		next.PointerEnter()
		p.showFocus(next)
	}
	if p.logger != nil {
		p.logger.Info("box deleted", "id", c.ID(), "remaining", p.boxes.Len())
	}
	p.changed()
}

// SetNumber relabels the focused box.
func (p *AnnotationPresenter) SetNumber(n int) {
	if p == nil || p.boxes == nil {
		return
	}
	if c := p.boxes.Focused(); c != nil {
		c.SetNumber(n)
		p.changed()
	}
}

// SetMode switches the global editing mode.
func (p *AnnotationPresenter) SetMode(m hold.SelectMode) {
	if p == nil || p.modes == nil {
		return
	}
	p.modes.SetMode(m)
	p.changed()
}

// Zoom multiplies the display scale by step, clamped to the zoom limits,
// and resizes every box by the effective factor. A scale already outside the
// limits (a fitted large photo) can move toward them but never further out.
func (p *AnnotationPresenter) Zoom(step float64) {
	if p == nil || p.boxes == nil || step <= 0 {
		return
	}
	old := p.boxes.Scale()
	lo, hi := math.Min(p.minZoom, old), math.Max(p.maxZoom, old)
	next := math.Min(math.Max(old*step, lo), hi)
	if next == old {
		return
	}
	p.ResizeAll(next / old)
}

// ResizeAll scales every registered box and the background by factor.
func (p *AnnotationPresenter) ResizeAll(factor float64) {
	if p == nil || p.boxes == nil || p.surface == nil {
		return
	}
	for _, c := range p.boxes.Boxes() {
		c.Resize(factor)
	}
	p.boxes.SetScale(p.boxes.Scale() * factor)
	if p.natural != nil {
		p.surface.SetBackground(images.Scale(p.natural, p.boxes.Scale()))
	}
	p.surface.RequestRedraw()
	p.changed()
}

// Tick pushes a frame to the view when the surface was dirty.
func (p *AnnotationPresenter) Tick() {
	if p == nil || p.surface == nil {
		return
	}
	img, ok := p.surface.Flush()
	if ok && p.view != nil {
		p.view.UpdateWall(img)
	}
}

func (p *AnnotationPresenter) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
