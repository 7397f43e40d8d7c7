package canvas

import (
	"image"
	"log/slog"

	"github.com/fogleman/gg"

	"github.com/soocke/holdmark/domain/hold"
)

// Stats reports scene size and repaint coalescing.
type Stats struct {
	Groups   int
	Requests int // RequestRedraw calls
	Draws    int // actual rasterizations
}

// Layer is a retained scene of box groups drawn over a background image.
// It implements hold.Layer. RequestRedraw only marks the layer dirty; the
// owner calls Flush once per tick to rasterize.
//
// Layer is not safe for concurrent use; it lives on the UI event loop.
type Layer struct {
	width, height int
	background    image.Image
	groups        []*group
	nextID        int
	dirty         bool
	requests      int
	draws         int
	hovered       *rect
	fonts         *fontCache
	badColors     map[string]struct{}
	logger        *slog.Logger
}

// NewLayer returns an empty layer of the given pixel size.
func NewLayer(width, height int, logger *slog.Logger) *Layer {
	fonts, err := newFontCache()
	if err != nil && logger != nil {
		logger.Warn("label font unavailable, using bitmap face", "error", err)
	}
	l := &Layer{fonts: fonts, badColors: make(map[string]struct{}), logger: logger, dirty: true}
	l.SetSize(width, height)
	return l
}

func (l *Layer) id() int { l.nextID++; return l.nextID }

func (l *Layer) CreateGroup() hold.Group { return &group{id: l.id()} }
func (l *Layer) CreateText() hold.Text   { return &text{id: l.id()} }
func (l *Layer) CreateLine() hold.Line   { return &line{id: l.id()} }
func (l *Layer) CreateRect() hold.Rect {
	return &rect{id: l.id(), handlers: make(map[hold.EventKind][]func())}
}

// Attach adds g on top of the scene. Groups from another layer implementation are ignored.
func (l *Layer) Attach(g hold.Group) {
	grp, ok := g.(*group)
	if !ok {
		if l.logger != nil {
			l.logger.Warn("attach of foreign group ignored", "id", g.NodeID())
		}
		return
	}
	l.groups = append(l.groups, grp)
	l.dirty = true
}

// Detach removes g from the scene.
func (l *Layer) Detach(g hold.Group) {
	for i, cur := range l.groups {
		if cur.NodeID() != g.NodeID() {
			continue
		}
		if l.hovered != nil && l.hovered.parent == cur {
			l.hovered = nil
		}
		l.groups = append(l.groups[:i], l.groups[i+1:]...)
		l.dirty = true
		return
	}
}

// Clear removes every group.
func (l *Layer) Clear() {
	l.groups = nil
	l.hovered = nil
	l.dirty = true
}

// RequestRedraw marks the layer for repaint on the next Flush.
func (l *Layer) RequestRedraw() {
	l.requests++
	l.dirty = true
}

// SetBackground sets the image drawn under the boxes, already at display scale.
func (l *Layer) SetBackground(img image.Image) {
	l.background = img
	if img != nil {
		b := img.Bounds()
		l.SetSize(b.Dx(), b.Dy())
	}
	l.dirty = true
}

// SetSize changes the raster size. Sizes below one pixel are clamped.
func (l *Layer) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	l.width, l.height = width, height
	l.dirty = true
}

func (l *Layer) Size() (int, int) { return l.width, l.height }
func (l *Layer) Dirty() bool      { return l.dirty }

func (l *Layer) Stats() Stats {
	return Stats{Groups: len(l.groups), Requests: l.requests, Draws: l.draws}
}

// Flush rasterizes the scene if any redraw was requested since the last flush.
func (l *Layer) Flush() (image.Image, bool) {
	if !l.dirty {
		return nil, false
	}
	return l.Render(), true
}

// Render rasterizes the scene unconditionally and clears the dirty flag.
func (l *Layer) Render() image.Image {
	dc := gg.NewContext(l.width, l.height)
	if l.background != nil {
		b := l.background.Bounds()
		dc.DrawImage(l.background, -b.Min.X, -b.Min.Y)
	}
	for _, g := range l.groups {
		l.drawGroup(dc, g)
	}
	l.draws++
	l.dirty = false
	return dc.Image()
}

// hit returns the topmost rect containing the point.
func (l *Layer) hit(x, y float64) *rect {
	for i := len(l.groups) - 1; i >= 0; i-- {
		g := l.groups[i]
		for j := len(g.children) - 1; j >= 0; j-- {
			if r, ok := g.children[j].(*rect); ok && r.bounds().Contains(x, y) {
				return r
			}
		}
	}
	return nil
}

// PointerMove delivers leave/enter events when the rect under the pointer changes.
func (l *Layer) PointerMove(x, y float64) {
	l.hover(l.hit(x, y))
}

// PointerOut delivers a leave event to the hovered rect, if any.
func (l *Layer) PointerOut() { l.hover(nil) }

func (l *Layer) hover(r *rect) {
	if r == l.hovered {
		return
	}
	if prev := l.hovered; prev != nil {
		l.hovered = nil
		prev.fire(hold.EventPointerLeave)
	}
	l.hovered = r
	if r != nil {
		r.fire(hold.EventPointerEnter)
	}
}

// Click delivers a click to the topmost rect at the point and reports whether one was hit.
func (l *Layer) Click(x, y float64) bool { return l.dispatch(x, y, hold.EventClick) }

// Tap is the touch equivalent of Click.
func (l *Layer) Tap(x, y float64) bool { return l.dispatch(x, y, hold.EventTap) }

func (l *Layer) dispatch(x, y float64, k hold.EventKind) bool {
	r := l.hit(x, y)
	if r == nil {
		return false
	}
	r.fire(k)
	return true
}

var _ hold.Layer = (*Layer)(nil)
