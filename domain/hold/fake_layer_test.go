package hold

import (
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeLayer records everything a controller does to the surface.
type fakeLayer struct {
	nextID   int
	attached []*fakeGroup
	redraws  int
	detached int
}

type fakeGroup struct {
	id       int
	geom     BoxDimensions
	children []Node
}

type fakeRect struct {
	id       int
	w, h     float64
	attrs    RectAttrs
	sets     int
	handlers map[EventKind][]func()
}

type fakeText struct {
	id    int
	attrs TextAttrs
}

type fakeLine struct {
	id    int
	attrs LineAttrs
}

func (g *fakeGroup) NodeID() int                 { return g.id }
func (g *fakeGroup) SetGeometry(d BoxDimensions) { g.geom = d }
func (g *fakeGroup) Add(children ...Node)        { g.children = append(g.children, children...) }
func (r *fakeRect) NodeID() int                  { return r.id }
func (r *fakeRect) SetSize(w, h float64)         { r.w, r.h = w, h }
func (r *fakeRect) SetAttrs(a RectAttrs)         { r.attrs = a; r.sets++ }
func (r *fakeRect) On(kind EventKind, fn func()) { r.handlers[kind] = append(r.handlers[kind], fn) }
func (t *fakeText) NodeID() int                  { return t.id }
func (t *fakeText) SetAttrs(a TextAttrs)         { t.attrs = a }
func (l *fakeLine) NodeID() int                  { return l.id }
func (l *fakeLine) SetAttrs(a LineAttrs)         { l.attrs = a }
func (f *fakeLayer) Attach(g Group)              { f.attached = append(f.attached, g.(*fakeGroup)) }
func (f *fakeLayer) RequestRedraw()              { f.redraws++ }
func (f *fakeLayer) Detach(g Group)              { f.detached++ }
func (f *fakeLayer) id() int                     { f.nextID++; return f.nextID }
func (f *fakeLayer) CreateGroup() Group          { return &fakeGroup{id: f.id()} }
func (f *fakeLayer) CreateText() Text            { return &fakeText{id: f.id()} }
func (f *fakeLayer) CreateLine() Line            { return &fakeLine{id: f.id()} }
func (f *fakeLayer) CreateRect() Rect {
	return &fakeRect{id: f.id(), handlers: make(map[EventKind][]func())}
}

// fire dispatches kind to the handlers installed on the rect.
func (r *fakeRect) fire(kind EventKind) {
	for _, h := range r.handlers[kind] {
		h()
	}
}

// parts returns the primitives of the first attached group in creation order.
func (f *fakeLayer) parts() (*fakeGroup, *fakeRect, *fakeText, *fakeLine, *fakeLine) {
	g := f.attached[0]
	return g, g.children[0].(*fakeRect), g.children[1].(*fakeText), g.children[2].(*fakeLine), g.children[3].(*fakeLine)
}

// modeCell is a mutable mode source standing in for the toolbar.
type modeCell struct{ m SelectMode }

func (c *modeCell) Mode() SelectMode { return c.m }
