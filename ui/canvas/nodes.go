package canvas

import (
	"github.com/soocke/holdmark/domain/hold"
)

// group is a positioned container; children are drawn in insertion order.
type group struct {
	id       int
	geom     hold.BoxDimensions
	children []hold.Node
}

func (g *group) NodeID() int                      { return g.id }
func (g *group) SetGeometry(d hold.BoxDimensions) { g.geom = d }

func (g *group) Add(children ...hold.Node) {
	for _, c := range children {
		if r, ok := c.(*rect); ok {
			r.parent = g
		}
		g.children = append(g.children, c)
	}
}

// rect is an outline and the only hit-testable primitive.
type rect struct {
	id       int
	parent   *group
	w, h     float64
	attrs    hold.RectAttrs
	handlers map[hold.EventKind][]func()
}

func (r *rect) NodeID() int               { return r.id }
func (r *rect) SetSize(w, h float64)      { r.w, r.h = w, h }
func (r *rect) SetAttrs(a hold.RectAttrs) { r.attrs = a }
func (r *rect) On(k hold.EventKind, fn func()) {
	if fn != nil {
		r.handlers[k] = append(r.handlers[k], fn)
	}
}

func (r *rect) fire(k hold.EventKind) {
	for _, fn := range r.handlers[k] {
		fn()
	}
}

// bounds returns the rect in layer coordinates.
func (r *rect) bounds() hold.BoxDimensions {
	b := hold.BoxDimensions{Width: r.w, Height: r.h}
	if r.parent != nil {
		b.X, b.Y = r.parent.geom.X, r.parent.geom.Y
	}
	return b
}

type text struct {
	id    int
	attrs hold.TextAttrs
}

func (t *text) NodeID() int               { return t.id }
func (t *text) SetAttrs(a hold.TextAttrs) { t.attrs = a }

type line struct {
	id    int
	attrs hold.LineAttrs
}

func (l *line) NodeID() int               { return l.id }
func (l *line) SetAttrs(a hold.LineAttrs) { l.attrs = a }

var (
	_ hold.Group = (*group)(nil)
	_ hold.Rect  = (*rect)(nil)
	_ hold.Text  = (*text)(nil)
	_ hold.Line  = (*line)(nil)
)
