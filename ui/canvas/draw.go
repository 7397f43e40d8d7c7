package canvas

import (
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// textStrokeOffsets approximate an outline by stamping the string around its origin.
var textStrokeOffsets = [][2]float64{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

func (l *Layer) drawGroup(dc *gg.Context, g *group) {
	dc.Push()
	defer dc.Pop()
	dc.Translate(g.geom.X, g.geom.Y)
	for _, n := range g.children {
		switch v := n.(type) {
		case *rect:
			l.drawRect(dc, v)
		case *line:
			l.drawLine(dc, v)
		case *text:
			l.drawText(dc, v)
		}
	}
}

func (l *Layer) drawRect(dc *gg.Context, r *rect) {
	a := r.attrs
	if a.Opacity <= 0 {
		return
	}
	if a.Fill != "" && l.setColor(dc, a.Fill, a.Opacity) {
		dc.DrawRectangle(0, 0, r.w, r.h)
		dc.Fill()
	}
	if a.Stroke != "" && a.StrokeWidth > 0 && l.setColor(dc, a.Stroke, a.Opacity) {
		dc.SetLineWidth(a.StrokeWidth)
		dc.DrawRectangle(0, 0, r.w, r.h)
		dc.Stroke()
	}
}

func (l *Layer) drawLine(dc *gg.Context, ln *line) {
	a := ln.attrs
	if !a.Visible() || a.StrokeWidth <= 0 || !l.setColor(dc, a.Stroke, a.Opacity) {
		return
	}
	dc.SetLineCapRound()
	dc.SetLineWidth(a.StrokeWidth)
	dc.DrawLine(a.Points[0], a.Points[1], a.Points[2], a.Points[3])
	dc.Stroke()
}

// drawText anchors the label by its top-left corner.
func (l *Layer) drawText(dc *gg.Context, t *text) {
	a := t.attrs
	if a.Opacity <= 0 || a.Text == "" {
		return
	}
	dc.SetFontFace(l.fonts.face(a.FontSize))
	fill := func() {
		if l.setColor(dc, a.Fill, a.Opacity) {
			dc.DrawStringAnchored(a.Text, a.X, a.Y, 0, 1)
		}
	}
	stroke := func() {
		if a.Stroke == "" || a.StrokeWidth <= 0 || !l.setColor(dc, a.Stroke, a.Opacity) {
			return
		}
		for _, o := range textStrokeOffsets {
			dc.DrawStringAnchored(a.Text, a.X+o[0]*a.StrokeWidth, a.Y+o[1]*a.StrokeWidth, 0, 1)
		}
	}
	if a.FillAfterStroke {
		stroke()
		fill()
		return
	}
	fill()
	stroke()
}

// setColor applies a hex color with opacity. Unparseable colors are logged
// once per value and skip the primitive.
func (l *Layer) setColor(dc *gg.Context, hex string, opacity float64) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		if _, seen := l.badColors[hex]; !seen {
			l.badColors[hex] = struct{}{}
			if l.logger != nil {
				l.logger.Warn("invalid color", "value", hex, "error", err)
			}
		}
		return false
	}
	if opacity > 1 {
		opacity = 1
	}
	dc.SetRGBA(c.R, c.G, c.B, opacity)
	return true
}
