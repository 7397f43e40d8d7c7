package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soocke/holdmark/domain/hold"
	"github.com/soocke/holdmark/ui/images"
)

// ParseClicks parses a comma separated list of box ids such as "1,4,7".
func ParseClicks(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var ids []int
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse click %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ApplyClicks clicks the boxes with the given ids, in order, under the current mode.
func (c *AppContainer) ApplyClicks(ids []int) error {
	byID := make(map[int]*hold.BoxController, c.Boxes.Len())
	for _, b := range c.Boxes.Boxes() {
		byID[b.ID()] = b
	}
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return fmt.Errorf("click: no box with id %d", id)
		}
		b.Click()
	}
	return nil
}

// RenderPNG resizes every box by scale (ignored when 0 or 1), rasterizes the
// layer and writes it to out.
func (c *AppContainer) RenderPNG(out string, scale float64) error {
	if scale > 0 && scale != 1 {
		c.Annotation.ResizeAll(scale)
	}
	img := c.Layer.Render()
	if err := images.Save(img, out); err != nil {
		return fmt.Errorf("write render: %w", err)
	}
	if c.Logger != nil {
		b := img.Bounds()
		c.Logger.Info("render written", "path", out, "width", b.Dx(), "height", b.Dy(), "boxes", c.Boxes.Len())
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7dd3fc"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	cellWidths  = []int{5, 12, 14, 7, 28}
)

// Inspect writes a table of the boxes: id, class, state, label and geometry.
func (c *AppContainer) Inspect(w io.Writer) error {
	row := func(style lipgloss.Style, cells ...string) string {
		out := make([]string, len(cells))
		for i, s := range cells {
			out[i] = style.Copy().Width(cellWidths[i]).Render(s)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, out...)
	}
	lines := []string{row(headerStyle, "ID", "CLASS", "STATE", "LABEL", "GEOMETRY")}
	plain := lipgloss.NewStyle()
	for _, b := range c.Boxes.Boxes() {
		style := plain
		if b.State() == hold.StateHidden || b.State() == hold.StateUnselected {
			style = mutedStyle
		}
		d := b.Dimensions()
		label := "-"
		if b.Number() != 0 {
			label = strconv.Itoa(b.Number())
		}
		class := c.Boxes.Class(b.ID())
		if class == "" {
			class = "-"
		}
		lines = append(lines, row(style,
			strconv.Itoa(b.ID()), class, b.State().String(), label,
			fmt.Sprintf("%.0f,%.0f %.0fx%.0f", d.X, d.Y, d.Width, d.Height)))
	}
	n := c.Boxes.Counts()
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d boxes: %d hand (%d start, %d end), %d foot, %d hidden",
		n.Total, n.HandHolds, n.Starts, n.Ends, n.FootHolds, n.Hidden)))
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, lines...))
	return err
}
