package model

import (
	"github.com/soocke/holdmark/domain/hold"
)

// Counts tallies boxes per classification.
type Counts struct {
	Total      int
	Hidden     int
	Unselected int
	HandHolds  int // every hand state, starts and end included
	Starts     int
	Ends       int
	FootHolds  int
}

// AnnotationModel tracks the boxes of one wall image, the display scale
// relative to the image's natural size, and which box has keyboard focus.
type AnnotationModel struct {
	boxes   []*hold.BoxController
	classes map[int]string
	scale   float64
	focus   int
}

// NewAnnotationModel returns an empty model at scale 1 with no focus.
func NewAnnotationModel() *AnnotationModel {
	return &AnnotationModel{classes: make(map[int]string), scale: 1, focus: -1}
}

// Add appends a registered box and its detector class.
func (m *AnnotationModel) Add(c *hold.BoxController, class string) {
	if m == nil || c == nil {
		return
	}
	m.boxes = append(m.boxes, c)
	if class != "" {
		m.classes[c.ID()] = class
	}
}

func (m *AnnotationModel) Boxes() []*hold.BoxController { return m.boxes }
func (m *AnnotationModel) Len() int                     { return len(m.boxes) }
func (m *AnnotationModel) Class(id int) string          { return m.classes[id] }
func (m *AnnotationModel) Scale() float64               { return m.scale }

// SetScale records the display scale. Non-positive values are ignored.
func (m *AnnotationModel) SetScale(s float64) {
	if s > 0 {
		m.scale = s
	}
}

// Clear drops every box and the focus; the scale is kept.
func (m *AnnotationModel) Clear() {
	m.boxes = nil
	m.classes = make(map[int]string)
	m.focus = -1
}

// Focused returns the focused box or nil.
func (m *AnnotationModel) Focused() *hold.BoxController {
	if m.focus < 0 || m.focus >= len(m.boxes) {
		return nil
	}
	return m.boxes[m.focus]
}

// FocusIndex returns the focused position or -1.
func (m *AnnotationModel) FocusIndex() int { return m.focus }

// MoveFocus shifts focus by delta with wrap-around and returns the previous and new box.
// From no focus, a positive delta lands on the first box and a negative one on the last.
func (m *AnnotationModel) MoveFocus(delta int) (prev, next *hold.BoxController) {
	n := len(m.boxes)
	if n == 0 {
		return nil, nil
	}
	prev = m.Focused()
	switch {
	case m.focus < 0 && delta >= 0:
		m.focus = 0
	case m.focus < 0:
		m.focus = n - 1
	default:
		m.focus = ((m.focus+delta)%n + n) % n
	}
	return prev, m.boxes[m.focus]
}

// RemoveFocused drops the focused box and returns it. Focus stays on the same
// position, moving back one when the last box was removed.
func (m *AnnotationModel) RemoveFocused() *hold.BoxController {
	c := m.Focused()
	if c == nil {
		return nil
	}
	m.boxes = append(m.boxes[:m.focus], m.boxes[m.focus+1:]...)
	delete(m.classes, c.ID())
	if m.focus >= len(m.boxes) {
		m.focus = len(m.boxes) - 1
	}
	return c
}

// Counts tallies the current box states.
func (m *AnnotationModel) Counts() Counts {
	var c Counts
	for _, b := range m.boxes {
		c.Total++
		switch s := b.State(); {
		case s == hold.StateHidden:
			c.Hidden++
		case s == hold.StateUnselected:
			c.Unselected++
		case s == hold.StateFootHold:
			c.FootHolds++
		case s.HandHold():
			c.HandHolds++
			switch s {
			case hold.StateSingleStartHandHold, hold.StateDualStartHandHold:
				c.Starts++
			case hold.StateEndHandHold:
				c.Ends++
			}
		}
	}
	return c
}
