package hold

import (
	"fmt"
	"strings"
)

// SelectMode is the globally active editing tool. It is owned by the toolbar;
// box controllers only read it when an interaction arrives.
type SelectMode int

const (
	ModeDrawBox SelectMode = iota
	ModeHandHold
	ModeFootHold
)

func (m SelectMode) String() string {
	switch m {
	case ModeDrawBox:
		return "drawbox"
	case ModeHandHold:
		return "handhold"
	case ModeFootHold:
		return "foothold"
	default:
		return "unknown"
	}
}

// ParseSelectMode accepts the names produced by String.
func ParseSelectMode(s string) (SelectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drawbox", "draw":
		return ModeDrawBox, nil
	case "handhold", "hand":
		return ModeHandHold, nil
	case "foothold", "foot":
		return ModeFootHold, nil
	}
	return ModeDrawBox, fmt.Errorf("unknown select mode %q", s)
}

// BoxState is the semantic classification of a single hold.
type BoxState int

const (
	StateHidden BoxState = iota
	StateUnselected
	StateNormalHandHold
	StateSingleStartHandHold
	StateDualStartHandHold
	StateEndHandHold
	StateFootHold
)

// InitialState assumes a route begins with two start holds.
const InitialState = StateDualStartHandHold

func (s BoxState) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateUnselected:
		return "unselected"
	case StateNormalHandHold:
		return "handhold"
	case StateSingleStartHandHold:
		return "single-start"
	case StateDualStartHandHold:
		return "dual-start"
	case StateEndHandHold:
		return "end"
	case StateFootHold:
		return "foothold"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared states.
func (s BoxState) Valid() bool { return s >= StateHidden && s <= StateFootHold }

// HandHold reports whether s renders with the active hand-hold style.
func (s BoxState) HandHold() bool {
	switch s {
	case StateNormalHandHold, StateSingleStartHandHold, StateDualStartHandHold, StateEndHandHold:
		return true
	}
	return false
}

// Active reports whether s is any selected hold (hand or foot).
func (s BoxState) Active() bool { return s.HandHold() || s == StateFootHold }

// ParseBoxState accepts the names produced by String.
func ParseBoxState(s string) (BoxState, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st := StateHidden; st <= StateFootHold; st++ {
		if st.String() == name {
			return st, nil
		}
	}
	return InitialState, fmt.Errorf("unknown box state %q", s)
}

// BoxDimensions is an axis-aligned rectangle in image pixels.
type BoxDimensions struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Scale returns d with every component multiplied by factor.
func (d BoxDimensions) Scale(factor float64) BoxDimensions {
	return BoxDimensions{X: d.X * factor, Y: d.Y * factor, Width: d.Width * factor, Height: d.Height * factor}
}

// Contains reports whether the point lies inside d (edges inclusive).
func (d BoxDimensions) Contains(x, y float64) bool {
	return x >= d.X && x <= d.X+d.Width && y >= d.Y && y <= d.Y+d.Height
}

// RectAttrs is the full visual attribute set of a box outline.
type RectAttrs struct {
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	Fill        string
}

// TextAttrs describes the numeric label drawn under a box, relative to its group.
type TextAttrs struct {
	X, Y            float64
	Text            string
	Opacity         float64
	FontSize        float64
	Fill            string
	Stroke          string
	StrokeWidth     float64
	FillAfterStroke bool
}

// LineAttrs describes one tape segment, relative to the box's top-left corner.
type LineAttrs struct {
	Points      [4]float64 // x1, y1, x2, y2
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// Visible reports whether the segment contributes pixels.
func (l LineAttrs) Visible() bool { return l.Opacity > 0 }

// TapePair holds both tape segments of a box. Hidden tapes stay in the scene with zero opacity.
type TapePair struct {
	Tape1 LineAttrs
	Tape2 LineAttrs
}

// Visible returns the number of tapes with non-zero opacity.
func (p TapePair) Visible() int {
	n := 0
	if p.Tape1.Visible() {
		n++
	}
	if p.Tape2.Visible() {
		n++
	}
	return n
}
