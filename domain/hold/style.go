package hold

import (
	"math"
	"strconv"
)

// OutlineStyle is the persisted form of an outline attribute set.
type OutlineStyle struct {
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
	Opacity     float64 `json:"opacity"`
	Fill        string  `json:"fill,omitempty"`
}

func (o OutlineStyle) attrs() RectAttrs {
	return RectAttrs{Stroke: o.Stroke, StrokeWidth: o.StrokeWidth, Opacity: o.Opacity, Fill: o.Fill}
}

// LabelStyle configures the numbering text.
type LabelStyle struct {
	FontSize    float64 `json:"font_size"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Style maps box states to concrete visuals. Derivations are pure: the same
// inputs always produce the same records.
type Style struct {
	Default          OutlineStyle `json:"default"`
	HandHold         OutlineStyle `json:"handhold"`
	FootHold         OutlineStyle `json:"foothold"`
	HoverStrokeWidth float64      `json:"hover_stroke_width"`
	TapeColor        string       `json:"tape_color"`
	TapeWidthFactor  float64      `json:"tape_width_factor"`
	Label            LabelStyle   `json:"label"`
}

const (
	labelGap    = 2   // px between box bottom and label top
	tapeFloor   = -10 // corner offset never exceeds this
	tape2Offset = 10  // horizontal shift of the second tape
)

// DefaultStyle returns the stock palette.
func DefaultStyle() Style {
	return Style{
		Default:          OutlineStyle{Stroke: "#ffffff", StrokeWidth: 2, Opacity: 0.6},
		HandHold:         OutlineStyle{Stroke: "#00e5ff", StrokeWidth: 3, Opacity: 1},
		FootHold:         OutlineStyle{Stroke: "#ffd600", StrokeWidth: 3, Opacity: 1},
		HoverStrokeWidth: 5,
		TapeColor:        "#ff0000",
		TapeWidthFactor:  1.5,
		Label:            LabelStyle{FontSize: 20, Fill: "#ffffff", Stroke: "#000000", StrokeWidth: 1},
	}
}

// Outline derives the outline attributes for state. Unknown states fall back
// to the default style.
func (s Style) Outline(state BoxState) RectAttrs {
	switch {
	case state == StateHidden:
		return RectAttrs{Opacity: 0, StrokeWidth: 0}
	case state == StateUnselected:
		return s.Default.attrs()
	case state.HandHold():
		return s.HandHold.attrs()
	case state == StateFootHold:
		return s.FootHold.attrs()
	default:
		return s.Default.attrs()
	}
}

// Hover returns the outline for state with the hover stroke width applied.
func (s Style) Hover(state BoxState) RectAttrs {
	a := s.Outline(state)
	a.StrokeWidth = s.HoverStrokeWidth
	return a
}

// LabelAttrs derives the label for number placed under a box of groupHeight.
// Zero means no label: the text stays in the scene with zero opacity.
func (s Style) LabelAttrs(number int, groupHeight float64) TextAttrs {
	if number == 0 {
		return TextAttrs{Opacity: 0}
	}
	return TextAttrs{
		X:               0,
		Y:               groupHeight + labelGap,
		Text:            strconv.Itoa(number),
		Opacity:         1,
		FontSize:        s.Label.FontSize,
		Fill:            s.Label.Fill,
		Stroke:          s.Label.Stroke,
		StrokeWidth:     s.Label.StrokeWidth,
		FillAfterStroke: true,
	}
}

// tapeCount returns how many tapes a state shows: two for dual start and end
// holds, one for a single start hold, none otherwise.
func tapeCount(state BoxState) int {
	switch state {
	case StateDualStartHandHold, StateEndHandHold:
		return 2
	case StateSingleStartHandHold:
		return 1
	default:
		return 0
	}
}

// Tapes derives both tape segments for a box of boxWidth whose outline uses strokeWidth.
func (s Style) Tapes(state BoxState, boxWidth, strokeWidth float64) TapePair {
	var p TapePair
	n := tapeCount(state)
	if n == 0 {
		return p
	}
	corner := math.Min(boxWidth/5, tapeFloor)
	p.Tape1 = s.tape(0, 0, corner, corner, strokeWidth)
	if n == 2 {
		p.Tape2 = s.tape(tape2Offset, 0, corner+tape2Offset, corner, strokeWidth)
	}
	return p
}

func (s Style) tape(x1, y1, x2, y2, strokeWidth float64) LineAttrs {
	return LineAttrs{
		Points:      [4]float64{x1, y1, x2, y2},
		Stroke:      s.TapeColor,
		StrokeWidth: strokeWidth * s.TapeWidthFactor,
		Opacity:     1,
	}
}
