package hold

import (
	"testing"
)

var allStates = []BoxState{
	StateHidden,
	StateUnselected,
	StateNormalHandHold,
	StateSingleStartHandHold,
	StateDualStartHandHold,
	StateEndHandHold,
	StateFootHold,
}

func TestNext_FootHoldMode(t *testing.T) {
	if got := Next(ModeFootHold, StateUnselected); got != StateFootHold {
		t.Fatalf("unselected under foothold mode: expected foothold, got %v", got)
	}
	for _, s := range []BoxState{StateNormalHandHold, StateSingleStartHandHold, StateDualStartHandHold, StateEndHandHold, StateFootHold} {
		if got := Next(ModeFootHold, s); got != StateUnselected {
			t.Fatalf("%v under foothold mode: expected unselected, got %v", s, got)
		}
	}
	if got := Next(ModeFootHold, StateHidden); got != StateHidden {
		t.Fatalf("hidden must ignore clicks, got %v", got)
	}
}

func TestNext_HandHoldMode(t *testing.T) {
	if got := Next(ModeHandHold, StateUnselected); got != StateNormalHandHold {
		t.Fatalf("unselected under handhold mode: expected handhold, got %v", got)
	}
	for _, s := range []BoxState{StateNormalHandHold, StateSingleStartHandHold, StateDualStartHandHold, StateEndHandHold, StateFootHold} {
		if got := Next(ModeHandHold, s); got != StateUnselected {
			t.Fatalf("%v under handhold mode: expected unselected, got %v", s, got)
		}
	}
	if got := Next(ModeHandHold, StateHidden); got != StateHidden {
		t.Fatalf("hidden must ignore clicks, got %v", got)
	}
}

func TestNext_DrawBoxAndUnknownModesNeverTransition(t *testing.T) {
	for _, mode := range []SelectMode{ModeDrawBox, SelectMode(42)} {
		for _, s := range allStates {
			if got := Next(mode, s); got != s {
				t.Fatalf("mode %v changed %v to %v", mode, s, got)
			}
		}
	}
}

func TestStateMachine_TogglePeriodTwo(t *testing.T) {
	for _, tc := range []struct {
		mode   SelectMode
		target BoxState
	}{
		{ModeHandHold, StateNormalHandHold},
		{ModeFootHold, StateFootHold},
	} {
		m := NewStateMachine(StateUnselected, 0)
		if s, changed := m.OnInteraction(tc.mode); s != tc.target || !changed {
			t.Fatalf("%v first click: expected %v changed, got %v changed=%v", tc.mode, tc.target, s, changed)
		}
		if s, _ := m.OnInteraction(tc.mode); s != StateUnselected {
			t.Fatalf("%v second click: expected unselected, got %v", tc.mode, s)
		}
		if s, _ := m.OnInteraction(tc.mode); s != tc.target {
			t.Fatalf("%v third click: expected %v, got %v", tc.mode, tc.target, s)
		}
	}
}

func TestStateMachine_StartMarkCollapsesOnClick(t *testing.T) {
	m := NewStateMachine(StateUnselected, 1)
	m.SetState(StateDualStartHandHold)
	if s, _ := m.OnInteraction(ModeHandHold); s != StateUnselected {
		t.Fatalf("dual start should collapse to unselected, got %v", s)
	}
}

func TestStateMachine_ListenersOnlyOnChange(t *testing.T) {
	m := NewStateMachine(StateUnselected, 0)
	var seq []BoxState
	m.AddListener(func(prev, next BoxState) { seq = append(seq, next) })
	m.OnInteraction(ModeDrawBox)
	m.OnInteraction(ModeFootHold)
	m.SetState(StateFootHold)
	m.SetState(StateEndHandHold)
	if len(seq) != 2 || seq[0] != StateFootHold || seq[1] != StateEndHandHold {
		t.Fatalf("unexpected listener sequence %v", seq)
	}
}

func TestStateMachine_NegativeNumberClears(t *testing.T) {
	m := NewStateMachine(InitialState, -3)
	if m.Number() != 0 {
		t.Fatalf("expected 0, got %d", m.Number())
	}
	m.SetNumber(7)
	m.SetNumber(-1)
	if m.Number() != 0 {
		t.Fatalf("expected 0 after negative set, got %d", m.Number())
	}
}

func TestStyle_OutlineIsPure(t *testing.T) {
	st := DefaultStyle()
	for _, s := range append(allStates, BoxState(99)) {
		if a, b := st.Outline(s), st.Outline(s); a != b {
			t.Fatalf("outline for %v not deterministic: %+v vs %+v", s, a, b)
		}
	}
}

func TestStyle_OutlineTable(t *testing.T) {
	st := DefaultStyle()
	hidden := st.Outline(StateHidden)
	if hidden.Opacity != 0 || hidden.StrokeWidth != 0 {
		t.Fatalf("hidden outline must be invisible, got %+v", hidden)
	}
	if got := st.Outline(StateUnselected); got != st.Default.attrs() {
		t.Fatalf("unselected: got %+v", got)
	}
	for _, s := range []BoxState{StateNormalHandHold, StateSingleStartHandHold, StateDualStartHandHold, StateEndHandHold} {
		if got := st.Outline(s); got != st.HandHold.attrs() {
			t.Fatalf("%v: expected handhold style, got %+v", s, got)
		}
	}
	if got := st.Outline(StateFootHold); got != st.FootHold.attrs() {
		t.Fatalf("foothold: got %+v", got)
	}
	if got := st.Outline(BoxState(-1)); got != st.Default.attrs() {
		t.Fatalf("unknown state should fall back to default, got %+v", got)
	}
}

func TestStyle_LabelAttrs(t *testing.T) {
	st := DefaultStyle()
	if l := st.LabelAttrs(0, 50); l.Opacity != 0 || l.Text != "" {
		t.Fatalf("zero label must be invisible, got %+v", l)
	}
	l := st.LabelAttrs(12, 50)
	if l.Text != "12" || l.Opacity != 1 || l.Y != 52 || l.X != 0 || !l.FillAfterStroke {
		t.Fatalf("unexpected label %+v", l)
	}
}

func TestStyle_TapeVisibility(t *testing.T) {
	st := DefaultStyle()
	want := map[BoxState]int{
		StateSingleStartHandHold: 1,
		StateDualStartHandHold:   2,
		StateEndHandHold:         2,
	}
	for _, s := range allStates {
		if got := st.Tapes(s, 100, 3).Visible(); got != want[s] {
			t.Fatalf("%v: expected %d visible tapes, got %d", s, want[s], got)
		}
	}
}

func TestStyle_TapeGeometry(t *testing.T) {
	st := DefaultStyle()
	p := st.Tapes(StateEndHandHold, 100, 4)
	if p.Tape1.Points != [4]float64{0, 0, -10, -10} {
		t.Fatalf("tape1 points %v", p.Tape1.Points)
	}
	if p.Tape2.Points != [4]float64{10, 0, 0, -10} {
		t.Fatalf("tape2 points %v", p.Tape2.Points)
	}
	if p.Tape1.StrokeWidth != 6 || p.Tape2.StrokeWidth != 6 {
		t.Fatalf("tape width should be 1.5x stroke, got %v/%v", p.Tape1.StrokeWidth, p.Tape2.StrokeWidth)
	}
	if p.Tape1.Stroke != "#ff0000" || p.Tape1.Opacity != 1 {
		t.Fatalf("tape style %+v", p.Tape1)
	}
	// Negative widths push the corner past the floor.
	if n := st.Tapes(StateSingleStartHandHold, -100, 4); n.Tape1.Points[2] != -20 {
		t.Fatalf("corner for width -100 should be -20, got %v", n.Tape1.Points[2])
	}
}

func TestParseBoxState_RoundTrip(t *testing.T) {
	for _, s := range allStates {
		got, err := ParseBoxState(s.String())
		if err != nil || got != s {
			t.Fatalf("parse %q: got %v err=%v", s.String(), got, err)
		}
	}
	if _, err := ParseBoxState("crimp"); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}
