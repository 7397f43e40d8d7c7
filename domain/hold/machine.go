package hold

// Next computes the state after a click on a box in state under mode.
//
// Clicks toggle between unselected and the mode's plain hold type. Any active
// state collapses to unselected, including start and end holds. Hidden boxes
// ignore clicks, and so does every box while the draw tool is active.
func Next(mode SelectMode, state BoxState) BoxState {
	var target BoxState
	switch mode {
	case ModeFootHold:
		target = StateFootHold
	case ModeHandHold:
		target = StateNormalHandHold
	default:
		return state
	}
	switch {
	case state == StateUnselected:
		return target
	case state.Active():
		return StateUnselected
	default:
		return state
	}
}

// StateListener is called on each state change.
type StateListener func(prev, next BoxState)

// StateMachine owns the classification and label number of one box.
type StateMachine struct {
	state     BoxState
	number    int
	listeners []StateListener
}

// NewStateMachine returns a machine starting in initial with the given label number.
func NewStateMachine(initial BoxState, number int) *StateMachine {
	if number < 0 {
		number = 0
	}
	return &StateMachine{state: initial, number: number}
}

func (m *StateMachine) Current() BoxState { return m.state }
func (m *StateMachine) Number() int       { return m.number }

// AddListener registers l for subsequent transitions.
func (m *StateMachine) AddListener(l StateListener) {
	if l != nil {
		m.listeners = append(m.listeners, l)
	}
}

// OnInteraction applies a click under mode and reports the resulting state
// and whether it changed.
func (m *StateMachine) OnInteraction(mode SelectMode) (BoxState, bool) {
	return m.transition(Next(mode, m.state))
}

// SetState forces the classification, e.g. when a hold is marked as start or end.
func (m *StateMachine) SetState(s BoxState) (BoxState, bool) { return m.transition(s) }

// SetNumber sets the label number. Negative values clear the label.
func (m *StateMachine) SetNumber(n int) {
	if n < 0 {
		n = 0
	}
	m.number = n
}

func (m *StateMachine) transition(next BoxState) (BoxState, bool) {
	prev := m.state
	if prev == next {
		return next, false
	}
	m.state = next
	for _, l := range m.listeners {
		l(prev, next)
	}
	return next, true
}
