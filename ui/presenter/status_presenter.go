package presenter

import (
	"fmt"

	"github.com/soocke/holdmark/domain/hold"
	"github.com/soocke/holdmark/ui/model"
)

// CountSource provides box tallies and focus.
type CountSource interface {
	Counts() model.Counts
	Focused() *hold.BoxController
}

// StatusView shows mode, counts and the focused box.
type StatusView interface {
	SetMode(hold.SelectMode)
	SetCounts(model.Counts)
	SetFocusLabel(string)
}

// StatusPresenter collects change notifications and refreshes the status bar on Tick.
type StatusPresenter struct {
	boxes   CountSource
	modes   hold.ModeProvider
	view    StatusView
	pending bool
	mode    hold.SelectMode
	counts  model.Counts
	focus   string
	primed  bool
}

func NewStatusPresenter(boxes CountSource, modes hold.ModeProvider, view StatusView) *StatusPresenter {
	return &StatusPresenter{boxes: boxes, modes: modes, view: view, pending: true}
}

// Invalidate queues a refresh for the next Tick.
func (p *StatusPresenter) Invalidate() {
	if p != nil {
		p.pending = true
	}
}

// Tick writes changed values to the view and clears the pending flag.
func (p *StatusPresenter) Tick() {
	if p == nil || p.view == nil || !p.pending {
		return
	}
	p.pending = false
	mode := hold.ModeDrawBox
	if p.modes != nil {
		mode = p.modes.Mode()
	}
	var counts model.Counts
	focus := "Focus: <none>"
	if p.boxes != nil {
		counts = p.boxes.Counts()
		if c := p.boxes.Focused(); c != nil {
			focus = fmt.Sprintf("Focus: #%d %s (%d)", c.ID(), c.State(), c.Number())
		}
	}
	if !p.primed || mode != p.mode {
		p.view.SetMode(mode)
	}
	if !p.primed || counts != p.counts {
		p.view.SetCounts(counts)
	}
	if !p.primed || focus != p.focus {
		p.view.SetFocusLabel(focus)
	}
	p.mode, p.counts, p.focus, p.primed = mode, counts, focus, true
}
