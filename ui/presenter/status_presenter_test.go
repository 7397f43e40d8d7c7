package presenter

import (
	"testing"

	"github.com/soocke/holdmark/domain/detection"
	"github.com/soocke/holdmark/domain/hold"
	"github.com/soocke/holdmark/ui/model"
)

type mockStatusView struct {
	modeCalls, countCalls, focusCalls int
	mode                              hold.SelectMode
	focus                             string
	counts                            model.Counts
}

func (v *mockStatusView) SetMode(m hold.SelectMode) { v.modeCalls++; v.mode = m }
func (v *mockStatusView) SetCounts(c model.Counts)  { v.countCalls++; v.counts = c }
func (v *mockStatusView) SetFocusLabel(s string)    { v.focusCalls++; v.focus = s }

func TestStatusPresenter_OnlyChangedFieldsReachView(t *testing.T) {
	p, _, m, _ := newTestPresenter(hold.ModeHandHold)
	modes := p.modes
	view := &mockStatusView{}
	sp := NewStatusPresenter(m, modes, view)
	p.OnChange(sp.Invalidate)
	p.Load(nil, testHolds(), 1)

	sp.Tick()
	if view.modeCalls != 1 || view.countCalls != 1 || view.focusCalls != 1 {
		t.Fatalf("first tick should prime all labels: %+v", view)
	}
	if view.mode != hold.ModeHandHold || view.counts.FootHolds != 1 || view.focus != "Focus: <none>" {
		t.Fatalf("unexpected labels: %+v", view)
	}
	sp.Tick()
	if view.modeCalls != 1 {
		t.Fatalf("tick without invalidate must not touch view")
	}

	p.FocusNext()
	p.ClickFocused()
	sp.Tick()
	if view.modeCalls != 1 || view.countCalls != 2 || view.focusCalls != 2 {
		t.Fatalf("expected counts and focus refresh only: %+v", view)
	}
	if view.counts.HandHolds != 1 || view.focus != "Focus: #1 handhold (4)" {
		t.Fatalf("unexpected refresh: %+v", view)
	}

	p.SetMode(hold.ModeFootHold)
	sp.Tick()
	if view.modeCalls != 2 || view.mode != hold.ModeFootHold || view.countCalls != 2 {
		t.Fatalf("expected mode refresh only: %+v", view)
	}
}

func TestStatusPresenter_NilSafe(t *testing.T) {
	var sp *StatusPresenter
	sp.Invalidate()
	sp.Tick()
	NewStatusPresenter(nil, nil, nil).Tick()
}

type mockReloads struct{ files []*detection.File }

func (r *mockReloads) Pending() *detection.File {
	if len(r.files) == 0 {
		return nil
	}
	f := r.files[0]
	r.files = r.files[1:]
	return f
}

func TestLoop_AppliesReloadThenTicks(t *testing.T) {
	p, _, m, wall := newTestPresenter(hold.ModeHandHold)
	p.Load(nil, testHolds(), 1)
	view := &mockStatusView{}
	sp := NewStatusPresenter(m, p.modes, view)
	p.OnChange(sp.Invalidate)
	reloads := &mockReloads{files: []*detection.File{{Boxes: []detection.Box{{X: 1, Y: 1, W: 5, H: 5}}}}}
	scheduled := 0
	resolve := func(f *detection.File) []detection.Hold {
		holds, _ := f.Resolve(0, 0, detection.Defaults{State: hold.StateUnselected, Number: 2})
		return holds
	}
	l := NewLoop(p, sp, reloads, resolve, func() { scheduled++ })
	l.Tick()
	if m.Len() != 1 || view.counts.Total != 1 || wall.updates != 1 || scheduled != 1 {
		t.Fatalf("reload not applied: len=%d total=%d updates=%d scheduled=%d", m.Len(), view.counts.Total, wall.updates, scheduled)
	}
	l.Tick()
	if m.Len() != 1 || wall.updates != 1 || scheduled != 2 {
		t.Fatalf("second tick should only reschedule")
	}
	var zero *Loop
	zero.Tick()
	(&Loop{}).Tick()
}
