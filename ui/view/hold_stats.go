package view

import (
	"fmt"

	"github.com/soocke/holdmark/ui/model"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// HoldStats shows how many boxes are in each classification.
type HoldStats interface {
	SetCounts(c model.Counts)
}

type holdStats struct {
	handLbl  *LabelWidget
	footLbl  *LabelWidget
	routeLbl *LabelWidget
}

// NewHoldStats grids three labels at (row, startCol..startCol+2) inside parent.
func NewHoldStats(parent *FrameWidget, row, startCol int) HoldStats {
	s := &holdStats{handLbl: Label(Width(12)), footLbl: Label(Width(12)), routeLbl: Label(Width(22))}
	for i, l := range []*LabelWidget{s.handLbl, s.footLbl, s.routeLbl} {
		Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.SetCounts(model.Counts{})
	return s
}

func (s *holdStats) SetCounts(c model.Counts) {
	if s == nil || s.handLbl == nil {
		return
	}
	s.handLbl.Configure(Txt(fmt.Sprintf("Hand: %d", c.HandHolds)))
	s.footLbl.Configure(Txt(fmt.Sprintf("Foot: %d", c.FootHolds)))
	s.routeLbl.Configure(Txt(fmt.Sprintf("Start %d  End %d  Hidden %d", c.Starts, c.Ends, c.Hidden)))
}
