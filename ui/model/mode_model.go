package model

import (
	"sync"
	"sync/atomic"

	"github.com/soocke/holdmark/domain/hold"
)

// ModeModel holds the global editing mode. The toolbar writes it; box
// controllers read it through hold.ModeProvider at interaction time.
// The zero value is ready to use and starts in draw-box mode.
type ModeModel struct {
	mode      atomic.Int32
	mu        sync.Mutex
	listeners []func(hold.SelectMode)
}

// NewModeModel returns a model starting in initial.
func NewModeModel(initial hold.SelectMode) *ModeModel {
	m := &ModeModel{}
	m.mode.Store(int32(initial))
	return m
}

// Mode implements hold.ModeProvider.
func (m *ModeModel) Mode() hold.SelectMode {
	if m == nil {
		return hold.ModeDrawBox
	}
	return hold.SelectMode(m.mode.Load())
}

// SetMode stores mode and notifies listeners when it changed.
func (m *ModeModel) SetMode(mode hold.SelectMode) {
	if m == nil {
		return
	}
	if hold.SelectMode(m.mode.Swap(int32(mode))) == mode {
		return
	}
	m.mu.Lock()
	ls := append([]func(hold.SelectMode){}, m.listeners...)
	m.mu.Unlock()
	for _, l := range ls {
		l(mode)
	}
}

// OnChange registers l for subsequent mode changes.
func (m *ModeModel) OnChange(l func(hold.SelectMode)) {
	if m == nil || l == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

var _ hold.ModeProvider = (*ModeModel)(nil)
