package presenter

import "github.com/soocke/holdmark/domain/detection"

// ReloadSource yields reloaded detections, or nil when nothing changed.
type ReloadSource interface{ Pending() *detection.File }

// Loop aggregates feature presenters and drives periodic updates.
//
// It applies pending reloads, ticks the sub-presenters and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Annotation *AnnotationPresenter
	Status     *StatusPresenter
	Reloads    ReloadSource
	Resolve    func(*detection.File) []detection.Hold
	Schedule   func()
}

func NewLoop(ann *AnnotationPresenter, status *StatusPresenter, reloads ReloadSource, resolve func(*detection.File) []detection.Hold, schedule func()) *Loop {
	return &Loop{Annotation: ann, Status: status, Reloads: reloads, Resolve: resolve, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Reloads != nil && l.Resolve != nil {
		if f := l.Reloads.Pending(); f != nil {
			l.Annotation.Replace(l.Resolve(f))
		}
	}
	// annotation first so the status reflects this tick's interactions
	l.Annotation.Tick()
	l.Status.Tick()
	if l.Schedule != nil {
		l.Schedule()
	}
}
