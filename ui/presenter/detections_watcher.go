package presenter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/soocke/holdmark/domain/detection"
)

// DetectionsWatcher reloads the detections file when it changes on disk and
// hands the parsed result to the UI loop through a one-slot channel.
type DetectionsWatcher struct {
	Logger  *slog.Logger
	Load    func(path string) (*detection.File, error)
	path    string
	watcher *fsnotify.Watcher
	out     chan *detection.File
	running atomic.Bool
	done    chan struct{}
}

// NewDetectionsWatcher prepares a watcher for path. A nil load uses detection.Load.
func NewDetectionsWatcher(path string, logger *slog.Logger, load func(string) (*detection.File, error)) *DetectionsWatcher {
	if load == nil {
		load = detection.Load
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &DetectionsWatcher{Logger: logger, Load: load, path: abs, out: make(chan *detection.File, 1)}
}

// Start begins watching the file's directory. Calling Start twice is a no-op.
func (w *DetectionsWatcher) Start() error {
	if w == nil || w.running.Load() {
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	// editors often replace the file, so watch the directory
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fw
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(fw, w.done)
	return nil
}

// Stop ends the watch loop. Safe to call when not running.
func (w *DetectionsWatcher) Stop() {
	if w == nil || !w.running.Swap(false) {
		return
	}
	close(w.done)
	_ = w.watcher.Close()
}

// Pending returns the latest reloaded file without blocking, or nil.
func (w *DetectionsWatcher) Pending() *detection.File {
	if w == nil {
		return nil
	}
	select {
	case f := <-w.out:
		return f
	default:
		return nil
	}
}

func (w *DetectionsWatcher) loop(fw *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.handle(ev.Name)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			if w.Logger != nil {
				w.Logger.Error("detections watcher error", "error", err)
			}
		case <-done:
			return
		}
	}
}

// handle reloads the file when name refers to it; the newest result replaces an unread one.
func (w *DetectionsWatcher) handle(name string) {
	abs, err := filepath.Abs(name)
	if err != nil || abs != w.path {
		return
	}
	f, err := w.Load(w.path)
	if err != nil {
		// half-written files are common mid-save; the next event retries
		if w.Logger != nil {
			w.Logger.Warn("detections reload failed", "path", w.path, "error", err)
		}
		return
	}
	select {
	case <-w.out:
	default:
	}
	w.out <- f
	if w.Logger != nil {
		w.Logger.Debug("detections reloaded", "path", w.path, "boxes", len(f.Boxes))
	}
}
