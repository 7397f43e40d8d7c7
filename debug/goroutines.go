package debug

// Debug runtime and canvas metrics logger. Started only when config.Debug is true.
// Emits goroutine count, stack/heap usage and repaint coalescing at a fixed interval.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync/atomic"
	"time"

	"github.com/soocke/holdmark/ui/canvas"
)

// StatsSlot hands canvas stats from the UI loop to the logger goroutine.
// A nil slot is valid and always reads as zero stats.
type StatsSlot struct{ v atomic.Pointer[canvas.Stats] }

// Publish stores the latest stats.
func (s *StatsSlot) Publish(st canvas.Stats) {
	if s != nil {
		s.v.Store(&st)
	}
}

// Load returns the latest published stats.
func (s *StatsSlot) Load() canvas.Stats {
	if s == nil {
		return canvas.Stats{}
	}
	if p := s.v.Load(); p != nil {
		return *p
	}
	return canvas.Stats{}
}

// StartStatsLogger launches a ticker that logs runtime and canvas stats until
// the returned stop function is called.
func StartStatsLogger(interval time.Duration, logger *slog.Logger, slot *StatsSlot) (stop func()) {
	if interval <= 0 {
		interval = time.Second
	}
	done := make(chan struct{})
	var once atomic.Bool
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
			}
			if logger == nil {
				continue
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			st := slot.Load()
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Int("boxes", st.Groups),
				slog.Int("redraw_requests", st.Requests),
				slog.Int("draws", st.Draws),
			)
		}
	}()
	return func() {
		if once.CompareAndSwap(false, true) {
			close(done)
		}
	}
}
