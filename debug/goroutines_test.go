package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/soocke/holdmark/ui/canvas"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStatsSlot_PublishLoad(t *testing.T) {
	var nilSlot *StatsSlot
	nilSlot.Publish(canvas.Stats{Draws: 1})
	if nilSlot.Load() != (canvas.Stats{}) {
		t.Fatalf("nil slot should read zero")
	}
	s := &StatsSlot{}
	if s.Load() != (canvas.Stats{}) {
		t.Fatalf("empty slot should read zero")
	}
	s.Publish(canvas.Stats{Groups: 3, Requests: 9, Draws: 2})
	if got := s.Load(); got.Groups != 3 || got.Draws != 2 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestStartStatsLogger_LogsAndStops(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	slot := &StatsSlot{}
	slot.Publish(canvas.Stats{Groups: 7})
	stop := StartStatsLogger(10*time.Millisecond, logger, slot)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), `"boxes":7`) {
		if time.Now().After(deadline) {
			t.Fatalf("no stats logged: %s", out.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	stop()
	stop()
}
