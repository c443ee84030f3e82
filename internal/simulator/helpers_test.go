package simulator

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stigoleg/key-presser/internal/platform"
	"github.com/stigoleg/key-presser/internal/schedule"
)

var epoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// stampedEvent is a key transition tagged with the simulated time since epoch.
type stampedEvent struct {
	at   time.Duration
	key  rune
	down bool
}

type clockInjector struct {
	sched  *schedule.Manual
	events []stampedEvent
}

func (c *clockInjector) Press(key rune) {
	c.events = append(c.events, stampedEvent{at: c.sched.Now().Sub(epoch), key: key, down: true})
}

func (c *clockInjector) Release(key rune) {
	c.events = append(c.events, stampedEvent{at: c.sched.Now().Sub(epoch), key: key, down: false})
}

func (c *clockInjector) presses() []stampedEvent {
	var out []stampedEvent
	for _, ev := range c.events {
		if ev.down {
			out = append(out, ev)
		}
	}
	return out
}

type recordingDisplay struct {
	mu       sync.Mutex
	statuses []string
	counters []int
	elapsed  []string
}

func (d *recordingDisplay) Status(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = append(d.statuses, text)
}

func (d *recordingDisplay) Counter(count int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.counters = append(d.counters, count)
}

func (d *recordingDisplay) Elapsed(clock string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elapsed = append(d.elapsed, clock)
}

func (d *recordingDisplay) lastStatus() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.statuses) == 0 {
		return ""
	}
	return d.statuses[len(d.statuses)-1]
}

func wasd() Config {
	return Config{
		Keys:     []rune("WASD"),
		Interval: MsRange(800, 1200),
		Hold:     MsRange(200, 500),
	}
}

type harness struct {
	sched   *schedule.Manual
	rec     *platform.Recorder
	display *recordingDisplay
	engine  *Engine
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	h := &harness{
		sched:   schedule.NewManual(epoch),
		rec:     platform.NewRecorder(false),
		display: &recordingDisplay{},
	}
	h.engine = New(h.sched, platform.NewAdapter(h.rec), h.display,
		WithRand(rand.New(rand.NewSource(seed))),
		WithIDGenerator(func() string { return "test-session" }),
	)
	return h
}

// runPresses advances the clock until n presses have happened.
func (h *harness) runPresses(t *testing.T, n int) {
	t.Helper()
	for i := 0; h.engine.State().PressCount < n; i++ {
		if i > n*1000 || !h.sched.AdvanceToNext() {
			t.Fatalf("engine stalled after %d presses", h.engine.State().PressCount)
		}
	}
}
