package integration

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stigoleg/key-presser/internal/platform"
	"github.com/stigoleg/key-presser/internal/schedule"
	"github.com/stigoleg/key-presser/internal/simulator"
)

// session is an engine driven by real timers that records instead of injecting.
type session struct {
	engine   *simulator.Engine
	recorder *platform.Recorder
	cleanup  *simulator.Cleanup
}

func newSession(seed int64) *session {
	rec := platform.NewRecorder(false)
	engine := simulator.New(schedule.NewTimers(), platform.NewAdapter(rec), nil,
		simulator.WithRand(rand.New(rand.NewSource(seed))))

	cleanup := simulator.NewCleanup(simulator.DefaultCleanupTimeout)
	cleanup.AddEngine(engine)
	cleanup.Add("backend", rec.Close)

	return &session{engine: engine, recorder: rec, cleanup: cleanup}
}

// fastConfig presses every 200-300ms and holds for 50-150ms.
func fastConfig() simulator.Config {
	return simulator.Config{
		Keys:     []rune{'W', 'A', 'S', 'D'},
		Interval: simulator.MsRange(200, 300),
		Hold:     simulator.MsRange(50, 150),
	}
}

// heldKeys replays events and returns the keys left down.
func heldKeys(events []platform.Event) []rune {
	down := make(map[rune]bool)
	for _, ev := range events {
		down[ev.Key] = ev.Down
	}
	var held []rune
	for k, isDown := range down {
		if isDown {
			held = append(held, k)
		}
	}
	return held
}

func waitDone(t *testing.T, e *simulator.Engine, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-e.Done():
		return true
	case <-time.After(timeout):
		return false
	}
}
