package simulator

import (
	"fmt"

	"github.com/stigoleg/key-presser/internal/util"
)

// Status lines shown when a session ends.
const (
	StatusReady    = "Ready"
	StatusStopped  = "Stopped"
	StatusFinished = "Finished"
)

// Display receives the engine's notifications. Calls are made while the
// engine is locked: implementations must return quickly and must not call
// back into the engine.
type Display interface {
	// Status receives a human readable description of the session.
	Status(text string)

	// Counter receives the number of presses made so far.
	Counter(count int)

	// Elapsed receives the session's running time as HH:MM:SS.
	Elapsed(clock string)
}

// NopDisplay discards every notification.
type NopDisplay struct{}

func (NopDisplay) Status(string) {}
func (NopDisplay) Counter(int) {}
func (NopDisplay) Elapsed(string) {}

// StatusText describes a running session, e.g.
// "Simulating keys: [W, A, S, D] - Interval: 800-1200ms, Hold: 200-500ms".
func StatusText(cfg Config) string {
	return fmt.Sprintf("Simulating keys: [%s] - Interval: %s, Hold: %s", cfg.KeyList(), cfg.Interval, cfg.Hold)
}

// CounterText renders the press counter label.
func CounterText(count int) string {
	return fmt.Sprintf("Keys pressed: %d", count)
}

// ElapsedText renders the active time label.
func ElapsedText(clock string) string {
	return "Active time: " + clock
}

func formatElapsed(s SessionState) string {
	return util.FormatClock(s.Elapsed)
}
