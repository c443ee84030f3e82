// Package schedule provides the one-shot timer abstraction that drives the
// simulator, plus a manual clock for deterministic tests.
package schedule

import "time"

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks once after a delay.
type Scheduler interface {
	// Now returns the scheduler's notion of the current time.
	Now() time.Time

	// ScheduleOnce arranges for fn to run once after delay.
	ScheduleOnce(delay time.Duration, fn func()) Handle

	// Cancel prevents a pending callback from running. Unknown, zero and
	// already fired handles are ignored.
	Cancel(h Handle)
}
