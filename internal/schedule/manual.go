package schedule

import (
	"sort"
	"sync"
	"time"
)

type manualEntry struct {
	handle   Handle
	deadline time.Time
	fn       func()
}

// Manual is a Scheduler driven by an explicit clock. Nothing fires until
// Advance is called, which makes timing behaviour reproducible in tests.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	next    Handle
	entries []manualEntry
}

// NewManual creates a manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the simulated time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// ScheduleOnce registers fn to run once the clock reaches now+delay.
func (m *Manual) ScheduleOnce(delay time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	if delay < 0 {
		delay = 0
	}
	m.next++
	m.entries = append(m.entries, manualEntry{
		handle:   m.next,
		deadline: m.now.Add(delay),
		fn:       fn,
	})
	return m.next
}

// Cancel removes a pending callback.
func (m *Manual) Cancel(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.handle == h {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Next returns the earliest pending deadline.
func (m *Manual) Next() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.earliestLocked()
	if !ok {
		return time.Time{}, false
	}
	return e.deadline, true
}

// Advance moves the clock forward by d, running every callback whose deadline
// falls inside the window. Callbacks run on the calling goroutine in deadline
// order; ties run in the order they were scheduled. Callbacks may schedule or
// cancel other callbacks, including ones that become due within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		e, ok := m.earliestLocked()
		if !ok || e.deadline.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.removeLocked(e.handle)
		if e.deadline.After(m.now) {
			m.now = e.deadline
		}
		m.mu.Unlock()

		e.fn()
	}
}

// AdvanceToNext moves the clock to the earliest deadline and runs everything
// due at that instant. It reports false when nothing is pending.
func (m *Manual) AdvanceToNext() bool {
	deadline, ok := m.Next()
	if !ok {
		return false
	}
	m.Advance(deadline.Sub(m.Now()))
	return true
}

func (m *Manual) earliestLocked() (manualEntry, bool) {
	if len(m.entries) == 0 {
		return manualEntry{}, false
	}
	sorted := make([]manualEntry, len(m.entries))
	copy(sorted, m.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].deadline.Before(sorted[j].deadline)
	})
	return sorted[0], true
}

func (m *Manual) removeLocked(h Handle) {
	for i, e := range m.entries {
		if e.handle == h {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}
