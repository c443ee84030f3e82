package schedule

import (
	"sync"
	"time"
)

// Timers is the wall-clock Scheduler backed by time.AfterFunc.
type Timers struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
	now    func() time.Time
}

// NewTimers creates a Scheduler that fires callbacks on the runtime timer goroutines.
func NewTimers() *Timers {
	return &Timers{
		timers: make(map[Handle]*time.Timer),
		now:    time.Now,
	}
}

// Now returns the wall-clock time.
func (t *Timers) Now() time.Time {
	return t.now()
}

// ScheduleOnce runs fn after delay on its own goroutine.
func (t *Timers) ScheduleOnce(delay time.Duration, fn func()) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	t.timers[h] = time.AfterFunc(delay, func() {
		t.mu.Lock()
		_, live := t.timers[h]
		delete(t.timers, h)
		t.mu.Unlock()

		if live {
			fn()
		}
	})
	return h
}

// Cancel stops the timer for h if it has not fired yet.
func (t *Timers) Cancel(h Handle) {
	if h == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[h]; ok {
		timer.Stop()
		delete(t.timers, h)
	}
}

// Pending returns the number of callbacks that have not fired or been cancelled.
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.timers)
}
