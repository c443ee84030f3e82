package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimersFire(t *testing.T) {
	s := NewTimers()

	done := make(chan struct{})
	s.ScheduleOnce(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}

func TestTimersCancel(t *testing.T) {
	s := NewTimers()

	var fired atomic.Bool
	h := s.ScheduleOnce(50*time.Millisecond, func() { fired.Store(true) })
	s.Cancel(h)
	s.Cancel(h)
	s.Cancel(0)

	time.Sleep(150 * time.Millisecond)
	if fired.Load() {
		t.Error("cancelled callback fired")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}
}
