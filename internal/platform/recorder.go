package platform

import (
	"log"
	"sync"
)

// Event is one synthetic key transition.
type Event struct {
	Key  rune
	Down bool
}

// Recorder is a Backend that records key events instead of injecting them.
// It backs the dry-run mode and tests.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	verbose bool
}

// NewRecorder creates a Recorder. When verbose is set every event is logged.
func NewRecorder(verbose bool) *Recorder {
	return &Recorder{verbose: verbose}
}

func (r *Recorder) Name() string {
	return BackendDryRun
}

func (r *Recorder) KeyDown(key rune) error {
	r.record(Event{Key: key, Down: true})
	return nil
}

func (r *Recorder) KeyUp(key rune) error {
	r.record(Event{Key: key, Down: false})
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

func (r *Recorder) record(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()

	if r.verbose {
		dir := "up"
		if ev.Down {
			dir = "down"
		}
		log.Printf("dry-run: key %s %s", KeyName(ev.Key), dir)
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Presses returns the keys of recorded key-down events in order.
func (r *Recorder) Presses() []rune {
	return r.filter(true)
}

// Releases returns the keys of recorded key-up events in order.
func (r *Recorder) Releases() []rune {
	return r.filter(false)
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) filter(down bool) []rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	var keys []rune
	for _, ev := range r.events {
		if ev.Down == down {
			keys = append(keys, ev.Key)
		}
	}
	return keys
}
