package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/key-presser/internal/simulator"
	"github.com/stigoleg/key-presser/internal/util"
)

// Snapshot is the latest set of display values.
type Snapshot struct {
	Status  string
	Count   int
	Elapsed string
}

// displayMsg carries a Snapshot into Update.
type displayMsg Snapshot

// Sink is the engine's Display for the TUI. It only records the latest values
// and wakes a single waiting command, so the engine never blocks on the UI.
type Sink struct {
	mu     sync.Mutex
	snap   Snapshot
	notify chan struct{}
}

// NewSink creates a Sink showing the idle state.
func NewSink() *Sink {
	return &Sink{
		snap:   Snapshot{Status: simulator.StatusReady, Elapsed: util.FormatClock(0)},
		notify: make(chan struct{}, 1),
	}
}

func (s *Sink) Status(text string) {
	s.update(func(snap *Snapshot) { snap.Status = text })
}

func (s *Sink) Counter(count int) {
	s.update(func(snap *Snapshot) { snap.Count = count })
}

func (s *Sink) Elapsed(clock string) {
	s.update(func(snap *Snapshot) { snap.Elapsed = clock })
}

// Snapshot returns the latest values.
func (s *Sink) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Wait returns a command that delivers the next change as a message.
func (s *Sink) Wait() tea.Cmd {
	return func() tea.Msg {
		<-s.notify
		return displayMsg(s.Snapshot())
	}
}

func (s *Sink) update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}
