package simulator

import "time"

// Phase is the engine's position in its Stopped/Running × KeyUp/KeyDown
// state machine.
type Phase int

const (
	PhaseStopped Phase = iota
	PhaseKeyUp
	PhaseKeyDown
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseKeyUp:
		return "running/key-up"
	case PhaseKeyDown:
		return "running/key-down"
	default:
		return "unknown"
	}
}

// SessionState is a snapshot of the engine's session counters.
type SessionState struct {
	ID         string
	Running    bool
	KeyHeld    bool
	PressCount int
	LastKey    rune
	StartTime  time.Time
	Elapsed    time.Duration
}

// Phase derives the state machine position from the snapshot.
func (s SessionState) Phase() Phase {
	switch {
	case !s.Running:
		return PhaseStopped
	case s.KeyHeld:
		return PhaseKeyDown
	default:
		return PhaseKeyUp
	}
}
