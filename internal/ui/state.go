package ui

// State is the screen the TUI is showing.
type State int

const (
	StateForm State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateForm:
		return "Form"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}
