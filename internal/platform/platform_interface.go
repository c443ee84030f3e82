package platform

import "errors"

var (
	// ErrUnsupportedPlatform is returned when no injection backend exists for the host OS.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnknownBackend is returned for a backend name NewBackend does not recognise.
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrUnmappableKey is returned by backends asked to send a key they have no code for.
	ErrUnmappableKey = errors.New("key has no virtual-key code")
)

// Injector delivers synthetic key-down and key-up events for a logical key.
// Implementations never report failure to the caller.
type Injector interface {
	Press(key rune)
	Release(key rune)
}

// Backend is a concrete operating system mechanism for synthetic key events.
type Backend interface {
	// Name identifies the backend in logs and diagnostics.
	Name() string

	// KeyDown issues a key-down event for key.
	KeyDown(key rune) error

	// KeyUp issues a key-up event for key.
	KeyUp(key rune) error

	// Close releases any resources held by the backend.
	Close() error
}

// Capability represents the result of checking if key injection will work
type Capability struct {
	// CanInject indicates whether synthetic key events can be delivered on this system
	CanInject bool

	// Backend names the backend "auto" would pick
	Backend string

	// ErrorMessage is a user-friendly error message if injection won't work
	ErrorMessage string

	// Instructions provides step-by-step instructions to fix the issue
	Instructions string
}
