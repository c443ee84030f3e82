package platform

import (
	"fmt"
	"strings"
)

// Backend names accepted by NewBackend.
const (
	BackendAuto      = "auto"
	BackendNative    = "native"
	BackendXdotool   = "xdotool"
	BackendYdotool   = "ydotool"
	BackendOsascript = "osascript"
	BackendDryRun    = "dry-run"
)

// BackendNames lists every backend name NewBackend understands.
func BackendNames() []string {
	return []string{BackendAuto, BackendNative, BackendXdotool, BackendYdotool, BackendOsascript, BackendDryRun}
}

// NewBackend creates the named backend. "auto" picks the best backend
// available on the host.
func NewBackend(kind string) (Backend, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		kind = BackendAuto
	}

	switch kind {
	case BackendDryRun:
		return NewRecorder(true), nil
	case BackendAuto, BackendNative, BackendXdotool, BackendYdotool, BackendOsascript:
		return newPlatformBackend(kind)
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownBackend, kind, strings.Join(BackendNames(), ", "))
	}
}
