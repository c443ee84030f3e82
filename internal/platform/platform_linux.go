//go:build linux

package platform

import (
	"fmt"
	"log"
	"time"

	"github.com/stigoleg/key-presser/internal/platform/linux"
)

// keybdSettleDelay gives the compositor time to pick up the new uinput device.
const keybdSettleDelay = 2 * time.Second

func newPlatformBackend(kind string) (Backend, error) {
	caps := linux.DetectCapabilities()
	log.Printf("linux: display=%s uinput=%v xdotool=%v ydotool=%v",
		caps.DisplayServer, caps.Uinput, caps.HasXdotool, caps.HasYdotool)

	switch kind {
	case BackendNative:
		if !caps.Uinput {
			return nil, fmt.Errorf("%w: native backend needs write access to /dev/uinput", ErrUnsupportedPlatform)
		}
		return newKeybdBackend()
	case BackendXdotool, BackendYdotool:
		return linux.NewTool(kind)
	case BackendAuto:
		if caps.Uinput {
			b, err := newKeybdBackend()
			if err == nil {
				return b, nil
			}
			log.Printf("linux: uinput backend failed, falling back to command tools: %v", err)
		}
		if tool := caps.PreferredTool(); tool != "" {
			return linux.NewTool(tool)
		}
		log.Printf("linux: no key injection mechanism available")
		return nil, fmt.Errorf("%w: no key injection mechanism available", ErrUnsupportedPlatform)
	default:
		return nil, fmt.Errorf("%w: backend %q is not available on linux", ErrUnsupportedPlatform, kind)
	}
}

// CheckCapability reports whether key injection will work on this system.
func CheckCapability() Capability {
	caps := linux.DetectCapabilities()

	if caps.Uinput {
		return Capability{CanInject: true, Backend: BackendNative}
	}
	if tool := caps.PreferredTool(); tool != "" {
		return Capability{CanInject: true, Backend: tool}
	}
	return Capability{
		CanInject:    false,
		ErrorMessage: fmt.Sprintf("no way to send key events on %s", caps.DisplayServer),
		Instructions: caps.SetupHint(),
	}
}
