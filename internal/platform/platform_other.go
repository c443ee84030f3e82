//go:build !darwin && !windows && !linux

package platform

import "fmt"

func newPlatformBackend(kind string) (Backend, error) {
	return nil, fmt.Errorf("%w: backend %q", ErrUnsupportedPlatform, kind)
}

// CheckCapability reports whether key injection will work on this system.
func CheckCapability() Capability {
	return Capability{
		CanInject:    false,
		ErrorMessage: "key injection is not supported on this operating system",
	}
}
