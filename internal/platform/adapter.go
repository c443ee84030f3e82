package platform

import "log"

// Adapter turns a Backend into an Injector. Keys without a virtual-key code
// are ignored silently and backend failures are only written to the debug log.
type Adapter struct {
	backend Backend
}

// NewAdapter wraps backend.
func NewAdapter(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

// Press issues a key-down event for key.
func (a *Adapter) Press(key rune) {
	if _, ok := VirtualKey(key); !ok {
		return
	}
	if err := a.backend.KeyDown(key); err != nil {
		log.Printf("platform: %s key down %q failed: %v", a.backend.Name(), KeyName(key), err)
	}
}

// Release issues a key-up event for key.
func (a *Adapter) Release(key rune) {
	if _, ok := VirtualKey(key); !ok {
		return
	}
	if err := a.backend.KeyUp(key); err != nil {
		log.Printf("platform: %s key up %q failed: %v", a.backend.Name(), KeyName(key), err)
	}
}

// Backend returns the wrapped backend.
func (a *Adapter) Backend() Backend {
	return a.backend
}
