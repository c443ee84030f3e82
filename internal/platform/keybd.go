//go:build linux || darwin

package platform

import (
	"fmt"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"
)

// keybdCodes maps logical keys to keybd_event codes, which are evdev codes on
// Linux and Carbon virtual key codes on macOS.
var keybdCodes = map[rune]int{
	'A': keybd_event.VK_A, 'B': keybd_event.VK_B, 'C': keybd_event.VK_C, 'D': keybd_event.VK_D,
	'E': keybd_event.VK_E, 'F': keybd_event.VK_F, 'G': keybd_event.VK_G, 'H': keybd_event.VK_H,
	'I': keybd_event.VK_I, 'J': keybd_event.VK_J, 'K': keybd_event.VK_K, 'L': keybd_event.VK_L,
	'M': keybd_event.VK_M, 'N': keybd_event.VK_N, 'O': keybd_event.VK_O, 'P': keybd_event.VK_P,
	'Q': keybd_event.VK_Q, 'R': keybd_event.VK_R, 'S': keybd_event.VK_S, 'T': keybd_event.VK_T,
	'U': keybd_event.VK_U, 'V': keybd_event.VK_V, 'W': keybd_event.VK_W, 'X': keybd_event.VK_X,
	'Y': keybd_event.VK_Y, 'Z': keybd_event.VK_Z,
	'0': keybd_event.VK_0, '1': keybd_event.VK_1, '2': keybd_event.VK_2, '3': keybd_event.VK_3,
	'4': keybd_event.VK_4, '5': keybd_event.VK_5, '6': keybd_event.VK_6, '7': keybd_event.VK_7,
	'8': keybd_event.VK_8, '9': keybd_event.VK_9,
	' ': keybd_event.VK_SPACE,
}

// keybdBackend injects keys through github.com/micmonay/keybd_event
// (uinput on Linux, CGEvent on macOS).
type keybdBackend struct {
	mu sync.Mutex
	kb keybd_event.KeyBonding
}

func newKeybdBackend() (*keybdBackend, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("create key bonding: %w", err)
	}

	// The virtual device needs a moment before the compositor accepts events from it.
	if keybdSettleDelay > 0 {
		time.Sleep(keybdSettleDelay)
	}
	return &keybdBackend{kb: kb}, nil
}

func (b *keybdBackend) Name() string {
	return "keybd_event"
}

func (b *keybdBackend) KeyDown(key rune) error {
	code, ok := keybdCodes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnmappableKey, key)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.kb.SetKeys(code)
	return b.kb.Press()
}

func (b *keybdBackend) KeyUp(key rune) error {
	code, ok := keybdCodes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnmappableKey, key)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.kb.SetKeys(code)
	return b.kb.Release()
}

func (b *keybdBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.kb.Clear()
	return nil
}
