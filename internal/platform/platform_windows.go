//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	inputKeyboard     = 1
	keyeventfKeyUp    = 0x0002
	keyeventfScancode = 0x0008
	mapvkVKToVSC      = 0
)

var (
	moduser32          = windows.NewLazySystemDLL("user32.dll")
	procSendInput      = moduser32.NewProc("SendInput")
	procMapVirtualKeyW = moduser32.NewProc("MapVirtualKeyW")
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors the Win32 INPUT struct; padding covers the larger MOUSEINPUT union member.
type input struct {
	inputType uint32
	ki        keyboardInput
	padding   uint64
}

// sendInputBackend injects keys with SendInput using virtual-key codes.
type sendInputBackend struct{}

func (b *sendInputBackend) Name() string {
	return "sendinput"
}

func (b *sendInputBackend) KeyDown(key rune) error {
	return b.send(key, keyeventfScancode)
}

func (b *sendInputBackend) KeyUp(key rune) error {
	return b.send(key, keyeventfScancode|keyeventfKeyUp)
}

func (b *sendInputBackend) Close() error {
	return nil
}

func (b *sendInputBackend) send(key rune, flags uint32) error {
	vk, ok := VirtualKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnmappableKey, key)
	}

	scan, _, _ := procMapVirtualKeyW.Call(uintptr(vk), mapvkVKToVSC)

	in := input{
		inputType: inputKeyboard,
		ki: keyboardInput{
			wVk:     vk,
			wScan:   uint16(scan),
			dwFlags: flags,
		},
	}

	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n == 0 {
		return fmt.Errorf("SendInput: %w", err)
	}
	return nil
}

func newPlatformBackend(kind string) (Backend, error) {
	switch kind {
	case BackendAuto, BackendNative:
		if err := procSendInput.Find(); err != nil {
			return nil, fmt.Errorf("SendInput unavailable: %w", err)
		}
		return &sendInputBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: backend %q is not available on windows", ErrUnsupportedPlatform, kind)
	}
}

// CheckCapability reports whether key injection will work on this system.
func CheckCapability() Capability {
	if err := procSendInput.Find(); err != nil {
		return Capability{
			CanInject:    false,
			ErrorMessage: fmt.Sprintf("SendInput is not available: %v", err),
		}
	}
	return Capability{CanInject: true, Backend: "sendinput"}
}
