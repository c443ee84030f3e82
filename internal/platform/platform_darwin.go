//go:build darwin

package platform

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"sync/atomic"
	"time"
)

const (
	// keybdSettleDelay is zero because CGEvent sources are usable immediately.
	keybdSettleDelay = 0

	permissionWarnEvery = 60 * time.Second

	// scriptExecutionTimeout limits how long we wait for osascript to complete.
	// This protects against hangs if Accessibility is misconfigured or the
	// scripting environment is not responding.
	scriptExecutionTimeout = 3 * time.Second
)

const accessibilityHint = "On macOS you must enable Accessibility for the process sending key events. If you run from Terminal, enable Terminal. If this is a packaged app, enable the app in System Settings, Privacy and Security, Accessibility."

// osascriptBackend posts CGEvent keyboard events through JavaScript for Automation.
type osascriptBackend struct {
	// last time we warned about Accessibility, unix nanos
	lastPermWarnNS int64
}

func (b *osascriptBackend) Name() string {
	return BackendOsascript
}

func (b *osascriptBackend) KeyDown(key rune) error {
	return b.post(key, true)
}

func (b *osascriptBackend) KeyUp(key rune) error {
	return b.post(key, false)
}

func (b *osascriptBackend) Close() error {
	return nil
}

func (b *osascriptBackend) post(key rune, down bool) error {
	code, ok := keybdCodes[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnmappableKey, key)
	}

	out, err := runJXAScript(keyEventScript(code, down))
	if err != nil {
		b.warnAccessibilityOnce(err)
		return fmt.Errorf("osascript failed: %v (output: %q)", err, string(out))
	}
	return nil
}

func keyEventScript(code int, down bool) string {
	return fmt.Sprintf(`
ObjC.import('CoreGraphics');

var ev = $.CGEventCreateKeyboardEvent(null, %d, %t);
$.CGEventPost($.kCGHIDEventTap, ev);

console.log("ok");
`, code, down)
}

func runJXAScript(script string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", script)
	out, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return out, fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}

	return out, err
}

func (b *osascriptBackend) warnAccessibilityOnce(err error) {
	nowNS := time.Now().UnixNano()
	last := atomic.LoadInt64(&b.lastPermWarnNS)
	if last != 0 && time.Duration(nowNS-last) < permissionWarnEvery {
		return
	}
	atomic.StoreInt64(&b.lastPermWarnNS, nowNS)

	log.Printf("darwin: key event blocked or failed (%v). %s", err, accessibilityHint)
}

func newPlatformBackend(kind string) (Backend, error) {
	switch kind {
	case BackendAuto, BackendNative:
		b, err := newKeybdBackend()
		if err == nil {
			return b, nil
		}
		if kind == BackendNative || !hasCommand("osascript") {
			return nil, err
		}
		log.Printf("darwin: keybd_event unavailable, using osascript: %v", err)
		return &osascriptBackend{}, nil
	case BackendOsascript:
		if !hasCommand("osascript") {
			return nil, fmt.Errorf("osascript not found in PATH")
		}
		return &osascriptBackend{}, nil
	default:
		return nil, fmt.Errorf("%w: backend %q is not available on darwin", ErrUnsupportedPlatform, kind)
	}
}

// CheckCapability reports whether key injection will work on this system.
// Accessibility permission cannot be queried without a prompt, so it is only
// mentioned in the instructions.
func CheckCapability() Capability {
	return Capability{
		CanInject:    true,
		Backend:      BackendNative,
		Instructions: accessibilityHint,
	}
}
