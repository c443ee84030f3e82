package platform

import "testing"

func TestVirtualKey(t *testing.T) {
	tests := []struct {
		name   string
		key    rune
		wantVK uint16
		wantOK bool
	}{
		{name: "letter A", key: 'A', wantVK: 0x41, wantOK: true},
		{name: "letter Z", key: 'Z', wantVK: 0x5A, wantOK: true},
		{name: "digit 0", key: '0', wantVK: 0x30, wantOK: true},
		{name: "digit 9", key: '9', wantVK: 0x39, wantOK: true},
		{name: "space", key: ' ', wantVK: VKSpace, wantOK: true},
		{name: "lowercase letter", key: 'a', wantOK: false},
		{name: "punctuation", key: '!', wantOK: false},
		{name: "non-ascii", key: 'é', wantOK: false},
		{name: "tab", key: '\t', wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vk, ok := VirtualKey(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("VirtualKey(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && vk != tt.wantVK {
				t.Errorf("VirtualKey(%q) = %#x, want %#x", tt.key, vk, tt.wantVK)
			}
			if IsValidKey(tt.key) != tt.wantOK {
				t.Errorf("IsValidKey(%q) = %v, want %v", tt.key, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	if got := KeyName(' '); got != "SPACE" {
		t.Errorf("KeyName(space) = %q, want SPACE", got)
	}
	if got := KeyName('W'); got != "W" {
		t.Errorf("KeyName('W') = %q, want W", got)
	}
}
