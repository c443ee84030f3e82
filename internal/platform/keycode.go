package platform

// VKSpace is the virtual-key code of the space bar.
const VKSpace uint16 = 0x20

// VirtualKey maps a logical key to its virtual-key code. Upper-case letters
// and digits map to their ASCII code, space maps to VKSpace. Every other rune
// has no code.
func VirtualKey(key rune) (uint16, bool) {
	switch {
	case key >= 'A' && key <= 'Z':
		return uint16(key), true
	case key >= '0' && key <= '9':
		return uint16(key), true
	case key == ' ':
		return VKSpace, true
	}
	return 0, false
}

// IsValidKey reports whether key can be simulated.
func IsValidKey(key rune) bool {
	_, ok := VirtualKey(key)
	return ok
}

// KeyName returns a display name for key.
func KeyName(key rune) string {
	if key == ' ' {
		return "SPACE"
	}
	return string(key)
}
