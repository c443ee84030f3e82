//go:build linux

package linux

import "strings"

// evdevCodes maps logical keys to Linux input event codes (linux/input-event-codes.h).
var evdevCodes = map[rune]int{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'Q': 16, 'W': 17, 'E': 18, 'R': 19, 'T': 20, 'Y': 21, 'U': 22, 'I': 23, 'O': 24, 'P': 25,
	'A': 30, 'S': 31, 'D': 32, 'F': 33, 'G': 34, 'H': 35, 'J': 36, 'K': 37, 'L': 38,
	'Z': 44, 'X': 45, 'C': 46, 'V': 47, 'B': 48, 'N': 49, 'M': 50,
	' ': 57,
}

// EvdevCode returns the input event code for key.
func EvdevCode(key rune) (int, bool) {
	code, ok := evdevCodes[key]
	return code, ok
}

// XKeysym returns the X keysym name xdotool expects for key.
func XKeysym(key rune) (string, bool) {
	switch {
	case key >= 'A' && key <= 'Z':
		return strings.ToLower(string(key)), true
	case key >= '0' && key <= '9':
		return string(key), true
	case key == ' ':
		return "space", true
	}
	return "", false
}
