package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDuration accepts either a whole number of minutes ("90") or a Go
// duration string ("1h30m"). Surrounding spaces are ignored.
func ParseDuration(input string) (time.Duration, error) {
	input = strings.TrimSpace(input)
	if minutes, err := strconv.Atoi(input); err == nil {
		if minutes < 0 {
			return 0, durationError(input)
		}
		return time.Duration(minutes) * time.Minute, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return 0, durationError(input)
	}
	return d, nil
}

func durationError(input string) error {
	return fmt.Errorf("invalid duration format: %q\n\nValid formats:\n"+
		"• minutes: 30, 90\n"+
		"• duration: 45m, 2h30m, 1h30m45s", input)
}

// FormatClock renders d as HH:MM:SS. Hours keep counting past 24 and
// sub-second parts are truncated.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
