// Package simulator implements the randomized key press engine: it decides
// which key to press, when to press it, when to release it and tracks the
// session counters shown to the user.
package simulator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stigoleg/key-presser/internal/platform"
)

var (
	// ErrInvalidConfiguration is returned by Start for an empty key set,
	// an unsupported key or an inverted range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyRunning is returned by Start while a session is active.
	ErrAlreadyRunning = errors.New("simulation already running")
)

// Range is an inclusive duration interval with millisecond granularity.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// MsRange builds a Range from millisecond values.
func MsRange(minMs, maxMs int) Range {
	return Range{
		Min: time.Duration(minMs) * time.Millisecond,
		Max: time.Duration(maxMs) * time.Millisecond,
	}
}

// String renders the range the way the status line shows it, e.g. "800-1200ms".
func (r Range) String() string {
	return fmt.Sprintf("%d-%dms", r.Min.Milliseconds(), r.Max.Milliseconds())
}

func (r Range) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("%w: %s minimum must not be negative", ErrInvalidConfiguration, name)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s minimum cannot be greater than maximum", ErrInvalidConfiguration, name)
	}
	return nil
}

// Config is the immutable description of one simulation session.
type Config struct {
	// Keys are the candidates for each press, deduplicated.
	Keys []rune

	// Interval bounds the delay between consecutive presses.
	Interval Range

	// Hold bounds how long each key stays down.
	Hold Range

	// RunFor stops the session automatically after this long. Zero runs until Stop.
	RunFor time.Duration
}

// Validate reports whether c can be started.
func (c Config) Validate() error {
	if len(c.Keys) == 0 {
		return fmt.Errorf("%w: at least one key is required", ErrInvalidConfiguration)
	}

	seen := make(map[rune]bool, len(c.Keys))
	for _, k := range c.Keys {
		if !platform.IsValidKey(k) {
			return fmt.Errorf("%w: unsupported key %q (valid: A-Z, 0-9, space)", ErrInvalidConfiguration, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: duplicate key %s", ErrInvalidConfiguration, platform.KeyName(k))
		}
		seen[k] = true
	}

	if err := c.Interval.validate("interval"); err != nil {
		return err
	}
	if err := c.Hold.validate("hold"); err != nil {
		return err
	}
	if c.RunFor < 0 {
		return fmt.Errorf("%w: run duration must not be negative", ErrInvalidConfiguration)
	}
	return nil
}

// clone returns a copy of c that shares no memory with the caller.
func (c Config) clone() Config {
	keys := make([]rune, len(c.Keys))
	copy(keys, c.Keys)
	c.Keys = keys
	return c
}

// KeyList renders the keys as "W, A, S, D" with space shown as SPACE.
func (c Config) KeyList() string {
	names := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		names[i] = platform.KeyName(k)
	}
	return strings.Join(names, ", ")
}
