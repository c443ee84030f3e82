// Package config turns command-line flags and the optional TOML file into a
// validated simulator configuration.
package config

import (
	"fmt"
	"time"

	"github.com/stigoleg/key-presser/internal/simulator"
	"github.com/stigoleg/key-presser/internal/util"
)

// Form defaults.
const (
	DefaultKeys        = "wasd"
	DefaultIntervalMin = 800
	DefaultIntervalMax = 1200
	DefaultHoldMin     = 200
	DefaultHoldMax     = 500
	DefaultBackend     = "auto"
)

// Accepted millisecond bounds.
const (
	IntervalLowerBound = 200
	IntervalUpperBound = 30000
	HoldLowerBound     = 10
	HoldUpperBound     = 2000
)

// Settings holds the user-facing options before validation.
type Settings struct {
	Keys        string
	IntervalMin int
	IntervalMax int
	HoldMin     int
	HoldMax     int

	// Duration is an auto-stop delay in minutes or Go duration syntax.
	Duration string
	// Clock is an auto-stop wall-clock time such as "17:30" or "5:30PM".
	Clock string

	Backend    string
	Seed       int64
	Headless   bool
	Autostart  bool
	ConfigPath string
}

// Defaults returns the settings used when nothing else is specified.
func Defaults() Settings {
	return Settings{
		Keys:        DefaultKeys,
		IntervalMin: DefaultIntervalMin,
		IntervalMax: DefaultIntervalMax,
		HoldMin:     DefaultHoldMin,
		HoldMax:     DefaultHoldMax,
		Backend:     DefaultBackend,
		ConfigPath:  DefaultConfigPath(),
	}
}

// Resolve validates s and converts it into a simulator.Config. Invalid key
// characters are dropped and reported as warnings. Every returned error wraps
// simulator.ErrInvalidConfiguration.
func (s Settings) Resolve(now time.Time) (simulator.Config, []string, error) {
	var warnings []string

	keys, invalid := ParseKeys(s.Keys)
	if len(keys) == 0 {
		return simulator.Config{}, nil, fmt.Errorf("%w: please enter at least one valid key (A-Z, 0-9, or space)", simulator.ErrInvalidConfiguration)
	}
	if len(invalid) > 0 {
		warnings = append(warnings, InvalidKeysWarning(invalid))
	}

	if err := checkRange("interval", s.IntervalMin, s.IntervalMax, IntervalLowerBound, IntervalUpperBound); err != nil {
		return simulator.Config{}, nil, err
	}
	if err := checkRange("hold", s.HoldMin, s.HoldMax, HoldLowerBound, HoldUpperBound); err != nil {
		return simulator.Config{}, nil, err
	}

	runFor, err := s.runFor(now)
	if err != nil {
		return simulator.Config{}, nil, err
	}

	cfg := simulator.Config{
		Keys:     keys,
		Interval: simulator.MsRange(s.IntervalMin, s.IntervalMax),
		Hold:     simulator.MsRange(s.HoldMin, s.HoldMax),
		RunFor:   runFor,
	}
	if err := cfg.Validate(); err != nil {
		return simulator.Config{}, nil, err
	}
	return cfg, warnings, nil
}

func (s Settings) runFor(now time.Time) (time.Duration, error) {
	switch {
	case s.Duration != "" && s.Clock != "":
		return 0, fmt.Errorf("%w: --duration and --clock cannot be used together", simulator.ErrInvalidConfiguration)
	case s.Duration != "":
		d, err := util.ParseDuration(s.Duration)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", simulator.ErrInvalidConfiguration, err)
		}
		return d, nil
	case s.Clock != "":
		d, err := util.UntilClock(s.Clock, now)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", simulator.ErrInvalidConfiguration, err)
		}
		return d, nil
	}
	return 0, nil
}

func checkRange(name string, lo, hi, lower, upper int) error {
	if lo < lower || lo > upper {
		return fmt.Errorf("%w: %s minimum %dms must be between %d and %d", simulator.ErrInvalidConfiguration, name, lo, lower, upper)
	}
	if hi < lower || hi > upper {
		return fmt.Errorf("%w: %s maximum %dms must be between %d and %d", simulator.ErrInvalidConfiguration, name, hi, lower, upper)
	}
	if lo > hi {
		return fmt.Errorf("%w: %s minimum cannot be greater than maximum", simulator.ErrInvalidConfiguration, name)
	}
	return nil
}
