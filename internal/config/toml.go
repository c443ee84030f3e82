package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Unset values are nil.
type FileConfig struct {
	Keys     *string     `toml:"keys"`
	Backend  *string     `toml:"backend"`
	Duration *string     `toml:"duration"`
	Interval RangeConfig `toml:"interval"`
	Hold     RangeConfig `toml:"hold"`
}

// RangeConfig maps a [min, max] millisecond table.
type RangeConfig struct {
	Min *int `toml:"min"`
	Max *int `toml:"max"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}

// WriteTemplate creates path with a commented default configuration unless
// the file already exists. It reports whether a file was written.
func WriteTemplate(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultTemplate()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

// DefaultTemplate returns the commented configuration written by WriteTemplate.
func DefaultTemplate() string {
	return fmt.Sprintf(`# keypresser configuration
# Uncomment a value to enable it. CLI flags override config values.

# keys = %q          # Keys to press (A-Z, 0-9, _ for space)
# backend = %q       # auto, native, xdotool, ydotool, osascript or dry-run
# duration = "30m"     # Stop automatically after this long

[interval]
# min = %d            # Shortest pause between presses in ms (%d-%d)
# max = %d           # Longest pause between presses in ms

[hold]
# min = %d            # Shortest key hold in ms (%d-%d)
# max = %d            # Longest key hold in ms
`,
		DefaultKeys,
		DefaultBackend,
		DefaultIntervalMin, IntervalLowerBound, IntervalUpperBound,
		DefaultIntervalMax,
		DefaultHoldMin, HoldLowerBound, HoldUpperBound,
		DefaultHoldMax,
	)
}
