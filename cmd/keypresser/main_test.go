package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/key-presser/internal/simulator"
)

func TestLineDisplay(t *testing.T) {
	var buf bytes.Buffer
	d := newLineDisplay(&buf)

	d.Status("Simulating keys: [W] - Interval: 800-1200ms, Hold: 200-500ms")
	d.Counter(1)
	d.Counter(2)
	d.Elapsed("00:00:03")
	d.Status(simulator.StatusFinished)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Simulating keys: [W]")
	assert.Equal(t, simulator.StatusFinished, lines[1])
	assert.Equal(t, "Keys pressed: 2, Active time: 00:00:03", lines[2])
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"keys", "interval-min", "interval-max", "hold-min", "hold-max", "duration", "clock", "backend", "seed", "headless", "autostart", "version"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.Equal(t, "k", cmd.Flags().Lookup("keys").Shorthand)
	assert.Equal(t, "d", cmd.Flags().Lookup("duration").Shorthand)
	assert.Equal(t, "c", cmd.Flags().Lookup("clock").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("version").Shorthand)
}

func TestVersionFlag(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "keypresser version "+appVersion+"\n", out.String())
}

func TestInvalidFlagsFailBeforeStarting(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"interval too short", []string{"--interval-min", "50"}, "interval minimum 50ms"},
		{"duration and clock", []string{"-d", "10", "-c", "17:00"}, "cannot be used together"},
		{"no valid keys", []string{"-k", "!!"}, "at least one valid key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			args := append([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}, tt.args...)
			cmd.SetArgs(args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.ErrorIs(t, err, simulator.ErrInvalidConfiguration)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigCommandWritesTemplate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses the true command as editor")
	}
	path := filepath.Join(t.TempDir(), "keypresser", "config.toml")
	t.Setenv("EDITOR", "true")

	var out bytes.Buffer
	require.NoError(t, runConfigCmd(&out, path))
	assert.Contains(t, out.String(), "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "keypresser configuration")

	out.Reset()
	require.NoError(t, runConfigCmd(&out, path))
	assert.Empty(t, out.String(), "existing config should not be rewritten")
}
