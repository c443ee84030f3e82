package config

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stigoleg/key-presser/internal/platform"
)

// Flag names shared between BindFlags and ApplyFile.
const (
	FlagKeys        = "keys"
	FlagIntervalMin = "interval-min"
	FlagIntervalMax = "interval-max"
	FlagHoldMin     = "hold-min"
	FlagHoldMax     = "hold-max"
	FlagDuration    = "duration"
	FlagClock       = "clock"
	FlagBackend     = "backend"
	FlagSeed        = "seed"
	FlagHeadless    = "headless"
	FlagAutostart   = "autostart"
	FlagConfig      = "config"
)

// BindFlags registers the simulation flags on cmd, storing values into s.
// The current contents of s become the flag defaults. The config path is a
// persistent flag so subcommands share it.
func BindFlags(cmd *cobra.Command, s *Settings) {
	f := cmd.Flags()
	f.StringVarP(&s.Keys, FlagKeys, "k", s.Keys, "keys to press (A-Z, 0-9, _ for space)")
	f.IntVar(&s.IntervalMin, FlagIntervalMin, s.IntervalMin, "shortest pause between presses in ms")
	f.IntVar(&s.IntervalMax, FlagIntervalMax, s.IntervalMax, "longest pause between presses in ms")
	f.IntVar(&s.HoldMin, FlagHoldMin, s.HoldMin, "shortest key hold in ms")
	f.IntVar(&s.HoldMax, FlagHoldMax, s.HoldMax, "longest key hold in ms")
	f.StringVarP(&s.Duration, FlagDuration, "d", s.Duration, "stop after this long (e.g. \"90\" minutes or \"2h30m\")")
	f.StringVarP(&s.Clock, FlagClock, "c", s.Clock, "stop at this time (e.g. \"17:30\" or \"5:30PM\")")
	f.StringVar(&s.Backend, FlagBackend, s.Backend, "input backend: "+strings.Join(platform.BackendNames(), ", "))
	f.Int64Var(&s.Seed, FlagSeed, s.Seed, "random seed (0 uses the current time)")
	f.BoolVar(&s.Headless, FlagHeadless, s.Headless, "run without the terminal UI")
	f.BoolVar(&s.Autostart, FlagAutostart, s.Autostart, "start simulating immediately in the terminal UI")
	cmd.PersistentFlags().StringVar(&s.ConfigPath, FlagConfig, s.ConfigPath, "path to the TOML config file")
}

// ApplyFile copies values from fc into s for every flag the user did not set
// explicitly.
func ApplyFile(cmd *cobra.Command, fc FileConfig, s *Settings) {
	applyStringConfig(cmd, FlagKeys, &s.Keys, fc.Keys)
	applyStringConfig(cmd, FlagBackend, &s.Backend, fc.Backend)
	applyStringConfig(cmd, FlagDuration, &s.Duration, fc.Duration)
	applyIntConfig(cmd, FlagIntervalMin, &s.IntervalMin, fc.Interval.Min)
	applyIntConfig(cmd, FlagIntervalMax, &s.IntervalMax, fc.Interval.Max)
	applyIntConfig(cmd, FlagHoldMin, &s.HoldMin, fc.Hold.Min)
	applyIntConfig(cmd, FlagHoldMax, &s.HoldMax, fc.Hold.Max)

	// A clock time on the command line replaces a configured duration.
	if cmd.Flags().Changed(FlagClock) && !cmd.Flags().Changed(FlagDuration) {
		s.Duration = ""
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
