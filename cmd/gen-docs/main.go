package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/key-presser/internal/config"
)

// This small tool generates shell completions and a man page from the flags
// keypresser registers. Completions come from cobra; the man page is a
// minimal roff page that mirrors --help contents.

const (
	appName        = "keypresser"
	appDescription = "A randomized key press simulator that presses keys from a set at random intervals and holds them for random times."
)

type flagDef struct {
	Short string
	Long  string
	Arg   string
	Desc  string
}

func main() {
	cmd := newCommand()
	if err := writeCompletions(cmd); err != nil {
		panic(err)
	}
	if err := writeMan(collectFlags(cmd)); err != nil {
		panic(err)
	}
}

// newCommand mirrors the keypresser root command's flag set.
func newCommand() *cobra.Command {
	settings := config.Defaults()
	cmd := &cobra.Command{
		Use:   appName,
		Short: appDescription,
		Run:   func(*cobra.Command, []string) {},
	}
	cmd.Flags().BoolP("version", "v", false, "show version information")
	config.BindFlags(cmd, &settings)
	cmd.AddCommand(&cobra.Command{Use: "config", Short: "Create/open config file", Run: func(*cobra.Command, []string) {}})
	return cmd
}

func collectFlags(cmd *cobra.Command) []flagDef {
	var flags []flagDef
	add := func(f *pflag.Flag) {
		def := flagDef{Long: "--" + f.Name, Desc: f.Usage}
		if f.Shorthand != "" {
			def.Short = "-" + f.Shorthand
		}
		if f.Value.Type() != "bool" {
			def.Arg = "<" + f.Value.Type() + ">"
		}
		flags = append(flags, def)
	}
	cmd.Flags().VisitAll(add)
	cmd.PersistentFlags().VisitAll(add)
	flags = append(flags, flagDef{Short: "-h", Long: "--help", Desc: "show help message"})
	return flags
}

func writeCompletions(cmd *cobra.Command) error {
	base := filepath.Join("docs", "completions")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	if err := cmd.GenBashCompletionFileV2(filepath.Join(base, appName+".bash"), true); err != nil {
		return fmt.Errorf("bash completion: %w", err)
	}
	if err := cmd.GenZshCompletionFile(filepath.Join(base, "_"+appName)); err != nil {
		return fmt.Errorf("zsh completion: %w", err)
	}
	if err := cmd.GenFishCompletionFile(filepath.Join(base, appName+".fish"), true); err != nil {
		return fmt.Errorf("fish completion: %w", err)
	}
	return nil
}

func escapeRoff(s string) string {
	return strings.ReplaceAll(s, "-", "\\-")
}

func writeMan(flags []flagDef) error {
	if err := os.MkdirAll("man", 0o755); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(appName) + "\" \"1\" \"\" \"key-presser\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + appName + " \\- " + appDescription + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + appName + "\n[flags]\n.br\n.B " + appName + " config\n")
	b.WriteString(".SH DESCRIPTION\n" + appDescription + "\n")
	b.WriteString("Intervals and hold times are drawn uniformly from inclusive millisecond ranges.\n")
	b.WriteString(".SH OPTIONS\n")
	for _, f := range flags {
		names := f.Short
		if names != "" {
			names += ", "
		}
		names += f.Long
		if f.Arg != "" {
			names += " " + f.Arg
		}
		b.WriteString(".TP\n\\fB" + escapeRoff(names) + "\\fR\n" + f.Desc + "\n")
	}
	b.WriteString(".SH EXAMPLES\n")
	b.WriteString(".TP\n\\fB" + appName + "\\fR\nStart the interactive TUI with the default WASD keys.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-k ab_ \\-\\-interval\\-min 500 \\-\\-interval\\-max 900\\fR\nPress A, B or space every 500 to 900 ms.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-\\-headless \\-d 30m\\fR\nRun without the TUI and stop after 30 minutes.\n")
	b.WriteString(".TP\n\\fB" + appName + " \\-c 17:30\\fR\nStop at 5:30 PM.\n")
	b.WriteString(".SH FILES\n$XDG_CONFIG_HOME/keypresser/config.toml (default ~/.config/keypresser/config.toml)\n")
	b.WriteString(".SH SEE ALSO\nProject homepage: https://github.com/stigoleg/key-presser\n")
	return os.WriteFile(filepath.Join("man", appName+".1"), []byte(b.String()), 0o644)
}
