// Package main provides the CLI entrypoint for keypresser.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stigoleg/key-presser/internal/config"
	"github.com/stigoleg/key-presser/internal/platform"
	"github.com/stigoleg/key-presser/internal/schedule"
	"github.com/stigoleg/key-presser/internal/simulator"
	"github.com/stigoleg/key-presser/internal/ui"
)

const appVersion = "1.0.0"

// errReported marks errors that were already printed to the user.
var errReported = errors.New("error already reported")

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			logErrln(config.FormatError(err))
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	settings := config.Defaults()

	rootCmd := &cobra.Command{
		Use:           "keypresser",
		Short:         "Randomized key press simulator",
		Long:          "Presses a random key from a set at random intervals, holding each one for a random time.",
		Version:       appVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, &settings)
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "show version information")
	rootCmd.SetVersionTemplate("keypresser version {{.Version}}\n")
	config.BindFlags(rootCmd, &settings)

	rootCmd.AddCommand(newConfigCmd(&settings))
	return rootCmd
}

func runRoot(cmd *cobra.Command, settings *config.Settings) error {
	fileCfg, err := config.LoadConfig(settings.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyFile(cmd, fileCfg, settings)

	// Validate up front so flag mistakes fail before any backend is opened.
	cfg, warnings, err := settings.Resolve(time.Now())
	if err != nil {
		return err
	}

	headless := settings.Headless || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		log.SetOutput(os.Stderr)
	} else {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	}

	backend, err := platform.NewBackend(settings.Backend)
	if err != nil {
		logErrln(config.FormatError(backendError(err)))
		return errReported
	}
	log.Printf("main: using %s backend", backend.Name())

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []simulator.Option{simulator.WithRand(rand.New(rand.NewSource(seed)))}

	cleanup := simulator.NewCleanup(simulator.DefaultCleanupTimeout)
	if headless {
		display := newLineDisplay(os.Stdout)
		engine := simulator.New(schedule.NewTimers(), platform.NewAdapter(backend), display, opts...)
		cleanup.AddEngine(engine)
		cleanup.Add("backend", backend.Close)
		return runHeadless(engine, cfg, warnings, cleanup)
	}

	sink := ui.NewSink()
	engine := simulator.New(schedule.NewTimers(), platform.NewAdapter(backend), sink, opts...)
	cleanup.AddEngine(engine)
	cleanup.Add("backend", backend.Close)
	return runTUI(engine, sink, *settings, backend.Name(), cleanup)
}

// backendError adds setup hints to a backend failure.
func backendError(err error) error {
	capability := platform.CheckCapability()
	if capability.Instructions == "" {
		return err
	}
	return fmt.Errorf("%w\n\n%s", err, capability.Instructions)
}

func runHeadless(engine *simulator.Engine, cfg simulator.Config, warnings []string, cleanup *simulator.Cleanup) error {
	for _, w := range warnings {
		logErrln(w)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	if err := engine.Start(cfg); err != nil {
		return err
	}

	select {
	case <-engine.Done():
		log.Printf("main: session ended")
	case sig := <-sigChan:
		log.Printf("main: received signal: %v", sig)
		if isSIGTSTPForPlatform(sig) {
			log.Printf("main: suspend requested, stopping so no key stays held")
		}
	}

	if err := cleanup.Run(); err != nil {
		log.Printf("main: cleanup failed: %v", err)
		return err
	}
	return nil
}

func runTUI(engine *simulator.Engine, sink *ui.Sink, settings config.Settings, backendName string, cleanup *simulator.Cleanup) error {
	model := ui.NewModel(ui.Options{
		Engine:   engine,
		Sink:     sink,
		Settings: settings,
		Backend:  backendName,
		Version:  "v" + appVersion,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	// Handle signals in a separate goroutine
	go func() {
		sig := <-sigChan
		log.Printf("main: received signal: %v", sig)
		if err := cleanup.Run(); err != nil {
			log.Printf("main: cleanup failed: %v", err)
		}
		p.Kill()
	}()

	_, runErr := p.Run()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("main: error running program: %v", runErr)
	}
	if err := cleanup.Run(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return nil
}

func newConfigCmd(settings *config.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigCmd(cmd.OutOrStdout(), settings.ConfigPath)
		},
	}
}

func runConfigCmd(out io.Writer, path string) error {
	created, err := config.WriteTemplate(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(out, "Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
