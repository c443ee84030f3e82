package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/stigoleg/key-presser/internal/platform"
	"github.com/stigoleg/key-presser/internal/simulator"
	"github.com/stigoleg/key-presser/internal/util"
)

const progressWidth = 20

// Define gradient colors (from purple to green)
var gradientColors = []string{
	"#7D56F4", "#735AF5", "#695CF6", "#5F5FF7", "#5562F8",
	"#4B65F9", "#4168FA", "#376BFB", "#2D6EFC", "#2371FD",
	"#1974FE", "#0F77FF", "#057AFF", "#007DFA", "#0081F0",
	"#0085E6", "#0089DC", "#008DD2", "#0091C8", "#0095BE",
	"#0099B4", "#009DAA", "#00A1A0", "#00A596", "#00A98C",
	"#00AD82", "#00B178", "#00B56E", "#00B964", "#00BD5A",
	"#43BF6D",
}

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.showHelp {
		return helpView(m)
	}

	var b strings.Builder
	b.WriteString(Current.Title.Render("Key Press Simulator"))
	if m.version != "" {
		b.WriteString(Current.Help.Render(m.version))
	}
	b.WriteString("\n\n")

	switch m.state {
	case StateForm:
		b.WriteString(formView(m))
	case StateRunning:
		b.WriteString(runningView(m))
	}

	b.WriteString("\n")
	b.WriteString(statusView(m))

	for _, w := range m.warnings {
		b.WriteString("\n" + Current.Warning.Render(w))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.errMsg))
	}

	b.WriteString("\n\n" + m.help.View(m.keys.ForState(m.state)))
	return b.String()
}

func formView(m Model) string {
	labels := [fieldCount]string{
		fieldKeys:        "Keys (_ = space)",
		fieldIntervalMin: "Interval min (ms)",
		fieldIntervalMax: "Interval max (ms)",
		fieldHoldMin:     "Hold min (ms)",
		fieldHoldMax:     "Hold max (ms)",
	}

	var b strings.Builder
	for i, in := range m.inputs {
		label, box := Current.Label, Current.InputBox
		if i == m.focus {
			label, box = Current.FocusedLabel, Current.FocusedInput
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center, label.Render(labels[i]), box.Render(in.View()))
		b.WriteString(row + "\n")
	}
	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	if m.backend != "" {
		b.WriteString(Current.Help.Render("Backend: " + m.backend))
		b.WriteString("\n")
	}

	if st := m.engine.State(); st.LastKey != 0 {
		last := "Last key: " + platform.KeyName(st.LastKey)
		if st.Phase() == simulator.PhaseKeyDown {
			last += " (held)"
		}
		b.WriteString(Current.Help.Render(last))
		b.WriteString("\n")
	}

	// Show countdown and progress bar if this session stops on its own
	remaining, total, ok := m.remaining()
	if !ok {
		return b.String()
	}

	b.WriteString(Current.Countdown.Render(util.FormatClock(remaining) + " remaining"))
	b.WriteString("\n")
	b.WriteString(progressBar(1.0 - float64(remaining)/float64(total)))
	b.WriteString("\n")
	return b.String()
}

func statusView(m Model) string {
	status := m.display.Status
	if m.width > 4 {
		status = runewidth.Truncate(status, m.width-4, "…")
	}

	style := Current.InactiveStatus
	if m.state == StateRunning {
		style = Current.ActiveStatus
	}

	var b strings.Builder
	b.WriteString(style.Render(status))
	b.WriteString("\n")
	b.WriteString(Current.Counter.Render(simulator.CounterText(m.display.Count)))
	b.WriteString("\n")
	b.WriteString(Current.Counter.Render(simulator.ElapsedText(m.display.Elapsed)))
	return b.String()
}

func progressBar(progress float64) string {
	filled := int(progress * float64(progressWidth))
	if filled > progressWidth {
		filled = progressWidth
	}

	var bar strings.Builder
	for i := 0; i < progressWidth; i++ {
		if i >= filled {
			bar.WriteString(Current.ProgressBar.Render(" "))
			continue
		}
		colorIndex := i * (len(gradientColors) - 1) / progressWidth
		block := Current.ProgressBar.Background(lipgloss.Color(gradientColors[colorIndex]))
		bar.WriteString(block.Render(" "))
	}
	return " " + bar.String()
}

func helpView(m Model) string {
	help := `Key Press Simulator Help

Presses a random key from the configured set at random intervals and
holds it for a random time. Intervals and holds are drawn uniformly from
the inclusive min-max range in milliseconds.

Usage:
  keypresser [flags]
  keypresser config

Flags:
  -k, --keys string        Keys to press, "_" for space (default "wasd")
      --interval-min int   Minimum interval between presses in ms (default 800)
      --interval-max int   Maximum interval between presses in ms (default 1200)
      --hold-min int       Minimum hold time in ms (default 200)
      --hold-max int       Maximum hold time in ms (default 500)
  -d, --duration string    Stop after a duration ("90", "1h30m")
  -c, --clock string       Stop at a time of day ("17:30", "5:30PM")
      --backend string     Injection backend (default "auto")
      --headless           Run without the interface
      --autostart          Start the session immediately
      --config string      Path to the TOML configuration file

Form:
  Tab/Shift+Tab, ↑/↓ : Move between fields
  Enter              : Start simulating
  Esc/Ctrl+C         : Quit

Running:
  S/Enter/Esc : Stop and return to the form
  Q/Ctrl+C    : Stop and quit`

	closeHint := "Press F1 to close help"
	if m.state == StateRunning {
		closeHint = "Press ? or F1 to close help"
	}
	return Current.Help.Render(help + "\n\n" + closeHint)
}
