package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/key-presser/internal/simulator"
)

var (
	errorColor  = lipgloss.Color("#FF4040")
	detailColor = lipgloss.Color("#999999")

	errorBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(errorColor).Padding(0, 1)
	errorHeader  = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	errorDetails = lipgloss.NewStyle().Foreground(detailColor)
)

// FormatError renders err for the terminal. Messages with a details section
// (separated by a blank line) get a bordered box.
func FormatError(err error) string {
	msg := ErrorMessage(err)
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		return errorBox.Render(fmt.Sprintf("%s\n\n%s", errorHeader.Render(parts[0]), errorDetails.Render(parts[1])))
	}
	return errorHeader.Render(msg)
}

// ErrorMessage returns err's text without the invalid configuration prefix.
func ErrorMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, simulator.ErrInvalidConfiguration) {
		msg = strings.TrimPrefix(msg, simulator.ErrInvalidConfiguration.Error()+": ")
	}
	return msg
}
