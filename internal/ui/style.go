// Package ui provides the terminal user interface for the key press simulator.
package ui

import "github.com/charmbracelet/lipgloss"

// palette is the set of adaptive colors the screens are drawn with.
type palette struct {
	muted  lipgloss.AdaptiveColor
	accent lipgloss.AdaptiveColor
	active lipgloss.AdaptiveColor
	warn   lipgloss.AdaptiveColor
	fail   lipgloss.AdaptiveColor
	track  lipgloss.AdaptiveColor
}

var colors = palette{
	muted:  lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#A0A0A0"},
	accent: lipgloss.AdaptiveColor{Light: "#5A3FD1", Dark: "#8B6CF6"},
	active: lipgloss.AdaptiveColor{Light: "#2E9E57", Dark: "#6EE7A0"},
	warn:   lipgloss.AdaptiveColor{Light: "#A67C00", Dark: "#F2C94C"},
	fail:   lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5C5C"},
	track:  lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#303030"},
}

// Style groups the lipgloss styles used by the form and running screens.
type Style struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	InputBox       lipgloss.Style
	FocusedInput   lipgloss.Style
	ActiveStatus   lipgloss.Style
	InactiveStatus lipgloss.Style
	Counter        lipgloss.Style
	Countdown      lipgloss.Style
	ProgressBar    lipgloss.Style
	Warning        lipgloss.Style
	Error          lipgloss.Style
	Help           lipgloss.Style
}

const labelWidth = 22

func text(fg lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1).Foreground(fg)
}

func box(border lipgloss.AdaptiveColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// NewStyle builds the style set from the package palette.
func NewStyle() Style {
	return Style{
		Title:          text(colors.accent).Bold(true),
		Label:          text(colors.muted).Width(labelWidth),
		FocusedLabel:   text(colors.accent).Width(labelWidth).Bold(true),
		InputBox:       box(colors.muted),
		FocusedInput:   box(colors.accent),
		ActiveStatus:   text(colors.active),
		InactiveStatus: text(colors.muted),
		Counter:        lipgloss.NewStyle().Padding(0, 1),
		Countdown:      text(colors.accent).Bold(true),
		ProgressBar:    lipgloss.NewStyle().Background(colors.track),
		Warning:        text(colors.warn),
		Error:          text(colors.fail),
		Help:           text(colors.muted),
	}
}

// Current is the style set in use.
var Current = NewStyle()
