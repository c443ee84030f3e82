package ui

import (
	"log"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case displayMsg:
		m.display = Snapshot(msg)
		if m.state == StateRunning && !m.engine.Running() {
			log.Printf("ui: session ended with status %q", m.display.Status)
			m = m.toForm()
		}
		return m, m.sink.Wait()

	case tea.KeyMsg:
		switch m.state {
		case StateForm:
			return updateForm(msg, m)
		case StateRunning:
			return updateRunning(msg, m)
		}
	}

	if m.state == StateForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func updateForm(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FormQuit):
		m.engine.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.FormHelp):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1), nil
	case key.Matches(msg, m.keys.Start):
		return m.start(), nil
	}

	if m.focus != fieldKeys && msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.errMsg = ""
	return m, cmd
}

func updateRunning(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Stop):
		log.Printf("ui: stop requested")
		return m.stop(), nil
	}
	return m, nil
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
