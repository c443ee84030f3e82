package ui

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/key-presser/internal/config"
	"github.com/stigoleg/key-presser/internal/simulator"
)

// Form fields in focus order.
const (
	fieldKeys = iota
	fieldIntervalMin
	fieldIntervalMax
	fieldHoldMin
	fieldHoldMax
	fieldCount
)

// Options wires a Model to its collaborators.
type Options struct {
	Engine   *simulator.Engine
	Sink     *Sink
	Settings config.Settings

	// Backend names the injection backend for the running view.
	Backend string
	Version string

	// Now defaults to time.Now.
	Now func() time.Time
}

// Model holds the state of the TUI: the configuration form, the latest
// engine display values and the session controls.
type Model struct {
	state    State
	engine   *simulator.Engine
	sink     *Sink
	settings config.Settings
	backend  string
	version  string
	now      func() time.Time

	inputs []textinput.Model
	focus  int

	display  Snapshot
	errMsg   string
	warnings []string

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
}

// NewModel builds the form from opts.Settings. With Settings.Autostart the
// session starts before the first frame.
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Sink == nil {
		opts.Sink = NewSink()
	}

	m := Model{
		state:    StateForm,
		engine:   opts.Engine,
		sink:     opts.Sink,
		settings: opts.Settings,
		backend:  opts.Backend,
		version:  opts.Version,
		now:      opts.Now,
		display:  opts.Sink.Snapshot(),
		keys:     DefaultKeys(),
		help:     help.New(),
	}
	m.inputs = newInputs(opts.Settings)
	m.inputs[fieldKeys].Focus()

	if opts.Settings.Autostart {
		m = m.start()
	}
	return m
}

func newInputs(s config.Settings) []textinput.Model {
	values := [fieldCount]string{
		fieldKeys:        s.Keys,
		fieldIntervalMin: strconv.Itoa(s.IntervalMin),
		fieldIntervalMax: strconv.Itoa(s.IntervalMax),
		fieldHoldMin:     strconv.Itoa(s.HoldMin),
		fieldHoldMax:     strconv.Itoa(s.HoldMax),
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.SetValue(values[i])
		if i == fieldKeys {
			in.CharLimit = 37
			in.Width = 16
			in.Placeholder = config.DefaultKeys
		} else {
			in.CharLimit = 5
			in.Width = 6
		}
		inputs[i] = in
	}
	return inputs
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.sink.Wait())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// State returns the current screen.
func (m Model) State() State {
	return m.state
}

// Err returns the message shown for the last rejected start, if any.
func (m Model) Err() string {
	return m.errMsg
}

// formSettings overlays the form values on the base settings.
func (m Model) formSettings() (config.Settings, error) {
	s := m.settings
	s.Keys = m.inputs[fieldKeys].Value()

	numbers := []struct {
		name   string
		field  int
		target *int
	}{
		{"interval minimum", fieldIntervalMin, &s.IntervalMin},
		{"interval maximum", fieldIntervalMax, &s.IntervalMax},
		{"hold minimum", fieldHoldMin, &s.HoldMin},
		{"hold maximum", fieldHoldMax, &s.HoldMax},
	}
	for _, n := range numbers {
		v, err := strconv.Atoi(m.inputs[n.field].Value())
		if err != nil {
			return s, fmt.Errorf("%s must be a whole number of milliseconds", n.name)
		}
		*n.target = v
	}
	return s, nil
}

// start validates the form and starts a session.
func (m Model) start() Model {
	s, err := m.formSettings()
	if err != nil {
		m.errMsg = err.Error()
		return m
	}

	cfg, warnings, err := s.Resolve(m.now())
	if err != nil {
		m.errMsg = config.ErrorMessage(err)
		return m
	}

	if err := m.engine.Start(cfg); err != nil {
		m.errMsg = config.ErrorMessage(err)
		return m
	}

	// Keep the normalised keys in the form for the next session.
	m.inputs[fieldKeys].SetValue(config.FormatKeys(cfg.Keys))
	m.settings = s
	m.warnings = warnings
	m.errMsg = ""
	m.state = StateRunning
	m.inputs[m.focus].Blur()
	m.display = m.sink.Snapshot()

	log.Printf("ui: started simulation (%s)", simulator.StatusText(cfg))
	return m
}

// stop ends the session and returns to the form.
func (m Model) stop() Model {
	m.engine.Stop()
	return m.toForm()
}

func (m Model) toForm() Model {
	m.state = StateForm
	m.display = m.sink.Snapshot()
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) setFocus(i int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// remaining returns the time left in a session with an automatic stop.
func (m Model) remaining() (time.Duration, time.Duration, bool) {
	runFor := m.engine.Config().RunFor
	if m.state != StateRunning || runFor <= 0 {
		return 0, 0, false
	}
	left := runFor - m.now().Sub(m.engine.State().StartTime)
	if left < 0 {
		left = 0
	}
	return left, runFor, true
}
