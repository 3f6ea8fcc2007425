// Package tui is the interactive front end: it collects the initial value
// problem, the run options and a method choice, then hands them back to the
// caller. It never solves anything itself.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/experiment"
)

// ErrAborted is returned when the user leaves the menu with esc or ctrl+c.
var ErrAborted = errors.New("tui: aborted")

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateParams state = iota
	stateOptions
	stateMethod
	stateDone
)

const (
	fieldX0 = iota
	fieldY0
	fieldTarget
	fieldH
	numFields
)

var fieldLabels = [numFields]string{
	"Initial x (x0)",
	"Initial y (y0)",
	"Target x",
	"Step size (h)",
}

const (
	optCompareExact = iota
	optSaveCSV
	optCompare
	numOptions
)

var optionLabels = [numOptions]string{
	"Compare with exact solution",
	"Save results to CSV",
	"Compare all methods",
}

// Selection is what the user chose. When Invalid is set the method choice
// was out of range and nothing should be solved.
type Selection struct {
	Params       dynamo.Params
	CompareExact bool
	SaveCSV      bool
	Compare      bool
	Choice       int
	Methods      []string
	Invalid      bool
}

type Model struct {
	state state

	equation string
	registry *experiment.Registry
	labels   []string

	inputs [numFields]textinput.Model
	focus  int
	params dynamo.Params

	options   [numOptions]bool
	optCursor int

	choice textinput.Model

	err      string
	sel      *Selection
	aborted  bool
	quitting bool
}

// New builds the menu with fields pre-filled from cfg.
func New(cfg *config.Config, equation string, registry *experiment.Registry) Model {
	m := Model{
		equation: equation,
		registry: registry,
	}

	defaults := [numFields]float64{cfg.X0, cfg.Y0, cfg.XTarget, cfg.H}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strconv.FormatFloat(defaults[i], 'f', -1, 64)
		ti.SetValue(ti.Placeholder)
		ti.CharLimit = 24
		ti.Width = 16
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	m.options = [numOptions]bool{cfg.CompareExact, cfg.SaveCSV, cfg.Compare}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = strconv.Itoa(experiment.ChoiceAll)
	ti.CharLimit = 4
	ti.Width = 4
	m.choice = ti

	for _, name := range registry.Names() {
		method, err := registry.Get(name)
		if err != nil {
			continue
		}
		m.labels = append(m.labels, method.Name())
	}
	m.labels = append(m.labels, "All Methods")

	return m
}

// Selection returns the final choice, or nil if the menu has not finished.
func (m Model) Selection() *Selection { return m.sel }

func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateParams:
		return m.paramsKey(key)
	case stateOptions:
		return m.optionsKey(key)
	case stateMethod:
		return m.methodKey(key)
	}
	return m, nil
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateParams:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case stateMethod:
		m.choice, cmd = m.choice.Update(msg)
	}
	return m, cmd
}

func (m Model) paramsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "shift+tab":
		if m.focus > 0 {
			return m.focusField(m.focus - 1)
		}
		return m, nil
	case "enter", "tab", "down":
		if _, err := m.fieldValue(m.focus); err != nil {
			m.err = err.Error()
			return m, nil
		}
		if m.focus < numFields-1 {
			return m.focusField(m.focus + 1)
		}
		if key.String() != "enter" {
			return m, nil
		}
		return m.submitParams()
	}

	m.err = ""
	return m.forward(key)
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.err = ""
	m.inputs[m.focus].Blur()
	m.focus = i
	cmd := m.inputs[m.focus].Focus()
	return m, cmd
}

func (m Model) fieldValue(i int) (float64, error) {
	raw := strings.TrimSpace(m.inputs[i].Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", fieldLabels[i], raw)
	}
	return v, nil
}

func (m Model) submitParams() (tea.Model, tea.Cmd) {
	var vals [numFields]float64
	for i := range vals {
		v, err := m.fieldValue(i)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		vals[i] = v
	}

	p := dynamo.Params{X0: vals[fieldX0], Y0: vals[fieldY0], XTarget: vals[fieldTarget], H: vals[fieldH]}
	if _, err := p.Steps(); err != nil {
		m.err = err.Error()
		return m, nil
	}

	m.err = ""
	m.params = p
	m.inputs[m.focus].Blur()
	m.state = stateOptions
	return m, nil
}

func (m Model) optionsKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "down", "j", "tab":
		if m.optCursor < numOptions-1 {
			m.optCursor++
		}
	case "y":
		m.options[m.optCursor] = true
		if m.optCursor < numOptions-1 {
			m.optCursor++
		}
	case "n":
		m.options[m.optCursor] = false
		if m.optCursor < numOptions-1 {
			m.optCursor++
		}
	case " ", "left", "right":
		m.options[m.optCursor] = !m.options[m.optCursor]
	case "enter":
		m.state = stateMethod
		cmd := m.choice.Focus()
		return m, cmd
	case "backspace":
		m.state = stateParams
		cmd := m.inputs[m.focus].Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) methodKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() != "enter" {
		return m.forward(key)
	}

	raw := strings.TrimSpace(m.choice.Value())
	if raw == "" {
		raw = m.choice.Placeholder
	}

	sel := &Selection{
		Params:       m.params,
		CompareExact: m.options[optCompareExact],
		SaveCSV:      m.options[optSaveCSV],
		Compare:      m.options[optCompare],
	}

	choice, err := strconv.Atoi(raw)
	if err == nil {
		sel.Choice = choice
		sel.Methods, err = m.registry.ByChoice(choice)
	}
	if err != nil {
		sel.Invalid = true
		m.err = fmt.Sprintf("Invalid choice %q. Exiting.", raw)
	}

	m.sel = sel
	m.state = stateDone
	m.quitting = true
	return m, tea.Quit
}

// Run shows the menu and blocks until the user finishes or aborts.
func Run(cfg *config.Config, equation string, registry *experiment.Registry) (*Selection, error) {
	final, err := tea.NewProgram(New(cfg, equation, registry)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(Model)
	if m.aborted || m.sel == nil {
		return nil, ErrAborted
	}
	return m.sel, nil
}
