// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     calculator
// Description: Bubbletea model for the interactive date difference
//              calculator
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package calculator

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/datetool/foundation/utils/timex"
	"github.com/msto63/datetool/internal/difference"
	"github.com/msto63/datetool/internal/report"
)

const (
	fieldStart = iota
	fieldEnd
	fieldCount
)

// Config holds calculator configuration
type Config struct {
	// Start and End prefill the inputs
	Start string
	End   string

	Unit difference.Unit

	// Location applies to dates without an offset (default: Local)
	Location *time.Location
}

// Model is the main Bubbletea model for the calculator
type Model struct {
	width int

	inputs [fieldCount]textinput.Model
	errs   [fieldCount]error
	focus  int

	unit     difference.Unit
	location *time.Location
	results  []difference.Result
}

// New creates a new calculator model
func New(cfg Config) Model {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	start := textinput.New()
	start.Placeholder = "2000-01-01"
	start.CharLimit = 40
	start.Width = 32
	start.SetValue(cfg.Start)

	end := textinput.New()
	end.Placeholder = "2000-01-05T12:00"
	end.CharLimit = 40
	end.Width = 32
	end.SetValue(cfg.End)

	m := Model{
		width:    64,
		inputs:   [fieldCount]textinput.Model{start, end},
		unit:     cfg.Unit,
		location: loc,
	}
	m.inputs[fieldStart].Focus()
	m.recompute()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown, tea.KeyEnter:
			cmd := m.setFocus((m.focus + 1) % fieldCount)
			return m, cmd

		case tea.KeyShiftTab, tea.KeyUp:
			cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd

		case tea.KeyCtrlU:
			m.unit = nextUnit(m.unit)
			m.recompute()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

// Results returns the results for the current inputs, nil while either
// input is empty or invalid
func (m Model) Results() []difference.Result {
	return m.results
}

// Unit returns the selected result unit
func (m Model) Unit() difference.Unit {
	return m.unit
}

func (m *Model) setFocus(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	return m.inputs[m.focus].Focus()
}

// recompute parses both inputs and reruns the engine
func (m *Model) recompute() {
	var instants [fieldCount]time.Time
	valid := true

	for i := range m.inputs {
		value := strings.TrimSpace(m.inputs[i].Value())
		m.errs[i] = nil
		if value == "" {
			valid = false
			continue
		}
		t, err := timex.ParseISOInLocation(value, m.location)
		if err != nil {
			m.errs[i] = err
			valid = false
			continue
		}
		instants[i] = t
	}

	if !valid {
		m.results = nil
		return
	}
	e := difference.New(instants[fieldStart], instants[fieldEnd], difference.WithUnit(m.unit))
	m.results = e.Results()
}

func nextUnit(u difference.Unit) difference.Unit {
	units := difference.Units()
	for i, candidate := range units {
		if candidate == u {
			return units[(i+1)%len(units)]
		}
	}
	return difference.Default
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	header := lipgloss.JoinVertical(lipgloss.Left,
		LogoStyle.Render(Logo),
		SubHeaderStyle.Render("ISO-8601 dates, e.g. 2000-01-01 or 2000-W01-3T10:00Z"),
	)
	b.WriteString(TitlePanelStyle.Width(m.width - 4).Render(header))
	b.WriteString("\n")

	labels := [fieldCount]string{"start", "end"}
	for i := range m.inputs {
		label := LabelStyle.Render(labels[i])
		if i == m.focus {
			label = FocusedLabelStyle.Render(labels[i])
		}
		b.WriteString(label + m.inputs[i].View() + "\n")
		if m.errs[i] != nil {
			b.WriteString(InputErrorStyle.Render("        "+m.errs[i].Error()) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Width(m.width - 2).Render("unit: " + m.unit.String()))
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderResults() string {
	if m.results == nil {
		return ResultPanelStyle.Width(m.width - 2).Render(HelpDescStyle.Render("Enter two valid dates"))
	}

	rows := make([]string, 0, len(m.results))
	for _, r := range m.results {
		rows = append(rows, ResultLabelStyle.Render(r.Kind.String())+
			ResultValueStyle.Render(fmt.Sprintf("%d", r.Value))+" "+
			ResultUnitStyle.Render(report.UnitLabel(r)))
	}
	return ResultPanelStyle.Width(m.width - 2).Render(strings.Join(rows, "\n"))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Tab", "Next field"),
		RenderKeyHint("Ctrl+U", "Unit"),
		RenderKeyHint("Esc", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the calculator and blocks until it exits
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
