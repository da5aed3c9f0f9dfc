// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     report
// Description: Styled terminal panel renderer
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/datetool/internal/difference"
)

// Color Palette - shared with the interactive calculator
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// prettyStyles are bound to the renderer of the destination writer so
// colors are only emitted to terminals
type prettyStyles struct {
	panel lipgloss.Style
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	unit  lipgloss.Style
}

func newPrettyStyles(r *lipgloss.Renderer) prettyStyles {
	return prettyStyles{
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2),
		title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		label: r.NewStyle().
			Foreground(ColorTextMuted).
			Width(16),
		value: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		unit: r.NewStyle().
			Foreground(ColorSecondary),
	}
}

func renderPretty(w io.Writer, rep Report) error {
	st := newPrettyStyles(lipgloss.NewRenderer(w))

	rows := []string{
		st.title.Render("Date difference"),
		"",
		st.label.Render("start") + rep.Start.Format(time.RFC3339),
		st.label.Render("end") + rep.End.Format(time.RFC3339),
	}
	if len(rep.Results) > 0 {
		rows = append(rows, "")
	}
	for _, r := range rep.Results {
		rows = append(rows, st.label.Render(r.Kind.String())+
			st.value.Render(fmt.Sprintf("%d", r.Value))+" "+
			st.unit.Render(UnitLabel(r)))
	}

	_, err := fmt.Fprintln(w, st.panel.Render(strings.Join(rows, "\n")))
	return err
}

// UnitLabel names the unit a result is expressed in, resolving the
// default unit to the calculation's native one
func UnitLabel(r difference.Result) string {
	if r.Unit != difference.Default {
		return r.Unit.String()
	}
	switch r.Kind {
	case difference.KindWeekdays:
		return "weekdays"
	case difference.KindCompleteWeeks:
		return "weeks"
	default:
		return "days"
	}
}
