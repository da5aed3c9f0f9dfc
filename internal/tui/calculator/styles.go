// ============================================================================
// DateTool - Calendar Difference Calculator
// ============================================================================
//
// Package:     calculator
// Description: Styles for the calculator TUI
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/datetool/internal/report"
)

// Color Palette - shared with the pretty report renderer
var (
	ColorPrimary   = report.ColorPrimary
	ColorSecondary = report.ColorSecondary
	ColorSuccess   = report.ColorSuccess
	ColorDimmed    = report.ColorDimmed
	ColorText      = report.ColorText
	ColorTextMuted = report.ColorTextMuted
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2).
			MarginBottom(1)
)

// Input styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(8)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(8)

	InputErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Result styles
var (
	ResultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Width(16)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	ResultUnitStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Status and help styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "DateTool Calculator"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
