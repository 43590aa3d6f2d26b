// Package ui provides the terminal rendering for taqyim: shared styles and
// table/chart helpers used by the CLI commands, and the interactive
// bubbletea interface.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1d4ed8", Dark: "#60a5fa"} // blue
	colorGood    = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"} // green
	colorAccent  = lipgloss.AdaptiveColor{Light: "#7e22ce", Dark: "#c084fc"} // purple
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"} // gray
	colorBad     = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"} // red
	colorBorder  = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}
)

// Styles holds the style set shared by the CLI output and the TUI.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Body    lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Good    lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
	TabOn   lipgloss.Style
	TabOff  lipgloss.Style
	BarFill lipgloss.Style
}

// DefaultStyles builds the style set. theme accepts "light", "dark" or
// "auto"; lipgloss resolves adaptive colors against the terminal background,
// so only an explicit override changes anything here.
func DefaultStyles(theme string) Styles {
	if theme == "light" {
		lipgloss.SetHasDarkBackground(false)
	} else if theme == "dark" {
		lipgloss.SetHasDarkBackground(true)
	}

	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Header:  lipgloss.NewStyle().Bold(true).Underline(true),
		Body:    lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Accent:  lipgloss.NewStyle().Foreground(colorAccent),
		Good:    lipgloss.NewStyle().Foreground(colorGood),
		Error:   lipgloss.NewStyle().Foreground(colorBad),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 2),
		TabOn:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true).Padding(0, 1),
		TabOff:  lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		BarFill: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
