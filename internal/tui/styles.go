// Package tui provides the interactive spotlight title.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("#f87171") // Red - help titles
	ColorAccent  = lipgloss.Color("#fbbf24") // Amber - keys
	ColorMuted   = lipgloss.Color("#6b7280") // Gray - help text, footer
	ColorText    = lipgloss.Color("#9ca3af") // Tagline
	ColorSuccess = lipgloss.Color("#4ade80") // Status messages
	ColorError   = lipgloss.Color("#f87171")
	ColorBorder  = lipgloss.Color("#2dd4bf")
)

// Page styles
var (
	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)
)

// Help box
var (
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)
)
