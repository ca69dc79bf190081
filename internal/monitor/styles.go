package monitor

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette.
const (
	ColorBorder = lipgloss.Color("#2A3A4A")

	// Feed-state colors
	ColorLive   = lipgloss.Color("#39FF14") // green: streaming
	ColorFrozen = lipgloss.Color("#FFAA00") // amber: holding a capture

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4C4D0")
	ColorTextMuted     = lipgloss.Color("#6B7B8D")

	ColorAccent = lipgloss.Color("#00C8FF") // cyan accent
	ColorGraph  = lipgloss.Color("#00FFFF") // sparkline
	ColorError  = lipgloss.Color("#FF0055")
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, 1)

	NotifyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 1).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BadgeLiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorLive).
			Bold(true).
			Padding(0, 1)

	BadgeFrozenStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorFrozen).
				Bold(true).
				Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)
)
