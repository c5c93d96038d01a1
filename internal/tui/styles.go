package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fafd7"}
	errorColor  = lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"}

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	busyStyle       = lipgloss.NewStyle().Italic(true).Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(errorColor)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(1, 2)
)
