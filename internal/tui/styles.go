package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")
	colorSuccess = lipgloss.Color("10")
	colorError   = lipgloss.Color("9")
	colorWarn    = lipgloss.Color("11")
	colorMuted   = lipgloss.Color("8")
	colorAccent  = lipgloss.Color("13")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("15")).Background(colorPrimary)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
	activePanel    = panelStyle.BorderForeground(colorPrimary)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	warnStyle      = lipgloss.NewStyle().Foreground(colorWarn)
	accentStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	keyStyle       = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	disabledStyle  = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
)
