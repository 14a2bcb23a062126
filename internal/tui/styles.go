package tui

import "github.com/charmbracelet/lipgloss"

var (
	highVisYellow = lipgloss.Color("#E8BE42")
	dimGray       = lipgloss.Color("#6C6C6C")
	alertRed      = lipgloss.Color("#E05D5D")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highVisYellow)

	statusStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	secondsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highVisYellow).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highVisYellow)

	pausedSecondsStyle = secondsStyle.
				Foreground(dimGray).
				BorderForeground(dimGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(alertRed)

	frameStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
