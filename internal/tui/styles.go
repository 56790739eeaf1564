package tui

import "github.com/charmbracelet/lipgloss"

// pandaGreen is the accent of the Health Panda brand.
var pandaGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "48"}

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(pandaGreen)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(pandaGreen)
	demoStyle       = lipgloss.NewStyle().Italic(true).Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(pandaGreen).Padding(1, 2)
)
