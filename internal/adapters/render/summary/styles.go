package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	border     lipgloss.Style
	cell       lipgloss.Style
	ok         lipgloss.Style
	warning    lipgloss.Style
	failed     lipgloss.Style
	empty      lipgloss.Style
	totals     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		border:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		cell:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		ok:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Padding(0, 1),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(0, 1),
		failed:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Padding(0, 1),
		empty:      lipgloss.NewStyle().Faint(true),
		totals:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).MarginTop(1),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
