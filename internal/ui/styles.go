package ui

import "github.com/charmbracelet/lipgloss"

const listWidth = 34

type styles struct {
	pane       lipgloss.Style
	activePane lipgloss.Style
	item       lipgloss.Style
	selected   lipgloss.Style
	title      lipgloss.Style
	snippet    lipgloss.Style
	stamp      lipgloss.Style
	heading    lipgloss.Style
	muted      lipgloss.Style
	status     lipgloss.Style
	errStatus  lipgloss.Style
}

func defaultStyles() styles {
	border := lipgloss.RoundedBorder()
	return styles{
		pane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		activePane: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
		item: lipgloss.NewStyle().
			PaddingLeft(1).
			MarginBottom(1),
		selected: lipgloss.NewStyle().
			PaddingLeft(1).
			MarginBottom(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("33")),
		title:     lipgloss.NewStyle().Bold(true),
		snippet:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		heading:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		errStatus: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
