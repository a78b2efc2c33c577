package machine

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	slot    lipgloss.Style
	name    lipgloss.Style
	price   lipgloss.Style
	soldOut lipgloss.Style
	balance lipgloss.Style
	drawer  lipgloss.Style
	product lipgloss.Style
	change  lipgloss.Style
	message lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		slot:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		price:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		soldOut: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		balance: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		drawer:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		product: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		change:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		message: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
	}
}
