package tui

import "github.com/charmbracelet/lipgloss"

// styles are bound to a renderer so colors follow the stream the picker draws on
type styles struct {
	title          lipgloss.Style
	selected       lipgloss.Style
	active         lipgloss.Style
	activeSelected lipgloss.Style
	normal         lipgloss.Style
	dim            lipgloss.Style
	help           lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		selected: r.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),
		active: r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true),
		activeSelected: r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Background(lipgloss.Color("57")).
			Bold(true),
		normal: r.NewStyle().
			Foreground(lipgloss.Color("252")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("241")),
		help: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}
