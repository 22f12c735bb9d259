// Package tui provides the interactive provider picker behind --select
package tui

import (
	"fmt"
	"strings"

	"routerswitch/config/models"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewState represents the current view state
type ViewState int

const (
	ViewProviders ViewState = iota // Provider list
	ViewModels                     // Model list for the highlighted provider
)

// Choice is what the user picked. An empty Model means the provider default.
type Choice struct {
	Provider string
	Model    string
}

// Model is the picker state
type Model struct {
	providers []models.ProviderConfig
	current   string // provider from ROUTERSWITCH_CURRENT_PROVIDER
	cursor    int
	viewState ViewState

	modelCursor int

	keys   KeyMap
	help   help.Model
	styles styles

	choice   Choice
	done     bool
	canceled bool
}

// NewModel builds a picker over cfg's providers with the cursor on current
func NewModel(cfg *models.Config, current string, r *lipgloss.Renderer) Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := Model{
		providers: cfg.Providers,
		current:   current,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    newStyles(r),
	}
	for i, p := range cfg.Providers {
		if p.Name == current {
			m.cursor = i
			break
		}
	}
	return m
}

// Selected returns the choice, or false if the picker was canceled or is still running
func (m Model) Selected() (Choice, bool) {
	return m.choice, m.done && !m.canceled
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.cancel()
	}

	switch m.viewState {
	case ViewProviders:
		return m.handleProviderKeys(msg)
	case ViewModels:
		return m.handleModelKeys(msg)
	}
	return m, nil
}

func (m Model) handleProviderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m.cancel()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.providers)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		if len(m.providers) > 0 {
			m.cursor = len(m.providers) - 1
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.providers) == 0 {
			return m, nil
		}
		p := m.providers[m.cursor]
		// Nothing to choose between: take the default
		if len(p.Models) <= 1 {
			return m.finish(Choice{Provider: p.Name})
		}
		m.viewState = ViewModels
		m.modelCursor = 0
	}
	return m, nil
}

func (m Model) handleModelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.providers[m.cursor]

	switch {
	case key.Matches(msg, m.keys.Back):
		m.viewState = ViewProviders
		m.modelCursor = 0
	case key.Matches(msg, m.keys.Up):
		if m.modelCursor > 0 {
			m.modelCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.modelCursor < len(p.Models)-1 {
			m.modelCursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.modelCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.modelCursor = len(p.Models) - 1
	case key.Matches(msg, m.keys.Select):
		return m.finish(Choice{Provider: p.Name, Model: p.Models[m.modelCursor]})
	}
	return m, nil
}

func (m Model) finish(c Choice) (tea.Model, tea.Cmd) {
	m.choice = c
	m.done = true
	return m, tea.Quit
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.done = true
	m.canceled = true
	return m, tea.Quit
}

// View renders the picker
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	switch m.viewState {
	case ViewProviders:
		m.renderProviders(&b)
	case ViewModels:
		m.renderModels(&b)
	}
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderProviders(b *strings.Builder) {
	b.WriteString(m.styles.title.Render("Select a provider"))
	b.WriteString("\n\n")

	if len(m.providers) == 0 {
		b.WriteString(m.styles.dim.Render("  No providers configured"))
		b.WriteString("\n")
		return
	}

	for i, p := range m.providers {
		label := p.Name
		if p.Name == m.current {
			label += " (current)"
		}

		var line string
		switch {
		case i == m.cursor && p.Name == m.current:
			line = m.styles.activeSelected.Render("➤ " + label)
		case i == m.cursor:
			line = m.styles.selected.Render("➤ " + label)
		case p.Name == m.current:
			line = m.styles.active.Render("  " + label)
		default:
			line = m.styles.normal.Render("  " + label)
		}
		b.WriteString(line)

		if p.Description != "" {
			b.WriteString(m.styles.dim.Render("  " + p.Description))
		}
		b.WriteString("\n")
	}
}

func (m Model) renderModels(b *strings.Builder) {
	p := m.providers[m.cursor]
	b.WriteString(m.styles.title.Render(fmt.Sprintf("Select a model for %s", p.Name)))
	b.WriteString("\n\n")

	for i, model := range p.Models {
		label := model
		if i == 0 {
			label += " (default)"
		}
		if i == m.modelCursor {
			b.WriteString(m.styles.selected.Render("➤ " + label))
		} else {
			b.WriteString(m.styles.normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
}
