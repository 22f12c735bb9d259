package tui

import (
	"errors"
	"fmt"
	"os"

	"routerswitch/config/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user leaves the picker without choosing
var ErrCanceled = errors.New("selection canceled")

// Run shows the picker on stderr so stdout stays clean for eval
func Run(cfg *models.Config, current string) (Choice, error) {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return Choice{}, fmt.Errorf("--select requires an interactive terminal")
	}
	if len(cfg.Providers) == 0 {
		return Choice{}, fmt.Errorf("no providers configured")
	}

	m := NewModel(cfg, current, lipgloss.NewRenderer(os.Stderr))
	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return Choice{}, fmt.Errorf("picker failed: %w", err)
	}

	choice, ok := final.(Model).Selected()
	if !ok {
		return Choice{}, ErrCanceled
	}
	return choice, nil
}

// isTerminal checks if f is a terminal
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
