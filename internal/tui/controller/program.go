package controller

import (
	"animalsctl/internal/tui/model"
	"animalsctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the animals browser.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen()), nil
}
