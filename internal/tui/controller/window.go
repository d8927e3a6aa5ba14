package controller

import (
	"animalsctl/internal/tui/model"
	"animalsctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg resizes the viewports to the new terminal size.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	bodyW, bodyH := view.BodySize(m)
	if m.DetailViewport.Width != bodyW {
		m.DetailDirty = true
	}
	m.DetailViewport.Width = bodyW
	m.DetailViewport.Height = bodyH

	_, _, logW, logH := view.LogOverlaySize(m.Width, m.Height)
	m.LogViewport.Width = logW
	m.LogViewport.Height = logH
	m.Help.Width = bodyW
	return m, nil
}
