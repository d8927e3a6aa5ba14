package controller

import (
	"fmt"
	"strings"

	"animalsctl/internal/screen"
	"animalsctl/internal/tui/model"
	"animalsctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// handleKeyMsgGlobal processes key presses. Overlays take their own keys
// first; everything else drives navigation on the current screen.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "l", "esc":
			m.CurrentAppMode = model.ModeBrowse
			return m, nil
		case "y":
			return copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Help) || keyMsg.String() == "esc" {
			m.CurrentAppMode = model.ModeBrowse
		}
		return m, nil
	}

	// --- Browse mode --------------------------------------------------------
	onDetail := m.CurrentRoute().Screen == screen.AnimalDetailScreen

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Up):
		if onDetail {
			var vpCmd tea.Cmd
			m.DetailViewport, vpCmd = m.DetailViewport.Update(keyMsg)
			return m, vpCmd
		}
		m.MoveCursor(-1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		if onDetail {
			var vpCmd tea.Cmd
			m.DetailViewport, vpCmd = m.DetailViewport.Update(keyMsg)
			return m, vpCmd
		}
		m.MoveCursor(1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		if !m.SelectCurrent() {
			LogDebug(m, controllerSubsystem, "Nothing to open on %s", m.CurrentRoute().Screen)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Back):
		return m, m.Back()

	case key.Matches(keyMsg, m.Keys.Tab):
		return m, m.NextTab()

	case key.Matches(keyMsg, m.Keys.Animals):
		return m, m.SwitchTab(model.TabAnimals)

	case key.Matches(keyMsg, m.Keys.Environments):
		return m, m.SwitchTab(model.TabEnvironments)

	case key.Matches(keyMsg, m.Keys.Reload):
		logging.Info(controllerSubsystem, "Reloading %s", m.CurrentRoute().Screen)
		return m, m.Reload()

	case key.Matches(keyMsg, m.Keys.CopyID):
		item, ok := m.SelectedItem()
		if !ok {
			return m, m.SetStatusMessage("Nothing selected", model.StatusBarWarning, statusMessageDuration)
		}
		return copyToClipboard(m, item.ID, fmt.Sprintf("Copied id of %s", item.Title))

	case key.Matches(keyMsg, m.Keys.CopyImage):
		item, ok := m.SelectedItem()
		if !ok || item.Image == "" {
			return m, m.SetStatusMessage("No image to copy", model.StatusBarWarning, statusMessageDuration)
		}
		return copyToClipboard(m, item.Image, fmt.Sprintf("Copied image URL of %s", item.Title))
	}

	if onDetail {
		var vpCmd tea.Cmd
		m.DetailViewport, vpCmd = m.DetailViewport.Update(keyMsg)
		return m, vpCmd
	}
	return m, nil
}

func copyToClipboard(m *model.Model, text, success string) (*model.Model, tea.Cmd) {
	if err := writeClipboard(text); err != nil {
		logging.Error(controllerSubsystem, err, "Failed to write to clipboard")
		return m, m.SetStatusMessage("Copy to clipboard failed", model.StatusBarError, statusMessageDuration)
	}
	return m, m.SetStatusMessage(success, model.StatusBarSuccess, statusMessageDuration)
}

// quit cancels every fetch still in flight and stops the program.
func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	m.Controller(m.CurrentRoute().Screen).Leave()
	if m.Cancel != nil {
		m.Cancel()
	}
	return m, tea.Quit
}
