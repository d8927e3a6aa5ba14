package controller

import (
	"time"

	"animalsctl/internal/screen"
	"animalsctl/internal/tui/model"
	"animalsctl/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

const statusMessageDuration = 3 * time.Second

// mainControllerDispatch routes every message to its handler, then follows
// up on what the handlers left behind: routes queued by selection callbacks
// and stale viewport content.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsgGlobal(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ScreenResultMsg:
		m, cmd = handleScreenResultMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else {
			m.DetailViewport, cmd = m.DetailViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
	}

	if m.CurrentAppMode == model.ModeQuitting {
		return m, tea.Batch(cmds...)
	}

	cmds = append(cmds, m.DrainPendingRoutes())
	refreshViewports(m)

	return m, tea.Batch(cmds...)
}

// handleScreenResultMsg applies a fetch result. Stale results are dropped by
// the screen controller.
func handleScreenResultMsg(m *model.Model, msg model.ScreenResultMsg) (*model.Model, tea.Cmd) {
	if !m.ApplyResult(msg.Result) {
		return m, nil
	}
	if msg.Result.Screen != m.CurrentRoute().Screen {
		return m, nil
	}
	if m.Controller(msg.Result.Screen).Phase() != screen.PhaseFailed {
		return m, nil
	}
	return m, m.SetStatusMessage("Loading failed, press r to retry", model.StatusBarError, statusMessageDuration)
}

// refreshViewports re-renders viewport content when its source changed or
// its width did.
func refreshViewports(m *model.Model) {
	if m.ActivityLogDirty || m.LogViewportLastWidth != m.LogViewport.Width {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if atBottom || m.CurrentAppMode != model.ModeLogOverlay {
			m.LogViewport.GotoBottom()
		}
		m.LogViewportLastWidth = m.LogViewport.Width
		m.ActivityLogDirty = false
	}

	if m.DetailDirty && m.CurrentRoute().Screen == screen.AnimalDetailScreen {
		if s := m.AnimalDetail.State(); s.Loaded() {
			m.DetailViewport.SetContent(view.AnimalDetailContent(s.Data, m.DetailViewport.Width))
		} else {
			m.DetailViewport.SetContent("")
		}
		m.DetailDirty = false
	}
}
