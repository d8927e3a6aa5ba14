package model

import (
	"animalsctl/internal/screen"
	"animalsctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ScreenResultMsg carries the outcome of a screen fetch back to the update loop.
type ScreenResultMsg struct {
	Result screen.Result
}

// NewLogEntryMsg delivers one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the transient status bar message.
type ClearStatusBarMsg struct{}

// FetchCmd runs f off the update loop. A nil Fetch (the screen settled
// without a request) yields no command.
func FetchCmd(f screen.Fetch) tea.Cmd {
	if f == nil {
		return nil
	}
	return func() tea.Msg {
		return ScreenResultMsg{Result: f()}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It must be re-issued
// after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
