package controller

import (
	"fmt"

	"animalsctl/internal/tui/model"
	"animalsctl/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogDebug logs only while the TUI runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// formatLogEntry renders an entry the way the activity log shows it.
func formatLogEntry(entry logging.LogEntry) string {
	line := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		line = fmt.Sprintf("%s -- Error: %v", line, entry.Err)
	}
	return line
}

// handleNewLogEntry adds INFO and above to the activity log, and DEBUG too
// in debug mode.
func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, formatLogEntry(msg.Entry))
	}
	return m
}
