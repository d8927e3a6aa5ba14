// Package controller drives the animalsctl terminal UI.
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model): the route stack, the four screen
//     controllers, cursor, overlays, status bar and activity log
//   - View (internal/tui/view): pure rendering of the model with lipgloss
//   - Controller (this package): turns Bubble Tea messages into model
//     changes and returns the commands that fetch data
//
// # Message Flow
//
//  1. A key press or navigation activates a screen; the activation returns
//     a fetch that runs as a tea.Cmd
//  2. The fetch completes with a ScreenResultMsg
//  3. The controller applies it to the screen it belongs to; results for a
//     screen the user already left are dropped
//  4. The view renders the screen's state: spinner, data, empty text, error
//     or invalid reference
//
// Log entries produced anywhere in the process arrive on the logging
// channel and are appended to the activity log overlay (l).
//
// # Usage Example
//
//	p, err := controller.NewProgram(model.TUIConfig{API: client}, logChannel)
//	if err != nil {
//	    return err
//	}
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package controller
