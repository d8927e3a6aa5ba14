package model

import (
	"context"
	"time"

	"animalsctl/internal/api"
	"animalsctl/internal/screen"
	"animalsctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// Tab is one of the two top-level sections.
type Tab int

const (
	TabAnimals Tab = iota
	TabEnvironments
)

func (t Tab) String() string {
	if t == TabEnvironments {
		return "Environments"
	}
	return "Animals"
}

// Root is the list screen a tab starts on.
func (t Tab) Root() screen.ID {
	if t == TabEnvironments {
		return screen.EnvironmentListScreen
	}
	return screen.AnimalListScreen
}

// ParseTab maps a config value ("animals", "environments") to a Tab.
// Anything else is the animals tab.
func ParseTab(name string) Tab {
	if name == "environments" {
		return TabEnvironments
	}
	return TabAnimals
}

// Route is one entry of the back stack.
type Route struct {
	Screen screen.ID
	// ID is the animal or environment id for detail screens.
	ID string
	// Title is shown in the breadcrumb.
	Title string
	// Cursor is the list position to restore when returning to this route.
	Cursor int
}

// Item is one selectable row on the current screen.
type Item struct {
	ID          string
	Title       string
	Description string
	Image       string
}

// TUIConfig holds what the TUI needs from the application.
type TUIConfig struct {
	API       api.AnimalsAPI
	StartTab  string
	DebugMode bool
	ColorMode string
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines bounds the in-memory activity log.
const MaxActivityLogLines = 1000

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Enter        key.Binding
	Back         key.Binding
	Tab          key.Binding
	Animals      key.Binding
	Environments key.Binding
	Reload       key.Binding
	CopyID       key.Binding
	CopyImage    key.Binding
	ToggleLog    key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// FullHelp returns bindings for the help overlay, one slice per column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Back},
		{k.Tab, k.Animals, k.Environments, k.Reload},
		{k.CopyID, k.CopyImage, k.ToggleLog, k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown under the current screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.Tab, k.Reload, k.Help, k.Quit}
}

// Model is the whole TUI state.
type Model struct {
	// Terminal
	Width  int
	Height int

	// UI state
	CurrentAppMode  AppMode
	DebugMode       bool
	ColorMode       string
	QuittingMessage string

	// Data source and the context every fetch derives from. Cancel is
	// called on quit.
	API    api.AnimalsAPI
	Ctx    context.Context
	Cancel context.CancelFunc

	// Navigation
	ActiveTab     Tab
	Stack         []Route
	PendingRoutes []Route
	Cursor        int

	// Screen controllers, one per screen, shared by both tabs.
	AnimalList        *screen.AnimalList
	AnimalDetail      *screen.AnimalDetail
	EnvironmentList   *screen.EnvironmentList
	EnvironmentDetail *screen.EnvironmentDetail

	// DetailViewport scrolls the animal detail; DetailDirty asks the
	// controller to re-render its content.
	DetailViewport viewport.Model
	DetailDirty    bool

	// Activity log
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	LogChannel           <-chan logging.LogEntry

	// UI components
	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// SetStatusMessage shows message in the status bar and returns the command
// that clears it after clearAfter. A newer message cancels the pending clear.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
