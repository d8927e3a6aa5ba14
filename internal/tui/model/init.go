package model

import (
	"context"
	"fmt"

	"animalsctl/internal/screen"
	"animalsctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// InitializeModel builds the model and its four screen controllers. Nothing
// is fetched until Init runs.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.API == nil {
		return nil, fmt.Errorf("TUI requires an Animals API client")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		CurrentAppMode: ModeBrowse,
		DebugMode:      cfg.DebugMode,
		ColorMode:      cfg.ColorMode,

		API:    cfg.API,
		Ctx:    ctx,
		Cancel: cancel,

		ActiveTab: ParseTab(cfg.StartTab),

		DetailViewport: viewport.New(80, 20),
		LogViewport:    viewport.New(80, 20),
		LogChannel:     logChannel,
		ActivityLog:    []string{},

		Spinner: spinner.New(),
		Keys:    DefaultKeyMap(),
		Help:    help.New(),
	}
	m.Spinner.Spinner = spinner.Dot

	// Selection callbacks only queue a route; the controller drains the
	// queue after the key that triggered them has been handled.
	m.AnimalList = screen.NewAnimalList(cfg.API, func(id string) {
		m.PendingRoutes = append(m.PendingRoutes, Route{Screen: screen.AnimalDetailScreen, ID: id})
	})
	m.EnvironmentList = screen.NewEnvironmentList(cfg.API, func(id string) {
		m.PendingRoutes = append(m.PendingRoutes, Route{Screen: screen.EnvironmentDetailScreen, ID: id})
	})
	m.EnvironmentDetail = screen.NewEnvironmentDetail(cfg.API, "", func(id string) {
		m.PendingRoutes = append(m.PendingRoutes, Route{Screen: screen.AnimalDetailScreen, ID: id})
	})
	m.AnimalDetail = screen.NewAnimalDetail(cfg.API, "")

	m.Stack = []Route{{Screen: m.ActiveTab.Root(), Title: m.ActiveTab.String()}}
	return m, nil
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),
		Animals: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "animals"),
		),
		Environments: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "environments"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		CopyID: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy id"),
		),
		CopyImage: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy image URL"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Init activates the start tab and starts the log listener and spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.activate(m.CurrentRoute()),
		ListenForLogEntriesCmd(m.LogChannel),
		m.Spinner.Tick,
	)
}
