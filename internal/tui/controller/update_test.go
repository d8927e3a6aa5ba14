package controller

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"animalsctl/internal/api"
	"animalsctl/internal/api/apitest"
	"animalsctl/internal/screen"
	"animalsctl/internal/tui/model"
	"animalsctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, fake *apitest.Fake, startTab string) *model.Model {
	t.Helper()
	m, err := model.InitializeModel(model.TUIConfig{API: fake, StartTab: startTab}, nil)
	require.NoError(t, err)
	t.Cleanup(m.Cancel)
	m, _ = Update(tea.WindowSizeMsg{Width: 100, Height: 30}, m)
	return settle(t, m, m.Init())
}

// runCmd executes cmd, unpacking batches. Commands that do not return
// promptly, such as the status bar timer, are skipped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// settle feeds every screen result produced by cmd back into Update.
func settle(t *testing.T, m *model.Model, cmd tea.Cmd) *model.Model {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if res, ok := msg.(model.ScreenResultMsg); ok {
			var next tea.Cmd
			m, next = Update(res, m)
			m = settle(t, m, next)
		}
	}
	return m
}

func send(t *testing.T, m *model.Model, msg tea.Msg) *model.Model {
	t.Helper()
	m, cmd := Update(msg, m)
	return settle(t, m, cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeys_BrowseAnimalAndBack(t *testing.T) {
	fake := apitest.NewFake()
	m := newTestModel(t, fake, "animals")
	require.Equal(t, screen.PhaseLoaded, m.AnimalList.Phase())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screen.AnimalDetailScreen, m.CurrentRoute().Screen)
	assert.Equal(t, "a2", m.AnimalDetail.ID())
	assert.True(t, m.AnimalDetail.State().Loaded())
	assert.Contains(t, m.DetailViewport.View(), "Emperor Penguin")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screen.AnimalListScreen, m.CurrentRoute().Screen)
	assert.Equal(t, 1, m.Cursor)
	assert.Equal(t, 2, fake.Calls(apitest.OpListAnimals))
}

func TestKeys_EnvironmentTabToAnimal(t *testing.T) {
	fake := apitest.NewFake()
	m := newTestModel(t, fake, "animals")

	m = send(t, m, runes("2"))
	require.Equal(t, model.TabEnvironments, m.ActiveTab)
	require.Equal(t, screen.PhaseLoaded, m.EnvironmentList.Phase())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screen.EnvironmentDetailScreen, m.CurrentRoute().Screen)
	require.True(t, m.EnvironmentDetail.State().Loaded())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screen.AnimalDetailScreen, m.CurrentRoute().Screen)
	assert.Equal(t, "a1", m.AnimalDetail.ID())
	assert.Len(t, m.Stack, 3)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.TabAnimals, m.ActiveTab)
	assert.Len(t, m.Stack, 1)
}

func TestKeys_FailureThenRetry(t *testing.T) {
	fake := apitest.NewFake()
	fake.SetErr(&api.TransportError{Op: "list animals", URL: "fake://animals", StatusCode: http.StatusBadGateway})
	m := newTestModel(t, fake, "animals")

	s := m.AnimalList.State()
	require.Equal(t, screen.PhaseFailed, s.Phase)
	assert.Equal(t, api.KindTransport, s.Kind)
	assert.True(t, strings.HasPrefix(s.Message, "Error loading animals: "))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.NotEmpty(t, m.StatusBarMessage)

	fake.SetErr(nil)
	m = send(t, m, runes("r"))
	assert.Equal(t, screen.PhaseLoaded, m.AnimalList.Phase())
	assert.Equal(t, 2, fake.Calls(apitest.OpListAnimals))
}

func TestKeys_Overlays(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")

	m = send(t, m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModeBrowse, m.CurrentAppMode)

	m = send(t, m, runes("l"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode, "enter is ignored in the log overlay")
	assert.Len(t, m.Stack, 1)
	m = send(t, m, runes("l"))
	assert.Equal(t, model.ModeBrowse, m.CurrentAppMode)
}

func TestKeys_QuitCancelsFetches(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")

	m, cmd := Update(runes("q"), m)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.Error(t, m.Ctx.Err())

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
}

func TestKeys_CopyToClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t, apitest.NewFake(), "animals")

	m = send(t, m, runes("y"))
	assert.Equal(t, "a1", copied)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)

	m = send(t, m, runes("Y"))
	assert.Equal(t, "https://img.example/lion.jpg", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m = send(t, m, runes("y"))
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Equal(t, "Copy to clipboard failed", m.StatusBarMessage)
}

func TestKeys_CopyWithNothingSelected(t *testing.T) {
	fake := apitest.NewFake()
	fake.Animals = nil
	m := newTestModel(t, fake, "animals")
	require.True(t, m.AnimalList.State().Empty())

	m = send(t, m, runes("y"))
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
	assert.Equal(t, "Nothing selected", m.StatusBarMessage)
}

func TestUpdate_NewLogEntry(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000000, time.UTC)

	m = send(t, m, model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: ts, Level: logging.LevelError, Subsystem: "Screen", Message: "boom", Err: errors.New("cause"),
	}})
	m = send(t, m, model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: ts, Level: logging.LevelDebug, Subsystem: "Screen", Message: "hidden",
	}})

	require.Len(t, m.ActivityLog, 1)
	assert.Equal(t, "03:04:05.006 [ERROR] [Screen] boom -- Error: cause", m.ActivityLog[0])
	assert.False(t, m.ActivityLogDirty)
	assert.Contains(t, m.LogViewport.View(), "boom")

	m.DebugMode = true
	m = send(t, m, model.NewLogEntryMsg{Entry: logging.LogEntry{
		Timestamp: ts, Level: logging.LevelDebug, Subsystem: "Screen", Message: "shown",
	}})
	assert.Len(t, m.ActivityLog, 2)
}

func TestUpdate_ClearStatusBar(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")
	m.SetStatusMessage("hello", model.StatusBarInfo, time.Hour)

	m = send(t, m, model.ClearStatusBarMsg{})
	assert.Empty(t, m.StatusBarMessage)
	assert.Nil(t, m.StatusBarClearCancel)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 118, m.DetailViewport.Width)
	assert.Equal(t, 35, m.DetailViewport.Height)
	assert.Greater(t, m.LogViewport.Width, 0)
	assert.Greater(t, m.LogViewport.Height, 0)
}

func TestNewProgram(t *testing.T) {
	p, err := NewProgram(model.TUIConfig{API: apitest.NewFake()}, nil)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewProgram(model.TUIConfig{}, nil)
	assert.Error(t, err)
}

func TestAppModel_View(t *testing.T) {
	m := newTestModel(t, apitest.NewFake(), "animals")
	app := NewAppModel(m)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 90, Height: 25})
	out := updated.View()
	assert.Contains(t, out, "Lion")
	assert.Contains(t, out, "Clownfish")
}
