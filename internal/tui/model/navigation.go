package model

import (
	"animalsctl/internal/api"
	"animalsctl/internal/screen"
	"animalsctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const navigationSubsystem = "Navigation"

// CurrentRoute returns the route on top of the back stack.
func (m *Model) CurrentRoute() Route {
	if len(m.Stack) == 0 {
		return Route{Screen: m.ActiveTab.Root(), Title: m.ActiveTab.String()}
	}
	return m.Stack[len(m.Stack)-1]
}

// CanGoBack reports whether there is a route below the current one.
func (m *Model) CanGoBack() bool {
	return len(m.Stack) > 1
}

// Controller returns the controller that drives the given screen.
func (m *Model) Controller(id screen.ID) screen.Controller {
	switch id {
	case screen.AnimalDetailScreen:
		return m.AnimalDetail
	case screen.EnvironmentListScreen:
		return m.EnvironmentList
	case screen.EnvironmentDetailScreen:
		return m.EnvironmentDetail
	default:
		return m.AnimalList
	}
}

// activate hands the route's id to its controller and starts a fetch.
// Every activation fetches; nothing is memoized between visits.
func (m *Model) activate(r Route) tea.Cmd {
	logging.Debug(navigationSubsystem, "activating %s %q", r.Screen, r.ID)
	switch r.Screen {
	case screen.AnimalDetailScreen:
		m.AnimalDetail.SetID(r.ID)
		m.DetailViewport.GotoTop()
		m.DetailDirty = true
	case screen.EnvironmentDetailScreen:
		m.EnvironmentDetail.SetID(r.ID)
	}
	return FetchCmd(m.Controller(r.Screen).Activate(m.Ctx))
}

// Navigate leaves the current screen and pushes r on top of it.
func (m *Model) Navigate(r Route) tea.Cmd {
	if len(m.Stack) > 0 {
		top := &m.Stack[len(m.Stack)-1]
		top.Cursor = m.Cursor
		m.Controller(top.Screen).Leave()
	}
	if r.Title == "" {
		r.Title = defaultTitle(r.Screen)
	}
	m.Stack = append(m.Stack, r)
	m.Cursor = 0
	return m.activate(r)
}

// Back pops the current route and re-activates the one below it. It is a
// no-op on a tab root.
func (m *Model) Back() tea.Cmd {
	if !m.CanGoBack() {
		return nil
	}
	m.Controller(m.CurrentRoute().Screen).Leave()
	m.Stack = m.Stack[:len(m.Stack)-1]
	top := m.CurrentRoute()
	m.Cursor = top.Cursor
	return m.activate(top)
}

// SwitchTab resets the stack to the root of t and activates it, also when t
// is already the active tab.
func (m *Model) SwitchTab(t Tab) tea.Cmd {
	m.Controller(m.CurrentRoute().Screen).Leave()
	m.ActiveTab = t
	root := Route{Screen: t.Root(), Title: t.String()}
	m.Stack = []Route{root}
	m.Cursor = 0
	return m.activate(root)
}

// NextTab switches to the other tab.
func (m *Model) NextTab() tea.Cmd {
	if m.ActiveTab == TabAnimals {
		return m.SwitchTab(TabEnvironments)
	}
	return m.SwitchTab(TabAnimals)
}

// Reload re-activates the current route.
func (m *Model) Reload() tea.Cmd {
	return m.activate(m.CurrentRoute())
}

// DrainPendingRoutes navigates to every route queued by a selection callback.
func (m *Model) DrainPendingRoutes() tea.Cmd {
	if len(m.PendingRoutes) == 0 {
		return nil
	}
	pending := m.PendingRoutes
	m.PendingRoutes = nil

	var cmds []tea.Cmd
	for _, r := range pending {
		if r.Title == "" {
			r.Title = m.titleFor(r.ID)
		}
		cmds = append(cmds, m.Navigate(r))
	}
	return tea.Batch(cmds...)
}

// ApplyResult hands a fetch result to its controller. It returns false for
// a stale result.
func (m *Model) ApplyResult(r screen.Result) bool {
	if !m.Controller(r.Screen).Apply(r) {
		return false
	}
	if r.Screen != m.CurrentRoute().Screen {
		return true
	}
	m.ClampCursor()
	if r.Screen == screen.AnimalDetailScreen {
		m.DetailDirty = true
	}
	return true
}

// Items returns the selectable rows of the current screen. It is empty
// until the screen has loaded.
func (m *Model) Items() []Item {
	switch m.CurrentRoute().Screen {
	case screen.AnimalListScreen:
		if s := m.AnimalList.State(); s.Loaded() {
			return animalItems(s.Data)
		}
	case screen.EnvironmentListScreen:
		if s := m.EnvironmentList.State(); s.Loaded() {
			items := make([]Item, 0, len(s.Data))
			for _, e := range s.Data {
				items = append(items, Item{ID: e.ID, Title: e.Name, Description: e.Description, Image: e.Image})
			}
			return items
		}
	case screen.EnvironmentDetailScreen:
		if s := m.EnvironmentDetail.State(); s.Loaded() {
			return animalItems(s.Data.Animals)
		}
	}
	return nil
}

// SelectedItem returns the highlighted row, or the animal itself on the
// animal detail screen.
func (m *Model) SelectedItem() (Item, bool) {
	if m.CurrentRoute().Screen == screen.AnimalDetailScreen {
		s := m.AnimalDetail.State()
		if !s.Loaded() {
			return Item{}, false
		}
		return animalItem(s.Data), true
	}
	items := m.Items()
	if m.Cursor < 0 || m.Cursor >= len(items) {
		return Item{}, false
	}
	return items[m.Cursor], true
}

// SelectCurrent forwards the highlighted row to the current screen's
// selection callback. It reports whether anything was selected.
func (m *Model) SelectCurrent() bool {
	item, ok := m.SelectedItem()
	if !ok {
		return false
	}
	switch m.CurrentRoute().Screen {
	case screen.AnimalListScreen:
		m.AnimalList.Select(item.ID)
	case screen.EnvironmentListScreen:
		m.EnvironmentList.Select(item.ID)
	case screen.EnvironmentDetailScreen:
		m.EnvironmentDetail.Select(item.ID)
	default:
		return false
	}
	return true
}

// MoveCursor moves the list cursor by delta, staying within the rows.
func (m *Model) MoveCursor(delta int) {
	m.Cursor += delta
	m.ClampCursor()
}

// ClampCursor keeps the cursor on an existing row.
func (m *Model) ClampCursor() {
	n := len(m.Items())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m *Model) titleFor(id string) string {
	for _, item := range m.Items() {
		if item.ID == id {
			return item.Title
		}
	}
	return ""
}

func defaultTitle(id screen.ID) string {
	switch id {
	case screen.AnimalDetailScreen:
		return "Animal"
	case screen.EnvironmentDetailScreen:
		return "Environment"
	case screen.EnvironmentListScreen:
		return TabEnvironments.String()
	default:
		return TabAnimals.String()
	}
}

func animalItems(animals []api.Animal) []Item {
	items := make([]Item, 0, len(animals))
	for _, a := range animals {
		items = append(items, animalItem(a))
	}
	return items
}

func animalItem(a api.Animal) Item {
	return Item{ID: a.ID, Title: a.Name, Description: a.Description, Image: a.Image}
}
