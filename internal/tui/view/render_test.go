package view

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"animalsctl/internal/api"
	"animalsctl/internal/api/apitest"
	"animalsctl/internal/screen"
	"animalsctl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewModel(t *testing.T, fake *apitest.Fake) *model.Model {
	t.Helper()
	m, err := model.InitializeModel(model.TUIConfig{API: fake}, nil)
	require.NoError(t, err)
	t.Cleanup(m.Cancel)
	m.Width, m.Height = 100, 30
	return m
}

func showRoute(m *model.Model, r model.Route) {
	m.Stack = []model.Route{r}
}

func TestRender_AnimalList(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())

	assert.Contains(t, Render(m), "Loading animals...")

	m.AnimalList.Load(context.Background())
	out := Render(m)
	assert.Contains(t, out, "Lion")
	assert.Contains(t, out, "Emperor Penguin")
	assert.Contains(t, out, "Large cat of the savanna.")
	assert.Contains(t, out, "1/3")
	assert.Contains(t, out, "animalsctl")
}

func TestRender_EmptyStates(t *testing.T) {
	fake := apitest.NewFake()
	fake.Animals = nil
	fake.Environments = nil
	m := newViewModel(t, fake)
	ctx := context.Background()

	require.True(t, m.AnimalList.Load(ctx).Empty())
	assert.Contains(t, Render(m), screen.EmptyAnimalsText)

	showRoute(m, model.Route{Screen: screen.EnvironmentListScreen, Title: "Environments"})
	require.True(t, m.EnvironmentList.Load(ctx).Empty())
	out := Render(m)
	assert.Contains(t, out, screen.EmptyEnvironmentsText)
	assert.NotContains(t, out, screen.EmptyAnimalsText)
}

func TestRender_EnvironmentDetail(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())
	ctx := context.Background()

	showRoute(m, model.Route{Screen: screen.EnvironmentDetailScreen, ID: "e1", Title: "Savanna"})
	m.EnvironmentDetail.SetID("e1")
	require.True(t, m.EnvironmentDetail.Load(ctx).Loaded())
	out := Render(m)
	assert.Contains(t, out, "Savanna")
	assert.Contains(t, out, "Animals (1)")
	assert.Contains(t, out, "Lion")
	assert.NotContains(t, out, screen.EmptyAnimalsText)

	m.EnvironmentDetail.SetID("e3")
	require.True(t, m.EnvironmentDetail.Load(ctx).Empty())
	out = Render(m)
	assert.Contains(t, out, "Desert")
	assert.Contains(t, out, "Animals (0)")
	assert.Contains(t, out, screen.EmptyAnimalsText)
}

func TestRender_Failed(t *testing.T) {
	fake := apitest.NewFake()
	fake.SetErr(&api.DecodeError{Op: "list environments", URL: "fake://environments", Err: fmt.Errorf("unexpected EOF")})
	m := newViewModel(t, fake)

	showRoute(m, model.Route{Screen: screen.EnvironmentListScreen, Title: "Environments"})
	require.Equal(t, screen.PhaseFailed, m.EnvironmentList.Load(context.Background()).Phase)

	out := Render(m)
	assert.Contains(t, out, "Error loading environments:")
	assert.Contains(t, out, "DecodeError · press r to retry")
	assert.NotContains(t, out, screen.EmptyEnvironmentsText)
}

func TestRender_InvalidReference(t *testing.T) {
	fake := apitest.NewFake()
	m := newViewModel(t, fake)
	ctx := context.Background()

	showRoute(m, model.Route{Screen: screen.AnimalDetailScreen, Title: "Animal"})
	require.Equal(t, screen.PhaseInvalidReference, m.AnimalDetail.Load(ctx).Phase)
	out := Render(m)
	assert.Contains(t, out, screen.InvalidAnimalIDMessage)
	assert.Contains(t, out, "press esc to go back")

	showRoute(m, model.Route{Screen: screen.EnvironmentDetailScreen, Title: "Environment"})
	require.Equal(t, screen.PhaseInvalidReference, m.EnvironmentDetail.Load(ctx).Phase)
	assert.Contains(t, Render(m), screen.InvalidEnvironmentIDMessage)

	assert.Equal(t, 0, fake.TotalCalls())
}

func TestRender_AnimalDetailViewport(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())

	showRoute(m, model.Route{Screen: screen.AnimalDetailScreen, ID: "a1", Title: "Lion"})
	m.AnimalDetail.SetID("a1")
	s := m.AnimalDetail.Load(context.Background())
	require.True(t, s.Loaded())

	m.DetailViewport.Width, m.DetailViewport.Height = 98, 25
	m.DetailViewport.SetContent(AnimalDetailContent(s.Data, 98))
	out := Render(m)
	assert.Contains(t, out, "Lions sleep up to 20 hours a day.")
	assert.Contains(t, out, "https://img.example/lion-1.jpg")
}

func TestAnimalDetailContent(t *testing.T) {
	full := AnimalDetailContent(api.Animal{
		Name:         "Lion",
		Image:        "https://img/lion.jpg",
		Description:  "King",
		ImageGallery: []string{"https://img/lion-1.jpg", "https://img/lion-2.jpg"},
		Facts:        []string{"Roars"},
	}, 60)
	assert.Contains(t, full, "https://img/lion.jpg")
	assert.Contains(t, full, "https://img/lion-2.jpg")
	assert.Contains(t, full, "Roars")
	assert.NotContains(t, full, screen.NoGalleryText)
	assert.NotContains(t, full, screen.NoFactsText)

	bare := AnimalDetailContent(api.Animal{Name: "Clownfish", ImageGallery: []string{}, Facts: []string{}}, 60)
	assert.Contains(t, bare, "Clownfish")
	assert.Contains(t, bare, screen.NoGalleryText)
	assert.Contains(t, bare, screen.NoFactsText)
}

func TestRenderList_KeepsCursorVisible(t *testing.T) {
	items := make([]model.Item, 10)
	for i := range items {
		items[i] = model.Item{ID: fmt.Sprintf("id%d", i), Title: fmt.Sprintf("Animal %02d", i)}
	}

	out := renderList(items, 9, 40, 4)
	assert.Contains(t, out, "Animal 09")
	assert.Contains(t, out, "Animal 08")
	assert.NotContains(t, out, "Animal 00")

	out = renderList(items, 0, 40, 4)
	assert.Contains(t, out, "Animal 00")
	assert.NotContains(t, out, "Animal 05")
}

func TestRenderList_TruncatesLongTitles(t *testing.T) {
	items := []model.Item{{ID: "x", Title: strings.Repeat("Giraffe", 20)}}
	out := renderList(items, 0, 30, 4)
	assert.Contains(t, out, "…")
}

func TestRender_Overlays(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())

	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "copy image URL")

	m.CurrentAppMode = model.ModeLogOverlay
	assert.Contains(t, Render(m), "Activity Log")

	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye!"
	assert.Contains(t, Render(m), "Bye!")
}

func TestRender_StatusMessage(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())
	m.AnimalList.Load(context.Background())
	m.StatusBarMessage = "Copied id of Lion"
	m.StatusBarMessageType = model.StatusBarSuccess
	assert.Contains(t, Render(m), "Copied id of Lion")
}

func TestBodySize_Defaults(t *testing.T) {
	m := newViewModel(t, apitest.NewFake())
	m.Width, m.Height = 0, 0
	w, h := BodySize(m)
	assert.Equal(t, defaultWidth-2*appPadding, w)
	assert.Equal(t, defaultHeight-chromeHeight, h)
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{
		"12:00:00.000 [INFO] [Screen] ok",
		"12:00:00.000 [ERROR] [Screen] bad",
		"12:00:00.000 [DEBUG] [Screen] noisy",
	}
	out := PrepareLogContent(lines, 80)
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
	assert.Equal(t, len(lines), strings.Count(out, "\n")+1)
}

func TestSafeIcon(t *testing.T) {
	assert.Equal(t, IconCheck+" ", SafeIcon(IconCheck))
	assert.Equal(t, IconPaw+"  ", SafeIcon(IconPaw))
}
