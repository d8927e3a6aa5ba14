package view

import (
	"fmt"
	"strings"

	"animalsctl/internal/tui/design"
	"animalsctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// header, breadcrumb with its margin, help line, status bar
	chromeHeight = 5
	appPadding   = 1
)

var appStyle = lipgloss.NewStyle().Padding(0, appPadding)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	width, height := termSize(m)

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)

	case model.ModeHelpOverlay:
		overlay := renderHelpOverlay(m)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)

	case model.ModeLogOverlay:
		overlayW, overlayH, _, _ := LogOverlaySize(width, height)
		overlay := renderLogOverlay(m, overlayW, overlayH)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)

	default:
		return renderBrowse(m, width)
	}
}

// BodySize returns the cells available to the current screen below the
// header and above the help line.
func BodySize(m *model.Model) (int, int) {
	width, height := termSize(m)
	bodyW := width - 2*appPadding
	bodyH := height - chromeHeight
	if bodyW < 10 {
		bodyW = 10
	}
	if bodyH < 3 {
		bodyH = 3
	}
	return bodyW, bodyH
}

func termSize(m *model.Model) (int, int) {
	width, height := m.Width, m.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func renderBrowse(m *model.Model, width int) string {
	bodyW, bodyH := BodySize(m)

	body := renderScreen(m, bodyW, bodyH)
	body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body)

	view := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m, bodyW),
		renderBreadcrumb(m, bodyW),
		body,
		m.Help.ShortHelpView(m.Keys.ShortHelp()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		appStyle.Render(view),
		renderStatusBar(m, width),
	)
}

func renderHeader(m *model.Model, width int) string {
	title := design.AppTitleStyle.Render(SafeIcon(IconPaw) + "animalsctl")

	tabs := []model.Tab{model.TabAnimals, model.TabEnvironments}
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%d %s", i+1, tab)
		if tab == m.ActiveTab {
			rendered = append(rendered, design.TabActiveStyle.Render(label))
		} else {
			rendered = append(rendered, design.TabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Join(rendered, " "))
	return lipgloss.NewStyle().MaxWidth(width).Render(header)
}

func renderBreadcrumb(m *model.Model, width int) string {
	parts := make([]string, 0, len(m.Stack))
	for _, r := range m.Stack {
		parts = append(parts, r.Title)
	}
	if len(parts) == 0 {
		parts = append(parts, m.CurrentRoute().Title)
	}
	return design.BreadcrumbStyle.MaxWidth(width).Render(strings.Join(parts, " › "))
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	h := m.Help
	h.ShowAll = true
	content := lipgloss.JoinVertical(lipgloss.Center, title, h.FullHelpView(m.Keys.FullHelp()))
	return design.CenteredOverlayContainerStyle.Render(content)
}
