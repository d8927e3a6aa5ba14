package view

import (
	"fmt"
	"strings"

	"animalsctl/internal/api"
	"animalsctl/internal/screen"
	"animalsctl/internal/tui/design"
	"animalsctl/internal/tui/model"
	"animalsctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

func renderScreen(m *model.Model, width, height int) string {
	switch m.CurrentRoute().Screen {
	case screen.AnimalDetailScreen:
		return renderAnimalDetail(m)
	case screen.EnvironmentListScreen:
		return renderEnvironmentList(m, width, height)
	case screen.EnvironmentDetailScreen:
		return renderEnvironmentDetail(m, width, height)
	default:
		return renderAnimalList(m, width, height)
	}
}

func renderAnimalList(m *model.Model, width, height int) string {
	s := m.AnimalList.State()
	if out, settled := renderUnsettled(m, s.Phase, s.Message, s.Kind, "Loading animals..."); settled {
		return out
	}
	if s.Empty() {
		return design.DimStyle.Render(screen.EmptyAnimalsText)
	}
	return renderList(m.Items(), m.Cursor, width, height)
}

func renderEnvironmentList(m *model.Model, width, height int) string {
	s := m.EnvironmentList.State()
	if out, settled := renderUnsettled(m, s.Phase, s.Message, s.Kind, "Loading environments..."); settled {
		return out
	}
	if s.Empty() {
		return design.DimStyle.Render(screen.EmptyEnvironmentsText)
	}
	return renderList(m.Items(), m.Cursor, width, height)
}

func renderEnvironmentDetail(m *model.Model, width, height int) string {
	s := m.EnvironmentDetail.State()
	if out, settled := renderUnsettled(m, s.Phase, s.Message, s.Kind, "Loading environment..."); settled {
		return out
	}

	env := s.Data.Environment
	lines := []string{design.DetailTitleStyle.Render(SafeIcon(IconLeaf) + env.Name)}
	if env.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(env.Description))
	}
	if env.Image != "" {
		lines = append(lines, design.LinkStyle.Render(utils.TruncateString(env.Image, width)))
	}
	lines = append(lines, design.SectionTitleStyle.Render(fmt.Sprintf("Animals (%d)", len(s.Data.Animals))))
	header := strings.Join(lines, "\n")

	if s.Empty() {
		return header + "\n" + design.DimStyle.Render(screen.EmptyAnimalsText)
	}
	listHeight := height - lipgloss.Height(header)
	return header + "\n" + renderList(m.Items(), m.Cursor, width, listHeight)
}

func renderAnimalDetail(m *model.Model) string {
	s := m.AnimalDetail.State()
	if out, settled := renderUnsettled(m, s.Phase, s.Message, s.Kind, "Loading animal..."); settled {
		return out
	}
	return m.DetailViewport.View()
}

// renderUnsettled renders every phase but Loaded. The boolean is false for
// Loaded, leaving the caller to render the data.
func renderUnsettled(m *model.Model, phase screen.Phase, message string, kind api.ErrorKind, loadingText string) (string, bool) {
	switch phase {
	case screen.PhaseLoading:
		return m.Spinner.View() + " " + design.TextSecondaryStyle.Render(loadingText), true
	case screen.PhaseFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			design.TextErrorStyle.Render(SafeIcon(IconCross)+message),
			design.DimStyle.Render(fmt.Sprintf("%s · press r to retry", kind)),
		), true
	case screen.PhaseInvalidReference:
		return lipgloss.JoinVertical(lipgloss.Left,
			design.InvalidReferenceStyle.Render(SafeIcon(IconWarning)+message),
			design.DimStyle.Render("press esc to go back"),
		), true
	}
	return "", false
}

// renderList shows two lines per item and scrolls so the cursor stays
// visible.
func renderList(items []model.Item, cursor, width, height int) string {
	const rowHeight = 2
	visible := height / rowHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	textWidth := width - lipgloss.Width(SafeIcon(IconPointer)) - design.ListItemStyle.GetHorizontalFrameSize()
	rows := make([]string, 0, (end-start)*rowHeight)
	for i := start; i < end; i++ {
		item := items[i]
		title := utils.TruncateString(item.Title, textWidth)
		desc := utils.TruncateString(utils.SingleLine(item.Description), textWidth)
		if i == cursor {
			rows = append(rows, design.ListItemSelectedStyle.Render(SafeIcon(IconPointer)+title))
		} else {
			rows = append(rows, design.ListItemStyle.Render("  "+title))
		}
		rows = append(rows, design.ListItemStyle.Render("  "+design.ListItemDescriptionStyle.Render(desc)))
	}
	return strings.Join(rows, "\n")
}

// AnimalDetailContent is the scrollable body of the animal detail screen.
func AnimalDetailContent(a api.Animal, width int) string {
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(design.DetailTitleStyle.Render(SafeIcon(IconPaw) + a.Name))
	b.WriteString("\n")
	if a.Image != "" {
		b.WriteString(design.LinkStyle.Render(SafeIcon(IconImage) + a.Image))
		b.WriteString("\n")
	}
	if a.Description != "" {
		b.WriteString("\n")
		b.WriteString(wrap.Render(a.Description))
		b.WriteString("\n")
	}

	b.WriteString(design.SectionTitleStyle.Render("Gallery"))
	b.WriteString("\n")
	if len(a.ImageGallery) == 0 {
		b.WriteString(design.DimStyle.Render(screen.NoGalleryText))
		b.WriteString("\n")
	}
	for _, url := range a.ImageGallery {
		b.WriteString(SafeIcon(IconBullet) + design.LinkStyle.Render(url))
		b.WriteString("\n")
	}

	b.WriteString(design.SectionTitleStyle.Render("Facts"))
	b.WriteString("\n")
	if len(a.Facts) == 0 {
		b.WriteString(design.DimStyle.Render(screen.NoFactsText))
		b.WriteString("\n")
	}
	for _, fact := range a.Facts {
		b.WriteString(wrap.Render(SafeIcon(IconBullet) + fact))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
