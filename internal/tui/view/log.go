package view

import (
	"strings"

	"animalsctl/internal/tui/design"
	"animalsctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.
		Width(width - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(height - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)
}

// LogOverlaySize returns the outer size of the log overlay and the size of
// the viewport inside it.
func LogOverlaySize(width, height int) (overlayW, overlayH, viewportW, viewportH int) {
	overlayW = int(float64(width) * 0.8)
	overlayH = int(float64(height) * 0.7)
	viewportW = overlayW - design.LogOverlayStyle.GetHorizontalFrameSize()
	// title line plus its bottom margin
	viewportH = overlayH - design.LogOverlayStyle.GetVerticalFrameSize() - 2
	if viewportW < 0 {
		viewportW = 0
	}
	if viewportH < 0 {
		viewportH = 0
	}
	return overlayW, overlayH, viewportW, viewportH
}

// PrepareLogContent colors each line by the level marker it carries. The
// viewport handles overflow, so lines are not truncated here.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
