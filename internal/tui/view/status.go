package view

import (
	"fmt"

	"animalsctl/internal/screen"
	"animalsctl/internal/tui/design"
	"animalsctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *model.Model, width int) string {
	phase := m.Controller(m.CurrentRoute().Screen).Phase()

	var base lipgloss.Style
	var left string
	switch phase {
	case screen.PhaseLoading:
		base = design.StatusBarInfoStyle
		left = m.Spinner.View() + " " + phase.String()
	case screen.PhaseFailed:
		base = design.StatusBarErrorStyle
		left = SafeIcon(IconCross) + phase.String()
	case screen.PhaseInvalidReference:
		base = design.StatusBarWarningStyle
		left = SafeIcon(IconWarning) + "Invalid reference"
	default:
		base = design.StatusBarStyle
		left = SafeIcon(IconCheck) + phase.String()
	}

	leftW := int(float64(width) * 0.25)
	rightW := int(float64(width) * 0.20)
	centerW := width - leftW - rightW
	if centerW < 0 {
		centerW = 0
	}

	leftStr := base.Width(leftW).MaxHeight(1).Render(left)

	right := ""
	if items := m.Items(); len(items) > 0 {
		right = fmt.Sprintf("%d/%d", m.Cursor+1, len(items))
	}
	rightStr := base.Width(rightW).MaxHeight(1).Align(lipgloss.Right).Render(right)

	center := ""
	if m.StatusBarMessage != "" {
		var icon string
		switch m.StatusBarMessageType {
		case model.StatusBarSuccess:
			base = design.StatusBarSuccessStyle
			icon = SafeIcon(IconSparkles)
		case model.StatusBarError:
			base = design.StatusBarErrorStyle
			icon = SafeIcon(IconCross)
		case model.StatusBarWarning:
			base = design.StatusBarWarningStyle
			icon = SafeIcon(IconLightbulb)
		default:
			base = design.StatusBarInfoStyle
			icon = SafeIcon(IconInfo)
		}
		center = icon + m.StatusBarMessage
	}
	centerStr := base.Width(centerW).MaxHeight(1).Align(lipgloss.Center).Render(center)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftStr, centerStr, rightStr)
}
