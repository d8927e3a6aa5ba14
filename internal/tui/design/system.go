package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4
)

// Color Palette - semantic colors with light/dark variants
var (
	// Brand
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#2F7D32",
		Dark:  "#66BB6A",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#B26A00",
		Dark:  "#FFB74D",
	}

	// State
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutrals
	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#D1D5DB",
		Dark:  "#404040",
	}
	ColorOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}

	// Text
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// Text styles
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextMuted)

	// InvalidReferenceStyle sets a missing id apart from a failed request.
	InvalidReferenceStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorError).
				PaddingLeft(SpaceXS)
)

// Header and navigation
var (
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			PaddingRight(SpaceSM)

	TabStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceXS)

	TabActiveStyle = TabStyle.
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(true)

	BreadcrumbStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			MarginBottom(SpaceXS)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				MarginTop(SpaceXS)

	DetailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Underline(true)
)

// Lists
var (
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceSM)

	ListItemSelectedStyle = ListItemStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ListItemDescriptionStyle = lipgloss.NewStyle().
					Foreground(ColorTextMuted)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)
)

// Overlays
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = CenteredOverlayContainerStyle

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Initialize applies the configured color mode. "dark" and "light" force
// the background; anything else keeps lipgloss' terminal detection.
func Initialize(colorMode string) {
	switch colorMode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}
