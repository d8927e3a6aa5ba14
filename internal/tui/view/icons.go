package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconCheck     = "✔" // U+2714
	IconCross     = "❌" // U+274C
	IconWarning   = "⚠" // U+26A0 without VS16
	IconHourglass = "⏳" // U+23F3
	IconSparkles  = "✨" // U+2728
	IconLightbulb = "💡" // U+1F4A1
	IconInfo      = "ℹ" // U+2139 without VS16
	IconScroll    = "📜" // U+1F4DC
	IconPaw       = "🐾" // U+1F43E
	IconLeaf      = "🌿" // U+1F33F
	IconImage     = "🖼" // U+1F5BC without VS16
	IconPointer   = "▸" // U+25B8
	IconBullet    = "•" // U+2022
)

// SafeIcon appends enough spaces after icon that the following character is
// not swallowed: one for narrow icons, two for wide ones.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}
