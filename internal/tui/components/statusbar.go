package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

// RenderStatusBar renders the bottom key-hint bar with right-aligned info.
func RenderStatusBar(width int, info string) string {
	t := theme.Active

	left := " [tab]next  [shift+tab]prev  [ctrl+p]preset  [?]help  [esc]quit"
	right := info
	if right != "" {
		right += " "
	}
	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)

	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width).
		Render(left + strings.Repeat(" ", padding) + right)
}
