// Package components provides reusable TUI widgets for the evm dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

// Card is the content of one metric card.
type Card struct {
	Label string
	Value string
	Note  string
	// Color overrides the value color; empty uses the primary text color.
	Color lipgloss.Color
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base, remainder := totalWidth/n, totalWidth%n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card with label, value and note.
// outerWidth is the total rendered width including border.
func MetricCard(c Card, outerWidth int) string {
	t := theme.Active

	valueColor := c.Color
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(c.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(c.Value)
	if c.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(c.Note)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders cards side by side, summing to totalWidth.
func MetricCardRow(cards []Card, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = MetricCard(c, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
