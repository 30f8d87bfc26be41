package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

// ColorForConsumption returns green/yellow/red as spend approaches the budget.
func ColorForConsumption(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Red
	case pct >= 0.8:
		return t.Yellow
	default:
		return t.Green
	}
}

// BudgetBar renders a labeled bar for a 0-1 ratio. The label shows the
// unclamped ratio so overspend past 100% stays visible.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	color := ColorForConsumption(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	fill := min(max(pct, 0), 1)
	if math.IsNaN(pct) {
		fill = 0
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(fill) + " " +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", pct*100))
}
