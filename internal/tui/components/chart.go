package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// SeriesChart renders the PV/EV/AC series as grouped vertical bars, one
// group of three columns per point, with a y-axis scaled to a tick ceiling.
// Negative values render as empty columns.
func SeriesChart(points []evm.ChartDataPoint, height int) string {
	if len(points) == 0 {
		return ""
	}
	t := theme.Active
	height = max(height, 3)

	peak := 0.0
	for _, p := range points {
		peak = max(peak, float64(p.PV), float64(p.EV), float64(p.AC))
	}
	if peak <= 0 {
		peak = 1
	}
	ceiling := math.Ceil(peak/chartTickStep(peak)) * chartTickStep(peak)

	yLabelW := max(len(formatChartLabel(ceiling))+1, 4)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	seriesStyles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(t.PV),
		lipgloss.NewStyle().Foreground(t.EV),
		lipgloss.NewStyle().Foreground(t.AC),
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		switch row {
		case height:
			label = formatChartLabel(ceiling)
		case (height + 1) / 2:
			label = formatChartLabel(bottom)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for i, p := range points {
			if i > 0 {
				b.WriteByte(' ')
			}
			for s, v := range []int{p.PV, p.EV, p.AC} {
				b.WriteString(seriesStyles[s].Render(string(barCell(float64(v), top, bottom))))
			}
		}
		b.WriteString("\n")
	}

	groupW := 4 // three columns plus gap
	axisLen := len(points)*groupW - 1
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))
	b.WriteString("\n")

	labels := []byte(strings.Repeat(" ", axisLen+8))
	for _, i := range []int{0, len(points) / 2, len(points) - 1} {
		copy(labels[i*groupW:], fmt.Sprintf("d%d", points[i].Day))
	}
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(labels), " ")))

	return b.String()
}

func barCell(v, top, bottom float64) rune {
	switch {
	case v >= top:
		return blocks[len(blocks)-1]
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		return blocks[min(max(idx, 1), 8)]
	default:
		return blocks[0]
	}
}

// SeriesLegend renders the colored PV/EV/AC legend.
func SeriesLegend() string {
	t := theme.Active
	dot := func(c lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(c).Render("█") + " " +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	}
	return dot(t.PV, "Planned") + "   " + dot(t.EV, "Earned") + "   " + dot(t.AC, "Actual")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	scaled := func(div float64, suffix string) string {
		if v == math.Trunc(v/div)*div {
			return fmt.Sprintf("%.0f%s", v/div, suffix)
		}
		return fmt.Sprintf("%.1f%s", v/div, suffix)
	}
	switch {
	case v >= 1e9:
		return scaled(1e9, "B")
	case v >= 1e6:
		return scaled(1e6, "M")
	case v >= 1e3:
		return scaled(1e3, "k")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
