package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorPurple    = lipgloss.Color("#8B7EC8")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Series colors, shared with the TUI legend.
var (
	ColorPV = ColorBlue
	ColorEV = ColorGreen
	ColorAC = ColorOrange
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// StatusColor maps an index status onto the palette.
func StatusColor(s evm.IndexStatus) lipgloss.Color {
	switch s {
	case evm.StatusAhead:
		return ColorGreen
	case evm.StatusOnTrack:
		return ColorAccent
	case evm.StatusAtRisk:
		return ColorYellow
	default:
		return ColorRed
	}
}

// RenderStatus renders a status label in its color.
func RenderStatus(s evm.IndexStatus) string {
	return lipgloss.NewStyle().Bold(true).Foreground(StatusColor(s)).Render(FormatStatus(s))
}

// RenderWarn renders text in the warning color.
func RenderWarn(s string) string {
	return lipgloss.NewStyle().Foreground(ColorOrange).Render(s)
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return mutedStyle.Render(s)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	// Highlight colors whole rows by index; rows without an entry use the value style.
	Highlight map[int]lipgloss.Color
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	widths := t.columnWidths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(row(widths, t.Headers, headerStyle, true))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}

	for i, r := range t.Rows {
		if len(r) == 1 && r[0] == "---" {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		style := valueStyle
		if c, ok := t.Highlight[i]; ok {
			style = lipgloss.NewStyle().Foreground(c)
		}
		b.WriteString(row(widths, r, style, false))
	}

	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

func (t Table) columnWidths() []int {
	n := len(t.Headers)
	if n == 0 && len(t.Rows) > 0 {
		n = len(t.Rows[0])
	}

	widths := make([]int, n)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, r := range t.Rows {
		for i, cell := range r {
			if i < n {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

func rule(widths []int, left, mid, right string) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return dimStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

// row left-aligns the first column and right-aligns the rest, unless header is set.
func row(widths []int, cells []string, style lipgloss.Style, header bool) string {
	sep := dimStyle.Render("│")

	var b strings.Builder
	b.WriteString(sep)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
		if i == 0 || header {
			b.WriteString(style.Render(" " + cell + pad + " "))
		} else {
			b.WriteString(style.Render(" " + pad + cell + " "))
		}
		b.WriteString(sep)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderSparkline generates a unicode block sparkline from a series of values.
// Negative values clamp to the lowest block.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderHorizontalBar renders a bar scaled against maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	barLen := min(int(value/maxValue*float64(maxWidth)), maxWidth)
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
}

// RenderSeriesSparklines renders one labeled sparkline per series with its final value.
func RenderSeriesSparklines(points []evm.ChartDataPoint) string {
	if len(points) == 0 {
		return ""
	}

	pv := make([]float64, len(points))
	ev := make([]float64, len(points))
	ac := make([]float64, len(points))
	for i, p := range points {
		pv[i], ev[i], ac[i] = float64(p.PV), float64(p.EV), float64(p.AC)
	}
	last := points[len(points)-1]

	line := func(label string, values []float64, final int, c lipgloss.Color) string {
		spark := lipgloss.NewStyle().Foreground(c).Render(RenderSparkline(values))
		return fmt.Sprintf("  %s  %s  %s\n", mutedStyle.Render(label), spark, valueStyle.Render(FormatWholeCurrency(final)))
	}

	var b strings.Builder
	b.WriteString(line("PV", pv, last.PV, ColorPV))
	b.WriteString(line("EV", ev, last.EV, ColorEV))
	b.WriteString(line("AC", ac, last.AC, ColorAC))
	return b.String()
}

// RenderSeriesBars renders each series point as three stacked bars scaled to the largest value.
func RenderSeriesBars(points []evm.ChartDataPoint, width int) string {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.PV, p.EV, p.AC)
	}

	var b strings.Builder
	for _, p := range points {
		day := fmt.Sprintf("day %4d", p.Day)
		for i, s := range []struct {
			label string
			value int
			color lipgloss.Color
		}{
			{"PV", p.PV, ColorPV},
			{"EV", p.EV, ColorEV},
			{"AC", p.AC, ColorAC},
		} {
			prefix := strings.Repeat(" ", len(day))
			if i == 0 {
				prefix = day
			}
			fmt.Fprintf(&b, "  %s %s %s %s\n",
				mutedStyle.Render(prefix),
				dimStyle.Render(s.label),
				RenderHorizontalBar(float64(s.value), float64(peak), width, s.color),
				mutedStyle.Render(FormatWholeCurrency(s.value)))
		}
	}
	return b.String()
}
