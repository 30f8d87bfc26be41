// Package tui provides the interactive Bubble Tea calculator for evm.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/preset"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/components"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	inputPanelWidth  = 34
	chartHeight      = 8
)

// field binds one text input to one Metrics value.
type field struct {
	label string
	ref   func(m *evm.Metrics) *float64
}

var fields = []field{
	{"Planned Value (PV)", func(m *evm.Metrics) *float64 { return &m.PV }},
	{"Earned Value (EV)", func(m *evm.Metrics) *float64 { return &m.EV }},
	{"Actual Cost (AC)", func(m *evm.Metrics) *float64 { return &m.AC }},
	{"Budget at Completion", func(m *evm.Metrics) *float64 { return &m.BAC }},
	{"Total Duration (days)", func(m *evm.Metrics) *float64 { return &m.TotalDurationDays }},
	{"Elapsed (days)", func(m *evm.Metrics) *float64 { return &m.ElapsedDays }},
}

// App is the root Bubble Tea model. Every input change re-runs the
// evaluator and the series interpolator; nothing else is cached.
type App struct {
	inputs  []textinput.Model
	invalid []bool
	focus   int

	metrics    evm.Metrics
	results    evm.Results
	assessment evm.Assessment
	series     []evm.ChartDataPoint

	source      string // preset key or file name the inputs were seeded from
	presetIndex int

	width    int
	height   int
	showHelp bool
}

// NewApp seeds the inputs from m. source labels where m came from.
func NewApp(m evm.Metrics, source string) App {
	a := App{
		inputs:      make([]textinput.Model, len(fields)),
		invalid:     make([]bool, len(fields)),
		source:      source,
		presetIndex: -1,
	}
	for i := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		ti.Width = inputPanelWidth - 6
		a.inputs[i] = ti
	}
	a.load(m)
	a.inputs[0].Focus()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// load replaces every input with the values in m.
func (a *App) load(m evm.Metrics) {
	for i, f := range fields {
		a.inputs[i].SetValue(strconv.FormatFloat(*f.ref(&m), 'f', -1, 64))
	}
	a.recompute()
}

// recompute parses the inputs and re-evaluates. Unparseable inputs keep the
// last good value and are flagged; empty inputs count as zero.
func (a *App) recompute() {
	for i, f := range fields {
		v, ok := parseAmount(a.inputs[i].Value())
		a.invalid[i] = !ok
		if ok {
			*f.ref(&a.metrics) = v
		}
	}
	a.results = evm.Evaluate(a.metrics)
	a.assessment = evm.Assess(a.metrics, a.results)
	a.series = evm.InterpolateSeries(a.metrics)
}

// parseAmount accepts plain numbers with optional thousands separators and
// currency symbol. NaN and infinities are rejected; no other range checks apply.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(strings.NewReplacer(",", "", "_", "", cli.CurrencySymbol, "").Replace(s))
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (a *App) setFocus(i int) tea.Cmd {
	n := len(a.inputs)
	a.inputs[a.focus].Blur()
	a.focus = ((i % n) + n) % n
	return a.inputs[a.focus].Focus()
}

// nextPreset cycles through the built-in scenarios.
func (a *App) nextPreset() {
	bundles := preset.All()
	a.presetIndex = (a.presetIndex + 1) % len(bundles)
	b := bundles[a.presetIndex]
	a.source = b.Key
	a.load(b.Metrics)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "?":
			a.showHelp = !a.showHelp
			return a, nil
		case "tab", "down", "enter":
			return a, a.setFocus(a.focus + 1)
		case "shift+tab", "up":
			return a, a.setFocus(a.focus - 1)
		case "ctrl+p":
			a.nextPreset()
			return a, nil
		}

		var cmd tea.Cmd
		a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
		a.recompute()
		return a, cmd
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) viewTooNarrow() string {
	t := theme.Active
	msg := fmt.Sprintf("Terminal too narrow (%d cols, need %d)", a.width, minTerminalWidth)
	return lipgloss.NewStyle().Foreground(t.Yellow).Padding(1, 2).Render(msg)
}

func (a App) viewHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := [][2]string{
		{"tab / enter / ↓", "next input"},
		{"shift+tab / ↑", "previous input"},
		{"ctrl+p", "load next built-in preset"},
		{"?", "toggle this help"},
		{"esc / ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("  Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  " + keyStyle.Render(fmt.Sprintf("%-18s", r[0])) + descStyle.Render(r[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Inputs accept any number, including zero and negative values."))
	return b.String()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()
	rightW := cw - inputPanelWidth - 1

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("  Earned Value Dashboard")
	left := a.viewInputs()
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.viewIndices(rightW),
		a.viewForecast(rightW),
		a.viewBudget(rightW),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	chart := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(components.SeriesLegend() + "\n\n" + components.SeriesChart(a.series, chartHeight))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		chart,
		components.RenderStatusBar(cw, a.source),
	)
}

func (a App) viewInputs() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	for i, f := range fields {
		border := t.Border
		if i == a.focus {
			border = t.BorderFocus
		}
		label := labelStyle.Render(f.label)
		if a.invalid[i] {
			label += " " + errStyle.Render("not a number")
		}
		b.WriteString(" " + label + "\n")
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(inputPanelWidth-2).
			Padding(0, 1).
			Render(a.inputs[i].View()))
		if i < len(fields)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(inputPanelWidth).Render(b.String())
}

func (a App) viewIndices(w int) string {
	t := theme.Active
	r, as := a.results, a.assessment

	tcpiColor := t.TextPrimary
	tcpiNote := "needed to finish"
	if as.TCPIHighlight {
		tcpiColor = t.Red
	}
	if as.FundsExhausted {
		tcpiNote = "budget exhausted"
	}

	return components.MetricCardRow([]components.Card{
		{Label: "SPI", Value: cli.FormatIndex(r.SPI), Note: cli.FormatStatus(as.Schedule), Color: statusColor(as.Schedule)},
		{Label: "CPI", Value: cli.FormatIndex(r.CPI), Note: cli.FormatStatus(as.Cost), Color: statusColor(as.Cost)},
		{Label: "TCPI", Value: cli.FormatIndex(r.TCPI), Note: tcpiNote, Color: tcpiColor},
		{Label: "Health", Value: cli.FormatStatus(as.Overall), Color: statusColor(as.Overall)},
	}, w)
}

func (a App) viewForecast(w int) string {
	r := a.results
	return components.MetricCardRow([]components.Card{
		{Label: "SV / CV", Value: cli.FormatSignedCurrency(r.SV), Note: cli.FormatSignedCurrency(r.CV)},
		{Label: "EAC", Value: cli.FormatCurrency(r.EAC), Note: "ETC " + cli.FormatCurrency(r.ETC)},
		{Label: "VAC", Value: cli.FormatSignedCurrency(r.VAC), Color: signColor(r.VAC)},
		{Label: "Finish", Value: cli.FormatDays(r.EstimatedCompletionDays), Note: cli.FormatSignedDays(r.ScheduleVarianceDays)},
	}, w)
}

func (a App) viewBudget(w int) string {
	barW := max(w-20, 10)
	return " " + components.BudgetBar("Spent", a.assessment.BudgetConsumed, 8, barW) + "\n" +
		" " + components.BudgetBar("Earned", a.assessment.PercentComplete, 8, barW)
}

func statusColor(s evm.IndexStatus) lipgloss.Color {
	t := theme.Active
	switch s {
	case evm.StatusAhead:
		return t.Green
	case evm.StatusOnTrack:
		return t.Accent
	case evm.StatusAtRisk:
		return t.Yellow
	default:
		return t.Red
	}
}

func signColor(v float64) lipgloss.Color {
	if v < 0 {
		return theme.Active.Red
	}
	return theme.Active.Green
}
