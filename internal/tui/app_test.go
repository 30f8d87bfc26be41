package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/preset"
)

var overBudget = evm.Metrics{PV: 100000, EV: 85000, AC: 95000, BAC: 250000, TotalDurationDays: 180, ElapsedDays: 60}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func typeRunes(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func TestNewAppEvaluatesSeed(t *testing.T) {
	a := NewApp(overBudget, "over-budget")

	if a.metrics != overBudget {
		t.Fatalf("metrics = %+v, want %+v", a.metrics, overBudget)
	}
	if a.results != evm.Evaluate(overBudget) {
		t.Fatalf("results not evaluated from seed")
	}
	if len(a.series) != evm.SeriesSteps+1 {
		t.Fatalf("series len = %d, want 11", len(a.series))
	}
	if a.inputs[3].Value() != "250000" {
		t.Fatalf("BAC input = %q, want 250000", a.inputs[3].Value())
	}
}

func TestTypingRecomputes(t *testing.T) {
	a := NewApp(overBudget, "")
	a.inputs[0].SetValue("")
	a = typeRunes(t, a, "0")

	if a.metrics.PV != 0 {
		t.Fatalf("PV = %v, want 0", a.metrics.PV)
	}
	if a.results.SPI != 1 {
		t.Fatalf("SPI = %v, want 1 with zero PV", a.results.SPI)
	}
	if a.results.EstimatedCompletionDays != 180 {
		t.Fatalf("EstimatedCompletionDays = %v, want 180", a.results.EstimatedCompletionDays)
	}
}

func TestInvalidInputKeepsLastGoodValue(t *testing.T) {
	a := NewApp(overBudget, "")
	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != 2 {
		t.Fatalf("focus = %d, want 2", a.focus)
	}

	a.inputs[2].SetValue("")
	a = typeRunes(t, a, "9x")

	if !a.invalid[2] {
		t.Fatal("AC input not flagged invalid")
	}
	if a.metrics.AC != 9 {
		t.Fatalf("AC = %v, want last good value 9", a.metrics.AC)
	}
}

func TestFocusWraps(t *testing.T) {
	a := NewApp(overBudget, "")
	a = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	if a.focus != len(fields)-1 {
		t.Fatalf("focus = %d, want %d", a.focus, len(fields)-1)
	}
	a = update(t, a, tea.KeyMsg{Type: tea.KeyTab})
	if a.focus != 0 {
		t.Fatalf("focus = %d, want 0", a.focus)
	}
}

func TestPresetCycling(t *testing.T) {
	a := NewApp(evm.Metrics{}, "")
	a = update(t, a, tea.KeyMsg{Type: tea.KeyCtrlP})

	first := preset.All()[0]
	if a.source != first.Key || a.metrics != first.Metrics {
		t.Fatalf("after ctrl+p source = %q metrics = %+v, want %q", a.source, a.metrics, first.Key)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, true},
		{"250,000", 250000, true},
		{"$1_000.5", 1000.5, true},
		{"-42", -42, true},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseAmount(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseAmount(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestViewRendersDashboard(t *testing.T) {
	a := NewApp(overBudget, "over-budget")
	if a.View() != "" {
		t.Fatal("View before WindowSizeMsg should be empty")
	}

	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	out := a.View()
	for _, want := range []string{"SPI", "0.850", "TCPI", "EAC", "over-budget", "d60"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	a = update(t, a, tea.WindowSizeMsg{Width: 60, Height: 40})
	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("narrow terminal not reported")
	}
}

func TestNonFiniteInputIsRejected(t *testing.T) {
	for _, text := range []string{"nan", "inf", "-Inf"} {
		a := NewApp(overBudget, "")
		a.inputs[0].SetValue("")
		a = typeRunes(t, a, text)

		if !a.invalid[0] {
			t.Fatalf("PV %q not flagged invalid", text)
		}
		if a.metrics.PV != overBudget.PV {
			t.Fatalf("PV after %q = %v, want last good value %v", text, a.metrics.PV, overBudget.PV)
		}

		a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
		if !strings.Contains(a.View(), "not a number") {
			t.Fatalf("view does not flag %q", text)
		}
	}
}

func TestViewRendersOverflowingResults(t *testing.T) {
	// CPI underflows to a subnormal, so EAC = BAC / CPI overflows to +Inf.
	m := evm.Metrics{PV: 1, EV: 1e-160, AC: 1e160, BAC: 1e10, TotalDurationDays: 10, ElapsedDays: 5}
	a := NewApp(m, "")
	a = update(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	if out := a.View(); !strings.Contains(out, "+Inf") {
		t.Fatal("view missing +Inf estimate")
	}
}
