// Package narrative prepares EVM results for a remote language model and
// fetches the narrative report it writes.
package narrative

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// systemPrompt frames the generator's answer as a Report JSON object.
const systemPrompt = `You are a project controls analyst. Read the earned value snapshot and reply with a single JSON object:
{"summary": string, "risks": [string], "recommendations": [string]}.
Respect any management constraints given. Do not add text outside the JSON object.`

// NewContext evaluates m and packages it with the optional constraints.
func NewContext(m evm.Metrics, c *evm.Constraints) Context {
	return Context{
		ID:          uuid.New(),
		Metrics:     m,
		Results:     evm.Evaluate(m),
		Constraints: c,
		GeneratedAt: time.Now().UTC(),
	}
}

// Prompt renders the context as the text sent to the generator.
// Output depends only on metrics, results and constraints.
func (c Context) Prompt() string {
	m, r := c.Metrics, c.Results

	var b strings.Builder
	b.WriteString("Project earned value snapshot\n\n")

	b.WriteString("Inputs:\n")
	fmt.Fprintf(&b, "- Planned Value (PV): %s\n", money(m.PV))
	fmt.Fprintf(&b, "- Earned Value (EV): %s\n", money(m.EV))
	fmt.Fprintf(&b, "- Actual Cost (AC): %s\n", money(m.AC))
	fmt.Fprintf(&b, "- Budget at Completion (BAC): %s\n", money(m.BAC))
	fmt.Fprintf(&b, "- Planned duration: %s days\n", num(m.TotalDurationDays, 1))
	fmt.Fprintf(&b, "- Elapsed: %s days\n", num(m.ElapsedDays, 1))

	b.WriteString("\nResults:\n")
	fmt.Fprintf(&b, "- Schedule Variance (SV): %s\n", money(r.SV))
	fmt.Fprintf(&b, "- Schedule Performance Index (SPI): %s\n", num(r.SPI, 3))
	fmt.Fprintf(&b, "- Cost Variance (CV): %s\n", money(r.CV))
	fmt.Fprintf(&b, "- Cost Performance Index (CPI): %s\n", num(r.CPI, 3))
	fmt.Fprintf(&b, "- Estimate at Completion (EAC): %s\n", money(r.EAC))
	fmt.Fprintf(&b, "- Estimate to Complete (ETC): %s\n", money(r.ETC))
	fmt.Fprintf(&b, "- Variance at Completion (VAC): %s\n", money(r.VAC))
	fmt.Fprintf(&b, "- To-Complete Performance Index (TCPI): %s", num(r.TCPI, 3))
	if m.BAC-m.AC <= 0 && m.BAC-m.EV > 0 {
		b.WriteString(" (budget exhausted with work remaining)")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Estimated completion: %s days\n", num(r.EstimatedCompletionDays, 1))
	fmt.Fprintf(&b, "- Schedule variance: %s days\n", num(r.ScheduleVarianceDays, 1))

	if c.Constraints != nil {
		b.WriteString("\nManagement constraints:\n")
		if c.Constraints.DeadlineFixed {
			b.WriteString("- Deadline is fixed\n")
		} else {
			b.WriteString("- Deadline is flexible\n")
		}
		fmt.Fprintf(&b, "- Max budget increase: %s%%\n", num(c.Constraints.MaxBudgetIncreasePercent, 1))
	}

	return b.String()
}

func money(v float64) string {
	return num(v, 2)
}

// num falls back to strconv for NaN and infinities, which decimal rejects.
func num(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
