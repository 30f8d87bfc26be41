package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/server"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute variances, indices and forecasts",
	RunE:  runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	results := evm.Evaluate(in.Metrics)
	assessment := evm.Assess(in.Metrics, results)

	if flagJSON {
		return printJSON(server.EvaluateResponse{
			Metrics:    in.Metrics,
			Results:    results,
			Assessment: assessment,
		})
	}

	printEvaluation(in, results, assessment)
	return nil
}

func printEvaluation(in input, r evm.Results, a evm.Assessment) {
	m := in.Metrics

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EARNED VALUE  %s", in.Source)))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Inputs",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Planned Value (PV)", cli.FormatCurrency(m.PV)},
			{"Earned Value (EV)", cli.FormatCurrency(m.EV)},
			{"Actual Cost (AC)", cli.FormatCurrency(m.AC)},
			{"Budget at Completion", cli.FormatCurrency(m.BAC)},
			{"---"},
			{"Duration", cli.FormatDays(m.TotalDurationDays)},
			{"Elapsed", cli.FormatDays(m.ElapsedDays)},
		},
	}))
	fmt.Println()

	tcpiNote := ""
	if a.FundsExhausted {
		tcpiNote = "budget exhausted"
	} else if a.TCPIHighlight {
		tcpiNote = "above " + cli.FormatIndex(evm.TCPIHighlightAbove)
	}

	highlight := map[int]lipgloss.Color{
		1: cli.StatusColor(a.Schedule),
		4: cli.StatusColor(a.Cost),
	}
	if a.TCPIHighlight {
		highlight[10] = cli.ColorRed
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Results",
		Headers: []string{"Measure", "Value", "Note"},
		Rows: [][]string{
			{"Schedule Variance (SV)", cli.FormatSignedCurrency(r.SV), ""},
			{"Schedule Perf. Index (SPI)", cli.FormatIndex(r.SPI), cli.FormatStatus(a.Schedule)},
			{"---"},
			{"Cost Variance (CV)", cli.FormatSignedCurrency(r.CV), ""},
			{"Cost Perf. Index (CPI)", cli.FormatIndex(r.CPI), cli.FormatStatus(a.Cost)},
			{"---"},
			{"Estimate at Completion", cli.FormatCurrency(r.EAC), ""},
			{"Estimate to Complete", cli.FormatCurrency(r.ETC), ""},
			{"Variance at Completion", cli.FormatSignedCurrency(r.VAC), ""},
			{"---"},
			{"To-Complete Perf. (TCPI)", cli.FormatIndex(r.TCPI), tcpiNote},
			{"---"},
			{"Est. Completion", cli.FormatDays(r.EstimatedCompletionDays), ""},
			{"Schedule Slip", cli.FormatSignedDays(r.ScheduleVarianceDays), ""},
		},
		Highlight: highlight,
	}))
	fmt.Println()

	fmt.Printf("  Health: %s   Spent %s of budget, %s earned\n",
		cli.RenderStatus(a.Overall),
		cli.FormatPercent(a.BudgetConsumed),
		cli.FormatPercent(a.PercentComplete))
	if in.Constraints != nil {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  Constraints: %s", describeConstraints(*in.Constraints))))
	}
	fmt.Println()
}

func describeConstraints(c evm.Constraints) string {
	deadline := "flexible deadline"
	if c.DeadlineFixed {
		deadline = "fixed deadline"
	}
	return fmt.Sprintf("%s, budget may grow %g%%", deadline, c.MaxBudgetIncreasePercent)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
