package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/pipeline"
)

var (
	flagPortfolioStatus  string
	flagPortfolioWorkers int
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio DIR",
	Short: "Evaluate every scenario file under a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPortfolio,
}

func init() {
	portfolioCmd.Flags().StringVar(&flagPortfolioStatus, "status", "", "Only list projects with this health (ahead, on-track, at-risk, critical)")
	portfolioCmd.Flags().IntVar(&flagPortfolioWorkers, "workers", 0, "Files evaluated in parallel (0 = one per CPU)")
	rootCmd.AddCommand(portfolioCmd)
}

type portfolioOutput struct {
	Summary pipeline.Summary     `json:"summary"`
	Entries []pipeline.Entry     `json:"entries"`
	Errors  []pipeline.FileError `json:"errors,omitempty"`
}

func runPortfolio(_ *cobra.Command, args []string) error {
	dir := args[0]
	status := evm.IndexStatus(flagPortfolioStatus)
	switch status {
	case "", evm.StatusAhead, evm.StatusOnTrack, evm.StatusAtRisk, evm.StatusCritical:
	default:
		return fmt.Errorf("unknown status %q", flagPortfolioStatus)
	}

	showProgress := !flagQuiet && !flagJSON
	if showProgress {
		fmt.Fprintf(os.Stderr, "  Scanning %s...\n", dir)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := pipeline.Load(ctx, dir, flagPortfolioWorkers, func(current, total int) {
		if showProgress && (current%50 == 0 || current == total) {
			fmt.Fprintf(os.Stderr, "\r  Evaluating [%d/%d]", current, total)
		}
	})
	if err != nil {
		return err
	}
	if showProgress && result.TotalFiles > 0 {
		fmt.Fprintln(os.Stderr)
	}

	summary := pipeline.Aggregate(result.Entries)
	entries := pipeline.SortByHealth(result.Entries)
	if status != "" {
		entries = pipeline.FilterByStatus(entries, status)
	}

	if flagJSON {
		return printJSON(portfolioOutput{Summary: summary, Entries: entries, Errors: result.Errors})
	}

	if result.TotalFiles == 0 {
		fmt.Printf("\n  No scenario files found in %s\n", dir)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PORTFOLIO  %d projects", summary.Projects)))
	fmt.Println()

	rows := make([][]string, 0, len(entries)+2)
	highlight := make(map[int]lipgloss.Color, len(entries)+1)
	for i, e := range entries {
		rows = append(rows, portfolioRow(e.Project, e.Results, e.Assessment))
		highlight[i] = cli.StatusColor(e.Assessment.Overall)
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, portfolioRow("TOTAL", summary.Results, summary.Assessment))
	highlight[len(rows)-1] = cli.StatusColor(summary.Assessment.Overall)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers:   []string{"Project", "SPI", "CPI", "TCPI", "EAC", "VAC", "Health"},
		Rows:      rows,
		Highlight: highlight,
	}))
	fmt.Println()

	fmt.Printf("  Portfolio BAC %s, spent %s, earned %s\n",
		cli.FormatCurrency(summary.Totals.BAC),
		cli.FormatPercent(summary.Assessment.BudgetConsumed),
		cli.FormatPercent(summary.Assessment.PercentComplete))
	for _, s := range []evm.IndexStatus{evm.StatusCritical, evm.StatusAtRisk, evm.StatusOnTrack, evm.StatusAhead} {
		if n := summary.StatusCounts[s]; n > 0 {
			fmt.Printf("    %s %d\n", cli.RenderStatus(s), n)
		}
	}

	for _, fe := range result.Errors {
		fmt.Fprintln(os.Stderr, cli.RenderWarn(fmt.Sprintf("  skipped %s: %s", fe.Path, fe.Err)))
	}
	fmt.Println()
	return nil
}

func portfolioRow(name string, r evm.Results, a evm.Assessment) []string {
	return []string{
		name,
		cli.FormatIndex(r.SPI),
		cli.FormatIndex(r.CPI),
		cli.FormatIndex(r.TCPI),
		cli.FormatCurrency(r.EAC),
		cli.FormatSignedCurrency(r.VAC),
		cli.FormatStatus(a.Overall),
	}
}
