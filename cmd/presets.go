package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/preset"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/server"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in scenarios",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(_ *cobra.Command, _ []string) error {
	bundles := preset.All()

	if flagJSON {
		out := make([]server.PresetResponse, 0, len(bundles))
		for _, b := range bundles {
			out = append(out, server.PresetResponse{
				Key:         b.Key,
				Name:        b.Name,
				Description: b.Description,
				Metrics:     b.Metrics,
				Constraints: b.Constraints,
			})
		}
		return printJSON(out)
	}

	rows := make([][]string, 0, len(bundles))
	highlight := make(map[int]lipgloss.Color, len(bundles))
	for i, b := range bundles {
		r := evm.Evaluate(b.Metrics)
		a := evm.Assess(b.Metrics, r)
		rows = append(rows, []string{
			b.Key,
			b.Name,
			cli.FormatIndex(r.SPI),
			cli.FormatIndex(r.CPI),
			cli.FormatIndex(r.TCPI),
			cli.FormatStatus(a.Overall),
		})
		highlight[i] = cli.StatusColor(a.Overall)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     "Presets",
		Headers:   []string{"Key", "Name", "SPI", "CPI", "TCPI", "Health"},
		Rows:      rows,
		Highlight: highlight,
	}))
	fmt.Println()
	fmt.Println(cli.RenderMuted("  Use one with: evm --preset <key>"))
	fmt.Println()
	return nil
}
