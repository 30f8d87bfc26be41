package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/server"
)

var flagSeriesBars bool

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show the PV/EV/AC trend from day 0 to today",
	RunE:  runSeries,
}

func init() {
	seriesCmd.Flags().BoolVar(&flagSeriesBars, "bars", false, "Draw a bar per point instead of sparklines")
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	points := evm.InterpolateSeries(in.Metrics)
	if flagJSON {
		return printJSON(server.SeriesResponse{Points: points})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TREND  %s", in.Source)))
	fmt.Println()

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Day),
			cli.FormatWholeCurrency(p.PV),
			cli.FormatWholeCurrency(p.EV),
			cli.FormatWholeCurrency(p.AC),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "PV", "EV", "AC"},
		Rows:    rows,
	}))
	fmt.Println()

	if flagSeriesBars {
		fmt.Print(cli.RenderSeriesBars(points, 40))
	} else {
		fmt.Print(cli.RenderSeriesSparklines(points))
	}
	fmt.Println()
	return nil
}
