package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/config"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/narrative"
)

var flagReportSend bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the narrative report context, optionally generating the report",
	Long: "Print the textual context handed to the report generator. " +
		"With --send, submit it to the Anthropic API and print the returned report.",
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportSend, "send", false, "Generate the report via the Anthropic API")
	rootCmd.AddCommand(reportCmd)
}

type reportOutput struct {
	Context narrative.Context `json:"context"`
	Prompt  string            `json:"prompt"`
	Report  *narrative.Report `json:"report,omitempty"`
}

func runReport(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	rc := narrative.NewContext(in.Metrics, in.Constraints)
	out := reportOutput{Context: rc, Prompt: rc.Prompt()}

	if flagReportSend {
		client := narrative.NewClient(config.GetNarrativeAPIKey(appConfig), narrative.Options{
			BaseURL:   appConfig.Narrative.BaseURL,
			Model:     appConfig.Narrative.Model,
			MaxTokens: appConfig.Narrative.MaxTokens,
		})
		if client == nil {
			return errors.New("no API key: set ANTHROPIC_API_KEY or narrative.api_key in " + config.Path())
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if !flagQuiet && !flagJSON {
			fmt.Fprintf(os.Stderr, "  Generating report %s...\n", rc.ID)
		}
		report, err := client.Generate(ctx, rc)
		if err != nil {
			return fmt.Errorf("generating report: %w", err)
		}
		out.Report = report
	}

	if flagJSON {
		return printJSON(out)
	}

	fmt.Println()
	if out.Report == nil {
		fmt.Println(cli.RenderTitle("REPORT CONTEXT"))
		fmt.Println()
		fmt.Println(out.Prompt)
		fmt.Println()
		return nil
	}
	printReport(*out.Report)
	return nil
}

func printReport(r narrative.Report) {
	fmt.Println(cli.RenderTitle("PROJECT HEALTH REPORT"))
	fmt.Println()
	fmt.Printf("  %s\n\n", r.Summary)

	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Println(cli.RenderMuted("  " + title))
		for _, item := range items {
			fmt.Printf("    - %s\n", item)
		}
		fmt.Println()
	}
	section("Risks", r.Risks)
	section("Recommendations", r.Recommendations)
}
