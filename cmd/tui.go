package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/tui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	theme.SetActive(appConfig.Appearance.Theme)

	// Force TrueColor so theme colors render even when the profile probe
	// falls back to Ascii.
	lipgloss.SetColorProfile(termenv.TrueColor)

	p := tea.NewProgram(tui.NewApp(in.Metrics, in.Source), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
