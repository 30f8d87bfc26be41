package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	if flagJSON {
		cfg.Narrative.APIKey = maskAPIKey(cfg.Narrative.APIKey)
		return printJSON(cfg)
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultPreset != "" {
		fmt.Printf("    Default preset:  %s\n", cfg.General.DefaultPreset)
	} else {
		fmt.Println("    Default preset:  none")
	}
	fmt.Printf("    Currency symbol: %s\n", cfg.General.CurrencySymbol)
	fmt.Println()

	fmt.Println("  [Constraints]")
	fmt.Printf("    Deadline fixed:      %v\n", cfg.Constraints.DeadlineFixed)
	if cfg.Constraints.MaxBudgetIncreasePercent != nil {
		fmt.Printf("    Max budget increase: %g%%\n", *cfg.Constraints.MaxBudgetIncreasePercent)
	} else {
		fmt.Println("    Max budget increase: not set")
	}
	fmt.Println()

	fmt.Println("  [Narrative]")
	if key := config.GetNarrativeAPIKey(cfg); key != "" {
		fmt.Printf("    API key:    %s\n", maskAPIKey(key))
	} else {
		fmt.Println("    API key:    not configured")
	}
	fmt.Printf("    Model:      %s\n", cfg.Narrative.Model)
	fmt.Printf("    Max tokens: %d\n", cfg.Narrative.MaxTokens)
	if cfg.Narrative.BaseURL != "" {
		fmt.Printf("    Base URL:   %s\n", cfg.Narrative.BaseURL)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  Run `evm config init` to write a config file.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config already exists at %s", config.Path())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("  Saved to %s\n", config.Path())
	return nil
}

func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
