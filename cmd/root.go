// Package cmd implements the evm CLI commands.
package cmd

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/cli"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/config"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/preset"
)

// inputFlags mirrors the persistent input flags.
type inputFlags struct {
	pv, ev, ac, bac   float64
	duration, elapsed float64

	preset string
	file   string

	deadlineFixed     bool
	maxBudgetIncrease float64
}

var (
	flagInput inputFlags
	flagJSON  bool
	flagQuiet bool

	appConfig = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "evm",
	Short: "Earned value schedule and cost control",
	Long: "Evaluate project health with Earned Value Management: variances, " +
		"performance indices and forecasts from PV, EV, AC and BAC.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runEvaluate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagInput.pv, "pv", 0, "Planned value to date")
	pf.Float64Var(&flagInput.ev, "ev", 0, "Earned value to date")
	pf.Float64Var(&flagInput.ac, "ac", 0, "Actual cost to date")
	pf.Float64Var(&flagInput.bac, "bac", 0, "Budget at completion")
	pf.Float64Var(&flagInput.duration, "duration", 0, "Total planned duration in days")
	pf.Float64Var(&flagInput.elapsed, "elapsed", 0, "Days elapsed")
	pf.StringVarP(&flagInput.preset, "preset", "p", "", "Start from a built-in scenario (see `evm presets`)")
	pf.StringVarP(&flagInput.file, "file", "f", "", "Read a scenario from a .toml, .yaml or .json file")
	pf.BoolVar(&flagInput.deadlineFixed, "deadline-fixed", false, "Deadline cannot move (report context)")
	pf.Float64Var(&flagInput.maxBudgetIncrease, "max-budget-increase", 0, "Allowed budget increase in percent (report context)")
	pf.BoolVar(&flagJSON, "json", false, "Print JSON instead of tables")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress status output")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg
	if cfg.General.CurrencySymbol != "" {
		cli.CurrencySymbol = cfg.General.CurrencySymbol
	}
	return nil
}

// input is one resolved set of metrics ready for evaluation.
type input struct {
	Source      string
	Metrics     evm.Metrics
	Constraints *evm.Constraints
}

// loadInputs resolves the command's input flags against the loaded config.
func loadInputs(cmd *cobra.Command) (input, error) {
	in, err := resolveInput(flagInput, cmd.Flags().Changed, appConfig)
	if err != nil {
		return in, err
	}
	if !flagQuiet && !flagJSON {
		fmt.Fprintf(os.Stderr, "  Input: %s\n", in.Source)
	}
	return in, nil
}

// resolveInput layers config defaults, then a preset, then a scenario file,
// then any flag the user set explicitly. Later layers win field by field.
func resolveInput(f inputFlags, changed func(string) bool, cfg config.Config) (input, error) {
	var (
		in      input
		sources []string
	)

	if cfg.Constraints.DeadlineFixed || cfg.Constraints.MaxBudgetIncreasePercent != nil {
		c := evm.Constraints{DeadlineFixed: cfg.Constraints.DeadlineFixed}
		if cfg.Constraints.MaxBudgetIncreasePercent != nil {
			c.MaxBudgetIncreasePercent = *cfg.Constraints.MaxBudgetIncreasePercent
		}
		in.Constraints = &c
	}

	key := f.preset
	if !changed("preset") && f.file == "" {
		key = cfg.General.DefaultPreset
	}
	if key != "" {
		b, ok := preset.Lookup(key)
		if !ok {
			return in, fmt.Errorf("unknown preset %q (available: %s)", key, strings.Join(preset.Keys(), ", "))
		}
		in.Metrics = b.Metrics
		if b.Constraints != nil {
			c := *b.Constraints
			in.Constraints = &c
		}
		sources = append(sources, b.Key)
	}

	if f.file != "" {
		s, err := config.LoadScenario(f.file)
		if err != nil {
			return in, err
		}
		in.Metrics = s.Metrics.EVM()
		if c := s.EVMConstraints(); c != nil {
			in.Constraints = c
		}
		sources = append(sources, s.Name)
	}

	overrides := []struct {
		name string
		dst  *float64
		val  float64
	}{
		{"pv", &in.Metrics.PV, f.pv},
		{"ev", &in.Metrics.EV, f.ev},
		{"ac", &in.Metrics.AC, f.ac},
		{"bac", &in.Metrics.BAC, f.bac},
		{"duration", &in.Metrics.TotalDurationDays, f.duration},
		{"elapsed", &in.Metrics.ElapsedDays, f.elapsed},
	}
	flagged := false
	for _, o := range overrides {
		if changed(o.name) {
			*o.dst = o.val
			flagged = true
		}
	}

	if changed("deadline-fixed") || changed("max-budget-increase") {
		if in.Constraints == nil {
			in.Constraints = &evm.Constraints{}
		}
		if changed("deadline-fixed") {
			in.Constraints.DeadlineFixed = f.deadlineFixed
		}
		if changed("max-budget-increase") {
			in.Constraints.MaxBudgetIncreasePercent = f.maxBudgetIncrease
		}
		flagged = true
	}

	for _, o := range overrides {
		if math.IsNaN(*o.dst) || math.IsInf(*o.dst, 0) {
			return in, fmt.Errorf("%s must be a finite number, got %v", o.name, *o.dst)
		}
	}

	if flagged {
		sources = append(sources, "flags")
	}
	if len(sources) == 0 {
		sources = append(sources, "defaults")
	}
	in.Source = strings.Join(sources, " + ")
	return in, nil
}
