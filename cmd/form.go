package cmd

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

var errNotFinite = errors.New("value must be a finite number")

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Enter metrics interactively, then evaluate",
	RunE:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

// numberField binds a form input to a float through its text value.
type numberField struct {
	title string
	text  string
	dst   *float64
}

func runForm(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	m := in.Metrics
	fields := []*numberField{
		{title: "Planned Value (PV)", dst: &m.PV},
		{title: "Earned Value (EV)", dst: &m.EV},
		{title: "Actual Cost (AC)", dst: &m.AC},
		{title: "Budget at Completion (BAC)", dst: &m.BAC},
		{title: "Total Duration (days)", dst: &m.TotalDurationDays},
		{title: "Elapsed (days)", dst: &m.ElapsedDays},
	}

	var c evm.Constraints
	if in.Constraints != nil {
		c = *in.Constraints
	}
	withConstraints := in.Constraints != nil
	budgetText := strconv.FormatFloat(c.MaxBudgetIncreasePercent, 'f', -1, 64)

	metricInputs := make([]huh.Field, 0, len(fields))
	for _, f := range fields {
		f.text = strconv.FormatFloat(*f.dst, 'f', -1, 64)
		metricInputs = append(metricInputs, huh.NewInput().
			Title(f.title).
			Value(&f.text).
			Validate(validateNumber))
	}

	form := huh.NewForm(
		huh.NewGroup(metricInputs...).
			Title("Project metrics").
			Description("Values are evaluated as given; zero and negative numbers are allowed."),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Include management constraints in reports?").
				Value(&withConstraints),
			huh.NewConfirm().
				Title("Is the deadline fixed?").
				Value(&c.DeadlineFixed),
			huh.NewInput().
				Title("Max budget increase (%)").
				Value(&budgetText).
				Validate(validateNumber),
		).Title("Constraints"),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	for _, f := range fields {
		*f.dst, _ = parseNumber(f.text)
	}
	in.Metrics = m
	in.Source = "form"
	in.Constraints = nil
	if withConstraints {
		c.MaxBudgetIncreasePercent, _ = parseNumber(budgetText)
		in.Constraints = &c
	}

	results := evm.Evaluate(in.Metrics)
	assessment := evm.Assess(in.Metrics, results)
	printEvaluation(in, results, assessment)
	return nil
}

// parseNumber accepts thousands separators; empty input is zero.
// NaN and infinities are rejected.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func validateNumber(s string) error {
	if _, err := parseNumber(s); err != nil {
		return errors.New("enter a number")
	}
	return nil
}
