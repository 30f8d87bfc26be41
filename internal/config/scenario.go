package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// ErrUnknownFormat is returned for scenario files that are not TOML, YAML or JSON.
var ErrUnknownFormat = errors.New("config: unknown scenario format")

// Scenario is a metrics snapshot read from disk.
type Scenario struct {
	Name        string           `toml:"name" yaml:"name" json:"name"`
	Metrics     MetricsFile      `toml:"metrics" yaml:"metrics" json:"metrics"`
	Constraints *ConstraintsFile `toml:"constraints" yaml:"constraints" json:"constraints"`
}

// MetricsFile is the on-disk form of evm.Metrics.
type MetricsFile struct {
	PV                float64 `toml:"pv" yaml:"pv" json:"pv"`
	EV                float64 `toml:"ev" yaml:"ev" json:"ev"`
	AC                float64 `toml:"ac" yaml:"ac" json:"ac"`
	BAC               float64 `toml:"bac" yaml:"bac" json:"bac"`
	TotalDurationDays float64 `toml:"total_duration_days" yaml:"total_duration_days" json:"total_duration_days"`
	ElapsedDays       float64 `toml:"elapsed_days" yaml:"elapsed_days" json:"elapsed_days"`
}

// ConstraintsFile is the on-disk form of evm.Constraints.
type ConstraintsFile struct {
	DeadlineFixed            bool    `toml:"deadline_fixed" yaml:"deadline_fixed" json:"deadline_fixed"`
	MaxBudgetIncreasePercent float64 `toml:"max_budget_increase_percent" yaml:"max_budget_increase_percent" json:"max_budget_increase_percent"`
}

// EVM converts the file form into evm.Metrics.
func (m MetricsFile) EVM() evm.Metrics {
	return evm.Metrics{
		PV:                m.PV,
		EV:                m.EV,
		AC:                m.AC,
		BAC:               m.BAC,
		TotalDurationDays: m.TotalDurationDays,
		ElapsedDays:       m.ElapsedDays,
	}
}

// EVMConstraints returns the scenario constraints, or nil when the file has none.
func (s Scenario) EVMConstraints() *evm.Constraints {
	if s.Constraints == nil {
		return nil
	}
	return &evm.Constraints{
		DeadlineFixed:            s.Constraints.DeadlineFixed,
		MaxBudgetIncreasePercent: s.Constraints.MaxBudgetIncreasePercent,
	}
}

// LoadScenario reads a scenario file, picking the decoder from its extension.
// Values are taken as given; no plausibility checks are applied.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the --file flag
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".json":
		err = json.Unmarshal(data, &s)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return s, fmt.Errorf("parsing scenario %s: %w", filepath.Base(path), err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}
