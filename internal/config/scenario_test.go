package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

func writeScenario(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

var wantMetrics = evm.Metrics{
	PV: 100000, EV: 85000, AC: 95000, BAC: 250000,
	TotalDurationDays: 180, ElapsedDays: 60,
}

func TestLoadScenario_TOML(t *testing.T) {
	path := writeScenario(t, "q3.toml", `
name = "Q3 rollout"

[metrics]
pv = 100000
ev = 85000
ac = 95000
bac = 250000
total_duration_days = 180
elapsed_days = 60

[constraints]
deadline_fixed = true
max_budget_increase_percent = 10
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "Q3 rollout", s.Name)
	assert.Equal(t, wantMetrics, s.Metrics.EVM())
	assert.Equal(t, &evm.Constraints{DeadlineFixed: true, MaxBudgetIncreasePercent: 10}, s.EVMConstraints())
}

func TestLoadScenario_YAML(t *testing.T) {
	path := writeScenario(t, "warehouse.yml", `
metrics:
  pv: 100000
  ev: 85000
  ac: 95000
  bac: 250000
  total_duration_days: 180
  elapsed_days: 60
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "warehouse", s.Name, "name falls back to file stem")
	assert.Equal(t, wantMetrics, s.Metrics.EVM())
	assert.Nil(t, s.EVMConstraints())
}

func TestLoadScenario_JSONAcceptsNegativeValues(t *testing.T) {
	path := writeScenario(t, "odd.json", `{"metrics": {"pv": -5, "ev": 10, "ac": 0, "bac": -1, "total_duration_days": -30, "elapsed_days": 0}}`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, evm.Metrics{PV: -5, EV: 10, BAC: -1, TotalDurationDays: -30}, s.Metrics.EVM())
}

func TestLoadScenario_UnknownFormat(t *testing.T) {
	path := writeScenario(t, "metrics.csv", "pv,ev\n1,2\n")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoadScenario_Malformed(t *testing.T) {
	path := writeScenario(t, "bad.yaml", "metrics: [unterminated")

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownFormat))
}
