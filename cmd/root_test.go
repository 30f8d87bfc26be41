package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/config"
	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestResolveInputDefaults(t *testing.T) {
	in, err := resolveInput(inputFlags{}, changedSet(), config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "defaults", in.Source)
	assert.Equal(t, evm.Metrics{}, in.Metrics)
	assert.Nil(t, in.Constraints)
}

func TestResolveInputPresetThenFlags(t *testing.T) {
	f := inputFlags{preset: "over-budget", ac: 120000, maxBudgetIncrease: 25}
	in, err := resolveInput(f, changedSet("preset", "ac", "max-budget-increase"), config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "over-budget + flags", in.Source)
	assert.InDelta(t, 100000, in.Metrics.PV, 0)
	assert.InDelta(t, 120000, in.Metrics.AC, 0)
	require.NotNil(t, in.Constraints)
	assert.True(t, in.Constraints.DeadlineFixed, "preset constraint kept")
	assert.InDelta(t, 25, in.Constraints.MaxBudgetIncreasePercent, 0)
}

func TestResolveInputUnsetFlagsDoNotOverride(t *testing.T) {
	// Zero-valued flags the user never set must not clobber preset values.
	in, err := resolveInput(inputFlags{preset: "on-schedule"}, changedSet("preset"), config.DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 150000, in.Metrics.EV, 0)
	assert.Equal(t, "on-schedule", in.Source)
}

func TestResolveInputFileOverridesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q3.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
metrics:
  pv: 10
  ev: 8
  ac: 9
  bac: 40
  total_duration_days: 20
  elapsed_days: 5
`), 0o600))

	f := inputFlags{preset: "over-budget", file: path}
	in, err := resolveInput(f, changedSet("preset", "file"), config.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "over-budget + q3", in.Source)
	assert.InDelta(t, 40, in.Metrics.BAC, 0)
	require.NotNil(t, in.Constraints, "file without constraints keeps preset constraints")
	assert.InDelta(t, 10, in.Constraints.MaxBudgetIncreasePercent, 0)
}

func TestResolveInputConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.DefaultPreset = "ahead"
	limit := 7.5
	cfg.Constraints.MaxBudgetIncreasePercent = &limit

	in, err := resolveInput(inputFlags{}, changedSet(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "ahead", in.Source)
	require.NotNil(t, in.Constraints)
	assert.InDelta(t, 7.5, in.Constraints.MaxBudgetIncreasePercent, 0)
}

func TestResolveInputUnknownPreset(t *testing.T) {
	_, err := resolveInput(inputFlags{preset: "nope"}, changedSet("preset"), config.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "over-budget")
}

func TestResolveInputRejectsNonFinite(t *testing.T) {
	_, err := resolveInput(inputFlags{pv: math.NaN()}, changedSet("pv"), config.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pv")

	_, err = resolveInput(inputFlags{bac: math.Inf(1)}, changedSet("bac"), config.DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bac")
}
