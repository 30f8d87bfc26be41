package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

func TestKeysAreUniqueAndOrdered(t *testing.T) {
	keys := Keys()
	require.Len(t, keys, len(All()))
	assert.Equal(t, "over-budget", keys[0])

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		assert.False(t, seen[k], "duplicate key %q", k)
		seen[k] = true
	}
}

func TestLookup(t *testing.T) {
	b, ok := Lookup("on-schedule")
	require.True(t, ok)
	assert.Equal(t, 150000.0, b.Metrics.EV)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestFundsExhaustedBundleHitsSentinel(t *testing.T) {
	b, ok := Lookup("funds-exhausted")
	require.True(t, ok)

	r := evm.Evaluate(b.Metrics)
	assert.Equal(t, evm.TCPIUnbounded, r.TCPI)
}

func TestNotStartedBundleStaysFinite(t *testing.T) {
	b, ok := Lookup("not-started")
	require.True(t, ok)

	r := evm.Evaluate(b.Metrics)
	assert.Equal(t, 1.0, r.SPI)
	assert.Equal(t, 1.0, r.CPI)
	assert.Equal(t, b.Metrics.BAC, r.EAC)
	assert.Equal(t, 1.0, r.TCPI)
}

func TestAllReturnsCopy(t *testing.T) {
	bundles := All()
	bundles[0].Key = "changed"

	b, ok := Lookup("over-budget")
	require.True(t, ok)
	assert.Equal(t, "over-budget", b.Key)
}
