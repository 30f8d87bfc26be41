package evm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolateSeries_LinearRamp(t *testing.T) {
	m := Metrics{PV: 100000, EV: 85000, AC: 95000, BAC: 250000, TotalDurationDays: 180, ElapsedDays: 60}
	points := InterpolateSeries(m)

	require.Len(t, points, SeriesSteps+1)
	assert.Equal(t, ChartDataPoint{}, points[0])
	assert.Equal(t, ChartDataPoint{Day: 30, PV: 50000, EV: 42500, AC: 47500}, points[5])
	assert.Equal(t, ChartDataPoint{Day: 60, PV: 100000, EV: 85000, AC: 95000}, points[10])

	for i, p := range points {
		assert.Equal(t, i*6, p.Day, "day at step %d", i)
	}
}

func TestInterpolateSeries_LastPointIsRoundedSnapshot(t *testing.T) {
	m := Metrics{PV: 1234.4, EV: 999.5, AC: -10.5, ElapsedDays: 33.3}
	points := InterpolateSeries(m)

	require.Len(t, points, 11)
	last := points[10]
	assert.Equal(t, 1234, last.PV)
	assert.Equal(t, 1000, last.EV)
	assert.Equal(t, -10, last.AC)
	assert.Equal(t, 33, last.Day)
}

func TestInterpolateSeries_ZeroElapsedStacksAtDayZero(t *testing.T) {
	points := InterpolateSeries(Metrics{PV: 1000, EV: 500, AC: 700, ElapsedDays: 0})

	require.Len(t, points, 11)
	for i, p := range points {
		assert.Equal(t, 0, p.Day, "day at step %d", i)
		assert.Equal(t, i*100, p.PV, "pv at step %d", i)
		assert.Equal(t, i*50, p.EV, "ev at step %d", i)
		assert.Equal(t, i*70, p.AC, "ac at step %d", i)
	}
}

func TestInterpolateSeries_RoundsHalfUp(t *testing.T) {
	// 1.5-day steps put the odd steps on .5 boundaries.
	points := InterpolateSeries(Metrics{PV: 5, EV: -5, ElapsedDays: 15})

	assert.Equal(t, 2, points[1].Day)
	assert.Equal(t, 5, points[3].Day)
	assert.Equal(t, 1, points[1].PV)
	assert.Equal(t, 0, points[1].EV)
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0: 0, 0.4: 0, 0.5: 1, 1.5: 2, 2.5: 3,
		-0.4: 0, -0.5: 0, -1.5: -1, -2.5: -2, -2.6: -3,
	}
	for in, want := range cases {
		if got := roundHalfUp(in); got != want {
			t.Fatalf("roundHalfUp(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestInterpolateSeries_LargeMagnitudesKeepSign(t *testing.T) {
	points := InterpolateSeries(Metrics{PV: 1e20, EV: -1e19, AC: 5e18, ElapsedDays: 1e19})
	last := points[SeriesSteps]

	assert.Equal(t, math.MaxInt, last.Day)
	assert.Equal(t, math.MaxInt, last.PV)
	assert.Equal(t, math.MinInt, last.EV)
	assert.Equal(t, 5_000_000_000_000_000_000, last.AC)
	assert.Equal(t, ChartDataPoint{}, points[0])
}

func TestRoundHalfUp_NonFinite(t *testing.T) {
	assert.Equal(t, 0, roundHalfUp(math.NaN()))
	assert.Equal(t, math.MaxInt, roundHalfUp(math.Inf(1)))
	assert.Equal(t, math.MinInt, roundHalfUp(math.Inf(-1)))
	assert.Equal(t, math.MaxInt, roundHalfUp(1e300))
}
