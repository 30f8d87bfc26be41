package evm

import "math"

// SeriesSteps is the number of intervals in an interpolated series.
// InterpolateSeries returns SeriesSteps+1 points.
const SeriesSteps = 10

// InterpolateSeries ramps PV, EV and AC linearly from zero at day 0 to their
// snapshot values at the elapsed day. The ramp is cosmetic: it is not a
// reconstruction of historical progress.
func InterpolateSeries(m Metrics) []ChartDataPoint {
	stepDays := m.ElapsedDays / SeriesSteps
	points := make([]ChartDataPoint, 0, SeriesSteps+1)
	for i := 0; i <= SeriesSteps; i++ {
		ratio := float64(i) / SeriesSteps
		points = append(points, ChartDataPoint{
			Day: roundHalfUp(float64(i) * stepDays),
			PV:  roundHalfUp(m.PV * ratio),
			EV:  roundHalfUp(m.EV * ratio),
			AC:  roundHalfUp(m.AC * ratio),
		})
	}
	return points
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf,
// so -2.5 rounds to -2 rather than -3 as math.Round would.
// Results beyond the int range saturate; NaN maps to 0.
func roundHalfUp(x float64) int {
	r := math.Floor(x + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt:
		return math.MaxInt
	case r <= math.MinInt:
		return math.MinInt
	}
	return int(r)
}
