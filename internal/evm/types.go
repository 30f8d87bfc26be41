// Package evm implements the Earned Value Management calculation engine.
package evm

// Metrics is a single snapshot of project performance inputs.
// No sign or ordering invariant is enforced; values are computed through as given.
type Metrics struct {
	PV                float64 `json:"pv"`
	EV                float64 `json:"ev"`
	AC                float64 `json:"ac"`
	BAC               float64 `json:"bac"`
	TotalDurationDays float64 `json:"totalDurationDays"`
	ElapsedDays       float64 `json:"elapsedDays"`
}

// Results holds the variances, performance indices and forecasts derived from Metrics.
type Results struct {
	SV                      float64 `json:"sv"`
	SPI                     float64 `json:"spi"`
	CV                      float64 `json:"cv"`
	CPI                     float64 `json:"cpi"`
	EAC                     float64 `json:"eac"`
	ETC                     float64 `json:"etc"`
	VAC                     float64 `json:"vac"`
	TCPI                    float64 `json:"tcpi"`
	EstimatedCompletionDays float64 `json:"estimatedCompletionDays"`
	ScheduleVarianceDays    float64 `json:"scheduleVarianceDays"`
}

// ChartDataPoint is one step of the PV/EV/AC trend series, rounded for display.
type ChartDataPoint struct {
	Day int `json:"day"`
	PV  int `json:"pv"`
	EV  int `json:"ev"`
	AC  int `json:"ac"`
}

// Constraints carries management constraints to the narrative report.
// The calculation engine never reads it.
type Constraints struct {
	DeadlineFixed            bool    `json:"deadlineFixed"`
	MaxBudgetIncreasePercent float64 `json:"maxBudgetIncreasePercent"`
}
