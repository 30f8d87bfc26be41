package evm

// IndexStatus classifies a performance index for display.
type IndexStatus string

const (
	// StatusAhead means the index is above 1.0.
	StatusAhead IndexStatus = "ahead"
	// StatusOnTrack means the index is within 5% below target.
	StatusOnTrack IndexStatus = "on-track"
	// StatusAtRisk means the index is between 5% and 15% below target.
	StatusAtRisk IndexStatus = "at-risk"
	// StatusCritical means the index is more than 15% below target.
	StatusCritical IndexStatus = "critical"
)

// Index thresholds used by ClassifyIndex and Assess.
const (
	OnTrackThreshold   = 0.95
	AtRiskThreshold    = 0.85
	TCPIHighlightAbove = 1.1
)

// severity orders statuses from best to worst.
var severity = map[IndexStatus]int{
	StatusAhead:    0,
	StatusOnTrack:  1,
	StatusAtRisk:   2,
	StatusCritical: 3,
}

// Assessment is the display classification of a Results value.
type Assessment struct {
	Schedule        IndexStatus `json:"schedule"`
	Cost            IndexStatus `json:"cost"`
	Overall         IndexStatus `json:"overall"`
	TCPIHighlight   bool        `json:"tcpiHighlight"`
	FundsExhausted  bool        `json:"fundsExhausted"`
	BudgetConsumed  float64     `json:"budgetConsumed"`  // AC / BAC
	PercentComplete float64     `json:"percentComplete"` // EV / BAC
}

// ClassifyIndex maps an SPI or CPI value onto an IndexStatus.
func ClassifyIndex(v float64) IndexStatus {
	switch {
	case v > 1:
		return StatusAhead
	case v >= OnTrackThreshold:
		return StatusOnTrack
	case v >= AtRiskThreshold:
		return StatusAtRisk
	default:
		return StatusCritical
	}
}

// Severity ranks s from 0 (ahead) to 3 (critical).
func Severity(s IndexStatus) int {
	return severity[s]
}

// Worse returns whichever of a and b is the more severe status.
func Worse(a, b IndexStatus) IndexStatus {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

// Assess classifies results against the display thresholds.
// Metrics are needed for the budget ratios; ratios are 0 when BAC is 0.
func Assess(m Metrics, r Results) Assessment {
	a := Assessment{
		Schedule:       ClassifyIndex(r.SPI),
		Cost:           ClassifyIndex(r.CPI),
		TCPIHighlight:  r.TCPI > TCPIHighlightAbove,
		FundsExhausted: m.BAC-m.AC <= 0 && m.BAC-m.EV > 0,
	}
	a.Overall = Worse(a.Schedule, a.Cost)
	if m.BAC != 0 {
		a.BudgetConsumed = m.AC / m.BAC
		a.PercentComplete = m.EV / m.BAC
	}
	return a
}
