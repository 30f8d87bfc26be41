package pipeline

import (
	"sort"

	"github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"
)

// Summary rolls a portfolio up into one set of metrics.
type Summary struct {
	Projects int `json:"projects"`
	// Totals sums PV, EV, AC and BAC. Durations take the longest project.
	Totals       evm.Metrics             `json:"totals"`
	Results      evm.Results             `json:"results"`
	Assessment   evm.Assessment          `json:"assessment"`
	StatusCounts map[evm.IndexStatus]int `json:"statusCounts"`
}

// Aggregate evaluates the summed metrics of entries.
func Aggregate(entries []Entry) Summary {
	s := Summary{
		Projects:     len(entries),
		StatusCounts: make(map[evm.IndexStatus]int),
	}
	for _, e := range entries {
		s.Totals.PV += e.Metrics.PV
		s.Totals.EV += e.Metrics.EV
		s.Totals.AC += e.Metrics.AC
		s.Totals.BAC += e.Metrics.BAC
		s.Totals.TotalDurationDays = max(s.Totals.TotalDurationDays, e.Metrics.TotalDurationDays)
		s.Totals.ElapsedDays = max(s.Totals.ElapsedDays, e.Metrics.ElapsedDays)
		s.StatusCounts[e.Assessment.Overall]++
	}
	s.Results = evm.Evaluate(s.Totals)
	s.Assessment = evm.Assess(s.Totals, s.Results)
	return s
}

// FilterByStatus returns entries whose overall status equals status.
func FilterByStatus(entries []Entry, status evm.IndexStatus) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Assessment.Overall == status {
			out = append(out, e)
		}
	}
	return out
}

// SortByHealth orders entries worst first: by overall status, then by the
// lower of SPI and CPI, then by project name.
func SortByHealth(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if sa, sb := evm.Severity(a.Assessment.Overall), evm.Severity(b.Assessment.Overall); sa != sb {
			return sa > sb
		}
		ia := min(a.Results.SPI, a.Results.CPI)
		ib := min(b.Results.SPI, b.Results.CPI)
		if ia != ib {
			return ia < ib
		}
		return a.Project < b.Project
	})
	return out
}
