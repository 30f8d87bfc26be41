// Package preset holds built-in EVM scenario bundles.
package preset

import "github.com/Wasif-Rauf77/ai-project-schedule-cost-control/internal/evm"

// Bundle is a named metrics snapshot with optional management constraints.
type Bundle struct {
	Key         string
	Name        string
	Description string
	Metrics     evm.Metrics
	Constraints *evm.Constraints
}

// builtin is ordered for display; keys must be unique.
var builtin = []Bundle{
	{
		Key:         "over-budget",
		Name:        "Over budget, behind schedule",
		Description: "A third of the way in, earning less than planned and spending more than earned.",
		Metrics: evm.Metrics{
			PV: 100000, EV: 85000, AC: 95000, BAC: 250000,
			TotalDurationDays: 180, ElapsedDays: 60,
		},
		Constraints: &evm.Constraints{DeadlineFixed: true, MaxBudgetIncreasePercent: 10},
	},
	{
		Key:         "on-schedule",
		Name:        "On schedule, over cost",
		Description: "Work is landing as planned but every unit costs a fifth more than budgeted.",
		Metrics: evm.Metrics{
			PV: 150000, EV: 150000, AC: 180000, BAC: 250000,
			TotalDurationDays: 180, ElapsedDays: 100,
		},
		Constraints: &evm.Constraints{DeadlineFixed: false, MaxBudgetIncreasePercent: 15},
	},
	{
		Key:         "funds-exhausted",
		Name:        "Funds exhausted",
		Description: "The whole budget is spent with a fifth of the work still open.",
		Metrics: evm.Metrics{
			PV: 220000, EV: 200000, AC: 250000, BAC: 250000,
			TotalDurationDays: 180, ElapsedDays: 150,
		},
		Constraints: &evm.Constraints{DeadlineFixed: true, MaxBudgetIncreasePercent: 5},
	},
	{
		Key:         "ahead",
		Name:        "Ahead and under budget",
		Description: "More work earned than planned at lower cost than earned.",
		Metrics: evm.Metrics{
			PV: 80000, EV: 95000, AC: 82000, BAC: 300000,
			TotalDurationDays: 240, ElapsedDays: 70,
		},
	},
	{
		Key:         "not-started",
		Name:        "Not started",
		Description: "Baseline approved, nothing planned, earned or spent yet.",
		Metrics: evm.Metrics{
			BAC: 500000, TotalDurationDays: 365,
		},
	},
}

// All returns the built-in bundles in display order.
func All() []Bundle {
	out := make([]Bundle, len(builtin))
	copy(out, builtin)
	return out
}

// Keys returns the bundle keys in display order.
func Keys() []string {
	keys := make([]string, len(builtin))
	for i, b := range builtin {
		keys[i] = b.Key
	}
	return keys
}

// Lookup finds a bundle by key.
func Lookup(key string) (Bundle, bool) {
	for _, b := range builtin {
		if b.Key == key {
			return b, true
		}
	}
	return Bundle{}, false
}
