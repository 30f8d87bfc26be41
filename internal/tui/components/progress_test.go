package components

import (
	"math"
	"strings"
	"testing"
)

func TestBudgetBarNonFinite(t *testing.T) {
	for _, pct := range []float64{math.NaN(), math.Inf(1), -0.5, 1.4} {
		out := BudgetBar("Spent", pct, 8, 20)
		if !strings.Contains(out, "Spent") {
			t.Fatalf("BudgetBar(%v) missing label: %q", pct, out)
		}
	}
}
