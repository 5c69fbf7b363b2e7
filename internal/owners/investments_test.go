package owners

import (
	"math"
	"testing"
)

func owner(name string, invested float64) Owner {
	return Owner{Name: name, TotalInvestment: invested, IsActive: true}
}

func TestAllocateProRata(t *testing.T) {
	list := []Owner{
		owner("A", 6000),
		owner("B", 3000),
		owner("C", 1000),
	}
	totalCosts := 5000.0
	allocs := Allocate(list, totalCosts)

	if got := allocs[0].AllocatedCosts; got != 3000 {
		t.Fatalf("A allocation: %.2f", got)
	}
	if got := allocs[1].AllocatedCosts; got != 1500 {
		t.Fatalf("B allocation: %.2f", got)
	}
	if got := allocs[2].AllocatedCosts; got != 500 {
		t.Fatalf("C allocation: %.2f", got)
	}

	var sum float64
	for _, a := range allocs {
		sum += a.AllocatedCosts
	}
	if math.Abs(sum-totalCosts) > 1e-9 {
		t.Fatalf("allocations must sum to total costs: %.6f vs %.6f", sum, totalCosts)
	}

	if got := allocs[0].RemainingBudget; got != 3000 {
		t.Fatalf("A remaining: %.2f", got)
	}
	if got := allocs[0].UtilizationPercent; got != 50 {
		t.Fatalf("A utilization: %.2f", got)
	}
}

func TestAllocateZeroCapital(t *testing.T) {
	list := []Owner{owner("A", 0), owner("B", 0)}
	allocs := Allocate(list, 4000)
	for _, a := range allocs {
		if a.AllocatedCosts != 0 {
			t.Fatalf("zero capital must allocate 0, got %.2f", a.AllocatedCosts)
		}
		if a.UtilizationPercent != 0 {
			t.Fatalf("zero capital utilization must be 0, got %.2f", a.UtilizationPercent)
		}
	}
}

func TestUtilizationClampIsDisplayOnly(t *testing.T) {
	list := []Owner{owner("A", 1000)}
	allocs := Allocate(list, 2500)

	if allocs[0].UtilizationPercent != 100 {
		t.Fatalf("display value must clamp to 100, got %.2f", allocs[0].UtilizationPercent)
	}
	if allocs[0].UtilizationRaw != 250 {
		t.Fatalf("raw value must stay unclamped for thresholds, got %.2f", allocs[0].UtilizationRaw)
	}
	if allocs[0].RemainingBudget != -1500 {
		t.Fatalf("remaining budget may go negative: %.2f", allocs[0].RemainingBudget)
	}
}

func TestTotalCapital(t *testing.T) {
	if got := TotalCapital(nil); got != 0 {
		t.Fatalf("empty list: %.2f", got)
	}
	if got := TotalCapital([]Owner{owner("A", 100), owner("B", 250)}); got != 350 {
		t.Fatalf("total: %.2f", got)
	}
}
