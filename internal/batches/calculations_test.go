package batches

import (
	"testing"

	"github.com/meezan-erp/meezan-erp/internal/products"
)

func TestEstimatedCost(t *testing.T) {
	p := &products.Product{
		StandardMaterialCost: 2.00,
		StandardLaborCost:    1.50,
		StandardOverheadCost: 0.50,
	}

	if got := EstimatedCost(p, 100); got != 400.00 {
		t.Fatalf("expected 400.00, got %.2f", got)
	}
	if got := EstimatedCost(nil, 100); got != 0 {
		t.Fatalf("no product selected must estimate 0, got %.2f", got)
	}
	if got := EstimatedCost(p, 0); got != 0 {
		t.Fatalf("zero quantity must estimate 0, got %.2f", got)
	}
	if got := EstimatedCost(p, -5); got != 0 {
		t.Fatalf("negative quantity must estimate 0, got %.2f", got)
	}
}

func TestLineAndGrandTotals(t *testing.T) {
	if got := LineTotal(3, 2.5); got != 7.5 {
		t.Fatalf("line total: %.2f", got)
	}

	lines := []DirectCostForm{
		{Quantity: 10, UnitCost: 2},
		{Quantity: 4, UnitCost: 1.25},
		{Quantity: 1, UnitCost: 0},
	}
	if got := GrandTotal(lines); got != 25 {
		t.Fatalf("grand total: %.2f", got)
	}
	if got := GrandTotal(nil); got != 0 {
		t.Fatalf("empty list must total 0, got %.2f", got)
	}
}

func TestStatusOptionsExcludesCurrent(t *testing.T) {
	opts := StatusOptions(StatusQualityCheck)
	if len(opts) != len(AllStatuses)-1 {
		t.Fatalf("expected %d options, got %d", len(AllStatuses)-1, len(opts))
	}
	for _, s := range opts {
		if s == StatusQualityCheck {
			t.Fatal("current status must be excluded")
		}
	}
}
