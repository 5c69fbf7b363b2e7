package batches

import "github.com/meezan-erp/meezan-erp/internal/products"

// EstimatedCost projects a batch's cost from the selected product's
// standard unit costs. Zero when no product is selected or the planned
// quantity is not positive.
func EstimatedCost(p *products.Product, plannedQuantity float64) float64 {
	if p == nil || plannedQuantity <= 0 {
		return 0
	}
	perUnit := p.StandardMaterialCost + p.StandardLaborCost + p.StandardOverheadCost
	return perUnit * plannedQuantity
}

// LineTotal is quantity × unit cost for one direct-cost line.
func LineTotal(quantity, unitCost float64) float64 {
	return quantity * unitCost
}

// GrandTotal sums the line totals of the in-progress cost lines.
func GrandTotal(lines []DirectCostForm) float64 {
	var total float64
	for _, line := range lines {
		total += LineTotal(line.Quantity, line.UnitCost)
	}
	return total
}
