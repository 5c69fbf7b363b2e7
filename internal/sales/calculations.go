package sales

// Derived holds the figures recomputed on every form change.
type Derived struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	TotalCOGS          float64 `json:"totalCOGS"`
	GrossProfit        float64 `json:"grossProfit"`
	GrossMarginPercent float64 `json:"grossMarginPercent"`
	AmountDue          float64 `json:"amountDue"`
}

// Calculate derives the sale figures. costPerUnit is 0 when no batch
// is selected; a zero revenue yields a zero margin, never NaN.
func Calculate(quantity, pricePerUnit, costPerUnit, amountPaid float64) Derived {
	d := Derived{
		TotalRevenue: quantity * pricePerUnit,
		TotalCOGS:    quantity * costPerUnit,
	}
	d.GrossProfit = d.TotalRevenue - d.TotalCOGS
	if d.TotalRevenue != 0 {
		d.GrossMarginPercent = d.GrossProfit / d.TotalRevenue * 100
	}
	d.AmountDue = d.TotalRevenue - amountPaid
	return d
}
