package owners

// Allocation is one owner's pro-rata share of the costs incurred so
// far. Costs are allocated by investment share, not by direct
// attribution.
type Allocation struct {
	Owner              Owner   `json:"owner"`
	AllocatedCosts     float64 `json:"allocatedCosts"`
	RemainingBudget    float64 `json:"remainingBudget"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	// UtilizationRaw is the unclamped value, used for threshold
	// coloring while the clamped one drives the progress bar.
	UtilizationRaw float64 `json:"utilizationRaw"`
}

// TotalCapital sums the owners' investments.
func TotalCapital(list []Owner) float64 {
	var total float64
	for _, o := range list {
		total += o.TotalInvestment
	}
	return total
}

// Allocate distributes totalCosts across the owners pro-rata by
// investment share. Zero capital allocates zero to every owner.
func Allocate(list []Owner, totalCosts float64) []Allocation {
	totalCapital := TotalCapital(list)
	out := make([]Allocation, len(list))
	for i, o := range list {
		a := Allocation{Owner: o}
		if totalCapital > 0 {
			a.AllocatedCosts = totalCosts * (o.TotalInvestment / totalCapital)
		}
		a.RemainingBudget = o.TotalInvestment - a.AllocatedCosts
		if o.TotalInvestment > 0 {
			a.UtilizationRaw = a.AllocatedCosts / o.TotalInvestment * 100
		}
		a.UtilizationPercent = clampPercent(a.UtilizationRaw)
		out[i] = a
	}
	return out
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
