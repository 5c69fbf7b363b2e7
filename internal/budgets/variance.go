package budgets

// Variance is the budget-vs-actual delta for one line. Favorable means
// more revenue than planned, or less cost than planned.
type Variance struct {
	Line      string  `json:"line"`
	Budgeted  float64 `json:"budgeted"`
	Actual    float64 `json:"actual"`
	Variance  float64 `json:"variance"`
	Percent   float64 `json:"percent"`
	Favorable bool    `json:"favorable"`
}

// LineVariance computes actual − budgeted. isRevenue flips the
// favorable sign: revenue over plan is good, cost over plan is not.
// A zero budget yields a zero percentage, never NaN.
func LineVariance(line string, budgeted, actual float64, isRevenue bool) Variance {
	v := Variance{
		Line:     line,
		Budgeted: budgeted,
		Actual:   actual,
		Variance: actual - budgeted,
	}
	if budgeted != 0 {
		v.Percent = v.Variance / budgeted * 100
	}
	if isRevenue {
		v.Favorable = v.Variance > 0
	} else {
		v.Favorable = v.Variance < 0
	}
	return v
}

// Variances derives the per-line variance report for a plan.
func Variances(p BudgetPlan) []Variance {
	return []Variance{
		LineVariance("revenue", p.BudgetedRevenue, p.ActualRevenue, true),
		LineVariance("directMaterial", p.BudgetedDirectMaterial, p.ActualDirectMaterial, false),
		LineVariance("directLabor", p.BudgetedDirectLabor, p.ActualDirectLabor, false),
		LineVariance("fixedOverhead", p.BudgetedFixedOverhead, p.ActualFixedOverhead, false),
		LineVariance("variableOverhead", p.BudgetedVariableOverhead, p.ActualVariableOverhead, false),
	}
}
