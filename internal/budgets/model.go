package budgets

import "github.com/meezan-erp/meezan-erp/internal/platform/strapi"

// Plan periods.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// Plan statuses.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

// BudgetPlan holds budgeted vs actual figures for one period: revenue,
// four cost categories and unit volume.
type BudgetPlan struct {
	strapi.Entity
	Name      string `json:"name"`
	Period    string `json:"period"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`

	BudgetedRevenue          float64 `json:"budgetedRevenue"`
	ActualRevenue            float64 `json:"actualRevenue"`
	BudgetedDirectMaterial   float64 `json:"budgetedDirectMaterial"`
	ActualDirectMaterial     float64 `json:"actualDirectMaterial"`
	BudgetedDirectLabor      float64 `json:"budgetedDirectLabor"`
	ActualDirectLabor        float64 `json:"actualDirectLabor"`
	BudgetedFixedOverhead    float64 `json:"budgetedFixedOverhead"`
	ActualFixedOverhead      float64 `json:"actualFixedOverhead"`
	BudgetedVariableOverhead float64 `json:"budgetedVariableOverhead"`
	ActualVariableOverhead   float64 `json:"actualVariableOverhead"`
	BudgetedUnits            float64 `json:"budgetedUnits"`
	ActualUnits              float64 `json:"actualUnits"`

	Notes string `json:"notes,omitempty"`
}
