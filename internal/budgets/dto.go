package budgets

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type BudgetForm struct {
	Name      string `json:"name" validate:"required"`
	Period    string `json:"period" validate:"required,oneof=monthly quarterly yearly"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=draft active closed"`

	BudgetedRevenue          float64 `json:"budgetedRevenue" validate:"gte=0"`
	BudgetedDirectMaterial   float64 `json:"budgetedDirectMaterial" validate:"gte=0"`
	BudgetedDirectLabor      float64 `json:"budgetedDirectLabor" validate:"gte=0"`
	BudgetedFixedOverhead    float64 `json:"budgetedFixedOverhead" validate:"gte=0"`
	BudgetedVariableOverhead float64 `json:"budgetedVariableOverhead" validate:"gte=0"`
	BudgetedUnits            float64 `json:"budgetedUnits" validate:"gte=0"`

	Notes string `json:"notes,omitempty"`
}

func (f BudgetForm) Validate() error {
	return validate.Struct(f)
}
