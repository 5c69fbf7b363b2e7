package products

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ProductForm carries the writable fields of a product. Standard costs
// must be non-negative.
type ProductForm struct {
	Name                  string  `json:"name" validate:"required"`
	SKU                   string  `json:"sku" validate:"required"`
	Description           string  `json:"description,omitempty"`
	Category              string  `json:"category" validate:"required,oneof=clothing accessories home other"`
	TargetSellingPrice    float64 `json:"targetSellingPrice" validate:"gte=0"`
	StandardMaterialCost  float64 `json:"standardMaterialCost" validate:"gte=0"`
	StandardLaborCost     float64 `json:"standardLaborCost" validate:"gte=0"`
	StandardOverheadCost  float64 `json:"standardOverheadCost" validate:"gte=0"`
	LifecycleStage        string  `json:"lifecycleStage" validate:"required,oneof=development launch growth maturity decline"`
	DevelopmentCost       float64 `json:"developmentCost" validate:"gte=0"`
	ExpectedLifetimeSales float64 `json:"expectedLifetimeSales" validate:"gte=0"`
	IsActive              bool    `json:"isActive"`
	Notes                 string  `json:"notes,omitempty"`
}

// Validate checks the form before any remote call is made.
func (f ProductForm) Validate() error {
	return validate.Struct(f)
}
