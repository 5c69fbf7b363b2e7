package products

import (
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
)

// Product is a catalog item with the standard unit costs batch
// estimation works from.
type Product struct {
	strapi.Entity
	Name                  string  `json:"name"`
	SKU                   string  `json:"sku"`
	Description           string  `json:"description,omitempty"`
	Category              string  `json:"category"`
	TargetSellingPrice    float64 `json:"targetSellingPrice"`
	StandardMaterialCost  float64 `json:"standardMaterialCost"`
	StandardLaborCost     float64 `json:"standardLaborCost"`
	StandardOverheadCost  float64 `json:"standardOverheadCost"`
	LifecycleStage        string  `json:"lifecycleStage"`
	DevelopmentCost       float64 `json:"developmentCost"`
	ExpectedLifetimeSales float64 `json:"expectedLifetimeSales"`
	IsActive              bool    `json:"isActive"`
	Notes                 string  `json:"notes,omitempty"`
}

// Product categories and lifecycle stages accepted by the content API.
const (
	CategoryClothing    = "clothing"
	CategoryAccessories = "accessories"
	CategoryHome        = "home"
	CategoryOther       = "other"
)

const (
	StageDevelopment = "development"
	StageLaunch      = "launch"
	StageGrowth      = "growth"
	StageMaturity    = "maturity"
	StageDecline     = "decline"
)
