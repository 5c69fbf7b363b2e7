package batches

import (
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/products"
)

// Batch statuses. Cost fields are populated only after the content
// API's calculate-costs action ran; completion is reachable only from
// quality_check and is enforced server-side.
const (
	StatusPlanned      = "planned"
	StatusInProduction = "in_production"
	StatusQualityCheck = "quality_check"
	StatusCompleted    = "completed"
	StatusCancelled    = "cancelled"
)

// AllStatuses in display order.
var AllStatuses = []string{
	StatusPlanned,
	StatusInProduction,
	StatusQualityCheck,
	StatusCompleted,
	StatusCancelled,
}

// Batch is a production run of a product.
type Batch struct {
	strapi.Entity
	BatchNumber         string                       `json:"batchNumber"`
	Product             strapi.Ref[products.Product] `json:"product"`
	PlannedQuantity     float64                      `json:"plannedQuantity"`
	ActualQuantity      float64                      `json:"actualQuantity"`
	Status              string                       `json:"status"`
	StartDate           string                       `json:"startDate,omitempty"`
	CompletionDate      string                       `json:"completionDate,omitempty"`
	ProductionHours     float64                      `json:"productionHours"`
	ProductionDays      float64                      `json:"productionDays"`
	TotalMaterialCost   float64                      `json:"totalMaterialCost"`
	TotalLaborCost      float64                      `json:"totalLaborCost"`
	TotalOverheadCost   float64                      `json:"totalOverheadCost"`
	TotalCost           float64                      `json:"totalCost"`
	CostPerUnit         float64                      `json:"costPerUnit"`
	OverheadRateApplied string                       `json:"overheadRateApplied,omitempty"`
	DirectCosts         []DirectCost                 `json:"directCosts,omitempty"`
	Notes               string                       `json:"notes,omitempty"`
}

// DirectCost is a material or labor line item attributed to one batch.
// TotalCost is quantity × unit cost but not authoritative until the
// server recomputes it.
type DirectCost struct {
	strapi.Entity
	Batch         strapi.Ref[Batch] `json:"batch"`
	CostType      string            `json:"costType"`
	Description   string            `json:"description"`
	Quantity      float64           `json:"quantity"`
	Unit          string            `json:"unit"`
	UnitCost      float64           `json:"unitCost"`
	TotalCost     float64           `json:"totalCost"`
	Supplier      string            `json:"supplier,omitempty"`
	PurchaseDate  string            `json:"purchaseDate,omitempty"`
	InvoiceNumber string            `json:"invoiceNumber,omitempty"`
	Notes         string            `json:"notes,omitempty"`
}

const (
	CostTypeMaterial = "material"
	CostTypeLabor    = "labor"
)

// StatusOptions lists the statuses the inline editor offers for a row:
// every status except the current one.
func StatusOptions(current string) []string {
	out := make([]string, 0, len(AllStatuses)-1)
	for _, s := range AllStatuses {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}
