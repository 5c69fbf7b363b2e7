package inventory

import (
	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/products"
)

// Item is the on-hand stock for a product, optionally pinned to the
// batch that produced it. Quantities are maintained server-side by the
// batch-complete and sale actions.
type Item struct {
	strapi.Entity
	Product         strapi.Ref[products.Product] `json:"product"`
	Batch           strapi.Ref[batches.Batch]    `json:"batch"`
	QuantityOnHand  float64                      `json:"quantityOnHand"`
	QuantitySold    float64                      `json:"quantitySold"`
	UnitCost        float64                      `json:"unitCost"`
	TotalValue      float64                      `json:"totalValue"`
	ValuationMethod string                       `json:"valuationMethod,omitempty"`
	Location        string                       `json:"location,omitempty"`
	LastUpdated     string                       `json:"lastUpdated,omitempty"`
	Notes           string                       `json:"notes,omitempty"`
}

// Valuation methods.
const (
	ValuationFIFO                   = "fifo"
	ValuationWeightedAverage        = "weighted_average"
	ValuationSpecificIdentification = "specific_identification"
)
