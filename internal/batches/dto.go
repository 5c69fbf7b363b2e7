package batches

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// BatchForm carries the writable fields of a batch. BatchNumber may be
// left blank; the service generates one.
type BatchForm struct {
	BatchNumber     string  `json:"batchNumber"`
	Product         int64   `json:"product" validate:"required,gt=0"`
	PlannedQuantity float64 `json:"plannedQuantity" validate:"gt=0"`
	ActualQuantity  float64 `json:"actualQuantity" validate:"gte=0"`
	Status          string  `json:"status" validate:"required,oneof=planned in_production quality_check completed cancelled"`
	StartDate       string  `json:"startDate,omitempty"`
	ProductionHours float64 `json:"productionHours" validate:"gte=0"`
	ProductionDays  float64 `json:"productionDays" validate:"gte=0"`
	Notes           string  `json:"notes,omitempty"`
}

// DirectCostForm is one itemized cost line on the batch form.
type DirectCostForm struct {
	Batch         int64   `json:"batch,omitempty"`
	CostType      string  `json:"costType" validate:"required,oneof=material labor"`
	Description   string  `json:"description" validate:"required"`
	Quantity      float64 `json:"quantity" validate:"gt=0"`
	Unit          string  `json:"unit" validate:"required"`
	UnitCost      float64 `json:"unitCost" validate:"gte=0"`
	Supplier      string  `json:"supplier,omitempty"`
	PurchaseDate  string  `json:"purchaseDate,omitempty"`
	InvoiceNumber string  `json:"invoiceNumber,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// CreateBatchRequest is the composite payload: one batch plus its
// optional itemized cost lines, submitted as a single user action.
type CreateBatchRequest struct {
	BatchForm
	DirectCosts []DirectCostForm `json:"directCosts,omitempty"`
}

func (r CreateBatchRequest) Validate() error {
	if err := validate.Struct(r.BatchForm); err != nil {
		return err
	}
	for _, line := range r.DirectCosts {
		if err := validate.Struct(line); err != nil {
			return err
		}
	}
	return nil
}

// StatusUpdateForm changes a batch's status through the documentId
// update variant.
type StatusUpdateForm struct {
	Status string `json:"status" validate:"required,oneof=planned in_production quality_check completed cancelled"`
}

func (f StatusUpdateForm) Validate() error {
	return validate.Struct(f)
}

// PreviewRequest carries the in-progress form fields the derived-state
// endpoint recomputes from.
type PreviewRequest struct {
	Product         int64            `json:"product"`
	PlannedQuantity float64          `json:"plannedQuantity"`
	DirectCosts     []DirectCostForm `json:"directCosts,omitempty"`
}

// Preview is the derived state for the batch form.
type Preview struct {
	EstimatedCost float64   `json:"estimatedCost"`
	LineTotals    []float64 `json:"lineTotals"`
	GrandTotal    float64   `json:"grandTotal"`
}
