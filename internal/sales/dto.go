package sales

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// SaleForm is the write payload. Derived figures are filled in by the
// service before submission, not accepted from the caller.
type SaleForm struct {
	SaleDate            string  `json:"saleDate" validate:"required"`
	InvoiceNumber       string  `json:"invoiceNumber"`
	Product             int64   `json:"product" validate:"required,gt=0"`
	Batch               int64   `json:"batch"`
	Quantity            float64 `json:"quantity" validate:"required,gt=0"`
	SellingPricePerUnit float64 `json:"sellingPricePerUnit" validate:"required,gt=0"`
	TotalRevenue        float64 `json:"totalRevenue"`
	CostPerUnit         float64 `json:"costPerUnit"`
	TotalCOGS           float64 `json:"totalCOGS"`
	GrossProfit         float64 `json:"grossProfit"`
	GrossMarginPercent  float64 `json:"grossMarginPercent"`
	Customer            string  `json:"customer,omitempty"`
	PaymentMethod       string  `json:"paymentMethod" validate:"required,oneof=cash bank_transfer credit installment other"`
	PaymentStatus       string  `json:"paymentStatus" validate:"required,oneof=paid partial pending"`
	AmountPaid          float64 `json:"amountPaid" validate:"gte=0"`
	AmountDue           float64 `json:"amountDue"`
	Notes               string  `json:"notes,omitempty"`
}

func (f SaleForm) Validate() error {
	return validate.Struct(f)
}

// PreviewRequest carries the live form state for recomputation.
type PreviewRequest struct {
	Product             int64   `json:"product"`
	Batch               int64   `json:"batch"`
	Quantity            float64 `json:"quantity"`
	SellingPricePerUnit float64 `json:"sellingPricePerUnit"`
	AmountPaid          float64 `json:"amountPaid"`
}
