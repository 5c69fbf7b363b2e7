package sales

import (
	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/products"
)

// Sale records a sale of units from a completed batch. The derived
// fields (revenue, COGS, profit, margin, amount due) are computed on
// the form and stored with the record.
type Sale struct {
	strapi.Entity
	SaleDate            string                       `json:"saleDate"`
	InvoiceNumber       string                       `json:"invoiceNumber"`
	Product             strapi.Ref[products.Product] `json:"product"`
	Batch               strapi.Ref[batches.Batch]    `json:"batch"`
	Quantity            float64                      `json:"quantity"`
	SellingPricePerUnit float64                      `json:"sellingPricePerUnit"`
	TotalRevenue        float64                      `json:"totalRevenue"`
	CostPerUnit         float64                      `json:"costPerUnit"`
	TotalCOGS           float64                      `json:"totalCOGS"`
	GrossProfit         float64                      `json:"grossProfit"`
	GrossMarginPercent  float64                      `json:"grossMarginPercent"`
	Customer            string                       `json:"customer,omitempty"`
	PaymentMethod       string                       `json:"paymentMethod"`
	PaymentStatus       string                       `json:"paymentStatus"`
	AmountPaid          float64                      `json:"amountPaid"`
	AmountDue           float64                      `json:"amountDue"`
	Notes               string                       `json:"notes,omitempty"`
}

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusPending = "pending"
)
