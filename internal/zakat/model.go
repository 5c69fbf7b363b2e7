package zakat

import "github.com/meezan-erp/meezan-erp/internal/platform/strapi"

// Record types.
const (
	TypeZakat   = "zakat"
	TypeSadaqat = "sadaqat"
)

// Calculation methods.
const (
	MethodNetAssets   = "net_assets"
	MethodNetProfit   = "net_profit"
	MethodFixedAmount = "fixed_amount"
)

// Record statuses.
const (
	StatusCalculated    = "calculated"
	StatusPartiallyPaid = "partially_paid"
	StatusFullyPaid     = "fully_paid"
)

// Record is a Zakat/Sadaqat calculation snapshot. The computation
// itself runs server-side; the client only lists snapshots and
// triggers recalculation.
type Record struct {
	strapi.Entity
	Type               string  `json:"type"`
	CalculationMethod  string  `json:"calculationMethod"`
	HijriYear          string  `json:"hijriYear,omitempty"`
	GregorianYear      int     `json:"gregorianYear"`
	CalculationDate    string  `json:"calculationDate"`
	ZakatableAssets    float64 `json:"zakatableAssets"`
	Cash               float64 `json:"cash"`
	Receivables        float64 `json:"receivables"`
	Inventory          float64 `json:"inventory"`
	Liabilities        float64 `json:"liabilities"`
	NetZakatableAssets float64 `json:"netZakatableAssets"`
	NisabThreshold     float64 `json:"nisabThreshold"`
	IsAboveNisab       bool    `json:"isAboveNisab"`
	ZakatRate          float64 `json:"zakatRate"`
	CalculatedAmount   float64 `json:"calculatedAmount"`
	PaidAmount         float64 `json:"paidAmount"`
	RemainingAmount    float64 `json:"remainingAmount"`
	PaymentDate        string  `json:"paymentDate,omitempty"`
	Status             string  `json:"status"`
	Notes              string  `json:"notes,omitempty"`
}

// Obligatory reports whether the snapshot's net zakatable assets reach
// nisab. Matches the server-computed isAboveNisab flag but derivable
// from snapshots that predate it.
func (r Record) Obligatory() bool {
	return r.NetZakatableAssets >= r.NisabThreshold && r.NisabThreshold > 0
}
