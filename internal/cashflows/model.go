package cashflows

import (
	"github.com/meezan-erp/meezan-erp/internal/owners"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
)

// Cashflow types. Owner is required iff the type is owner_investment.
const (
	TypeOwnerInvestment = "owner_investment"
	TypeExpense         = "expense"
)

// Categories, constrained by type.
const (
	CategoryInitialInvestment    = "initial_investment"
	CategoryAdditionalInvestment = "additional_investment"

	CategoryMaterials = "materials"
	CategoryLabor     = "labor"
	CategoryOverhead  = "overhead"
	CategoryMarketing = "marketing"
	CategoryEquipment = "equipment"
	CategoryZakat     = "zakat"
	CategorySadaqat   = "sadaqat"
	CategoryOther     = "other"
)

var InvestmentCategories = []string{
	CategoryInitialInvestment,
	CategoryAdditionalInvestment,
}

var ExpenseCategories = []string{
	CategoryMaterials,
	CategoryLabor,
	CategoryOverhead,
	CategoryMarketing,
	CategoryEquipment,
	CategoryZakat,
	CategorySadaqat,
	CategoryOther,
}

// Cashflow is one money movement: an owner's capital injection or an
// expense. Expenses carry a paid flag for the payables view.
type Cashflow struct {
	strapi.Entity
	TransactionDate string                   `json:"transactionDate"`
	Type            string                   `json:"type"`
	Category        string                   `json:"category"`
	Description     string                   `json:"description"`
	Amount          float64                  `json:"amount"`
	Owner           strapi.Ref[owners.Owner] `json:"owner"`
	IsPaid          bool                     `json:"isPaid"`
	PaidDate        string                   `json:"paidDate,omitempty"`
	PaymentMethod   string                   `json:"paymentMethod,omitempty"`
	ReferenceNumber string                   `json:"referenceNumber,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
}

// CategoryAllowed reports whether a category belongs to the type's
// constrained set.
func CategoryAllowed(cfType, category string) bool {
	set := ExpenseCategories
	if cfType == TypeOwnerInvestment {
		set = InvestmentCategories
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
