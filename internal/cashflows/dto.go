package cashflows

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CashflowForm is the write payload. Owner is required for
// owner_investment entries and the category must belong to the type's
// set, both checked in Validate.
type CashflowForm struct {
	TransactionDate string  `json:"transactionDate" validate:"required"`
	Type            string  `json:"type" validate:"required,oneof=owner_investment expense"`
	Category        string  `json:"category" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Owner           int64   `json:"owner,omitempty"`
	IsPaid          bool    `json:"isPaid"`
	PaidDate        string  `json:"paidDate,omitempty"`
	PaymentMethod   string  `json:"paymentMethod,omitempty"`
	ReferenceNumber string  `json:"referenceNumber,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func (f CashflowForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	if f.Type == TypeOwnerInvestment && f.Owner <= 0 {
		return fmt.Errorf("owner is required for %s entries", TypeOwnerInvestment)
	}
	if !CategoryAllowed(f.Type, f.Category) {
		return fmt.Errorf("category %q is not valid for type %q", f.Category, f.Type)
	}
	return nil
}

// ListFilter narrows the cashflow listing. Zero values mean "no
// constraint"; IsPaid uses a pointer so false is expressible.
type ListFilter struct {
	From     string
	To       string
	Type     string
	Category string
	OwnerID  int64
	IsPaid   *bool
}
