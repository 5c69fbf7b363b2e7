package owners

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// OwnerForm is the write payload. TotalInvestment is backend-owned and
// not accepted here.
type OwnerForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	JoinDate string `json:"joinDate,omitempty"`
	IsActive bool   `json:"isActive"`
	Notes    string `json:"notes,omitempty"`
}

func (f OwnerForm) Validate() error {
	return validate.Struct(f)
}
