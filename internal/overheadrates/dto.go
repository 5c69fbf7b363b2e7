package overheadrates

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type RateForm struct {
	Name            string  `json:"name" validate:"required"`
	RateType        string  `json:"rateType" validate:"required,oneof=high medium low standard"`
	RatePerUnit     float64 `json:"ratePerUnit" validate:"gte=0"`
	RatePerHour     float64 `json:"ratePerHour" validate:"gte=0"`
	ApplicableStage string  `json:"applicableStage" validate:"required,oneof=launch growth maturity all"`
	EffectiveFrom   string  `json:"effectiveFrom" validate:"required"`
	EffectiveTo     string  `json:"effectiveTo,omitempty"`
	IsActive        bool    `json:"isActive"`
	Description     string  `json:"description,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

func (f RateForm) Validate() error {
	return validate.Struct(f)
}
