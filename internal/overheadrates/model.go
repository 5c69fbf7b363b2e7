package overheadrates

import "github.com/meezan-erp/meezan-erp/internal/platform/strapi"

// Rate tiers.
const (
	RateTypeHigh     = "high"
	RateTypeMedium   = "medium"
	RateTypeLow      = "low"
	RateTypeStandard = "standard"
)

// OverheadRate is an overhead charge applied to production in a
// lifecycle stage, within an effective date range. Both a per-unit and
// a per-hour rate are carried; which one applies depends on how the
// batch is costed server-side.
type OverheadRate struct {
	strapi.Entity
	Name            string  `json:"name"`
	RateType        string  `json:"rateType"`
	RatePerUnit     float64 `json:"ratePerUnit"`
	RatePerHour     float64 `json:"ratePerHour"`
	ApplicableStage string  `json:"applicableStage"`
	EffectiveFrom   string  `json:"effectiveFrom"`
	EffectiveTo     string  `json:"effectiveTo,omitempty"`
	IsActive        bool    `json:"isActive"`
	Description     string  `json:"description,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}
