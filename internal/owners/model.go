package owners

import "github.com/meezan-erp/meezan-erp/internal/platform/strapi"

// Owner is a capital contributor. TotalInvestment is a running total
// maintained by the backend from owner_investment cashflows.
type Owner struct {
	strapi.Entity
	Name            string  `json:"name"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	TotalInvestment float64 `json:"totalInvestment"`
	JoinDate        string  `json:"joinDate,omitempty"`
	IsActive        bool    `json:"isActive"`
	Notes           string  `json:"notes,omitempty"`
}
