package dashboard

import (
	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/inventory"
	"github.com/meezan-erp/meezan-erp/internal/sales"
)

// Stats is the pre-aggregated dashboard payload served by the content
// API's /dashboard/stats endpoint. It is the authoritative computation;
// nothing here is recomputed client-side.
type Stats struct {
	TotalRevenue  float64          `json:"totalRevenue"`
	TotalCosts    float64          `json:"totalCosts"`
	GrossProfit   float64          `json:"grossProfit"`
	ProfitMargin  float64          `json:"profitMargin"`
	RecentBatches []batches.Batch  `json:"recentBatches,omitempty"`
	RecentSales   []sales.Sale     `json:"recentSales,omitempty"`
	LowStockItems []inventory.Item `json:"lowStockItems,omitempty"`
}
