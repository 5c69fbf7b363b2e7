package owners

import (
	"context"
	"log/slog"
)

// ExpenseSummary is the cost side of the investment dashboard,
// supplied by the cashflow store.
type ExpenseSummary struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory"`
}

// ExpenseSource supplies expense totals without this package depending
// on the cashflow resource.
type ExpenseSource interface {
	ExpenseSummary(ctx context.Context) (ExpenseSummary, error)
}

// InvestmentDashboard is assembled client-side from active owners and
// expense cashflows. There is no server aggregate for it.
type InvestmentDashboard struct {
	TotalCapital     float64            `json:"totalCapital"`
	TotalCosts       float64            `json:"totalCosts"`
	RemainingCapital float64            `json:"remainingCapital"`
	CostsByCategory  map[string]float64 `json:"costsByCategory"`
	Allocations      []Allocation       `json:"allocations"`
}

// Service composes the investment dashboard from the cached owner and
// expense reads.
type Service struct {
	logger   *slog.Logger
	store    *Store
	expenses ExpenseSource
}

func NewService(logger *slog.Logger, store *Store, expenses ExpenseSource) *Service {
	return &Service{logger: logger, store: store, expenses: expenses}
}

// InvestmentDashboard aggregates active owners against incurred costs.
func (s *Service) InvestmentDashboard(ctx context.Context) (InvestmentDashboard, error) {
	active, err := s.store.ListActive(ctx)
	if err != nil {
		return InvestmentDashboard{}, err
	}
	summary, err := s.expenses.ExpenseSummary(ctx)
	if err != nil {
		return InvestmentDashboard{}, err
	}
	d := InvestmentDashboard{
		TotalCapital:    TotalCapital(active),
		TotalCosts:      summary.Total,
		CostsByCategory: summary.ByCategory,
		Allocations:     Allocate(active, summary.Total),
	}
	d.RemainingCapital = d.TotalCapital - d.TotalCosts
	return d, nil
}
