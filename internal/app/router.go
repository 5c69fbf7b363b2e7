package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/budgets"
	"github.com/meezan-erp/meezan-erp/internal/cashflows"
	"github.com/meezan-erp/meezan-erp/internal/dashboard"
	"github.com/meezan-erp/meezan-erp/internal/inventory"
	"github.com/meezan-erp/meezan-erp/internal/overheadrates"
	"github.com/meezan-erp/meezan-erp/internal/owners"
	"github.com/meezan-erp/meezan-erp/internal/products"
	"github.com/meezan-erp/meezan-erp/internal/sales"
	"github.com/meezan-erp/meezan-erp/internal/zakat"
	"github.com/meezan-erp/meezan-erp/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	ProductsHandler      *products.Handler
	BatchesHandler       *batches.Handler
	SalesHandler         *sales.Handler
	CashflowsHandler     *cashflows.Handler
	OwnersHandler        *owners.Handler
	OverheadRatesHandler *overheadrates.Handler
	BudgetsHandler       *budgets.Handler
	ZakatHandler         *zakat.Handler
	InventoryHandler     *inventory.Handler
	DashboardHandler     *dashboard.Handler
	JobHandler           *jobs.Handler
}

// NewRouter constructs the chi.Router with Meezan defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/products", params.ProductsHandler.MountRoutes)
	r.Route("/batches", params.BatchesHandler.MountRoutes)
	r.Route("/sales", params.SalesHandler.MountRoutes)
	r.Route("/cashflows", params.CashflowsHandler.MountRoutes)
	r.Route("/owners", params.OwnersHandler.MountRoutes)
	r.Route("/overhead-rates", params.OverheadRatesHandler.MountRoutes)
	r.Route("/budget-plans", params.BudgetsHandler.MountRoutes)
	r.Route("/zakat-sadaqats", params.ZakatHandler.MountRoutes)
	r.Route("/inventories", params.InventoryHandler.MountRoutes)
	r.Route("/dashboard", params.DashboardHandler.MountRoutes)
	r.Route("/investment-dashboard", params.OwnersHandler.MountDashboard)
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}

	return r
}
