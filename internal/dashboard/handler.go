package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
	"github.com/meezan-erp/meezan-erp/internal/i18n"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/stats", h.Stats)
	r.Post("/refresh", h.Refresh)
}

// StatsView adds locale-formatted headline figures to the raw numbers.
type StatsView struct {
	Stats
	TotalRevenueDisplay string `json:"totalRevenueDisplay"`
	TotalCostsDisplay   string `json:"totalCostsDisplay"`
	GrossProfitDisplay  string `json:"grossProfitDisplay"`
	ProfitMarginDisplay string `json:"profitMarginDisplay"`
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("dashboard stats", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, h.view(r, stats))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Refresh(r.Context())
	if err != nil {
		h.logger.Error("dashboard refresh", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, h.view(r, stats))
}

func (h *Handler) view(r *http.Request, stats Stats) StatsView {
	locale := i18n.LocaleFromContext(r.Context())
	return StatsView{
		Stats:               stats,
		TotalRevenueDisplay: i18n.FormatCurrency(locale, stats.TotalRevenue),
		TotalCostsDisplay:   i18n.FormatCurrency(locale, stats.TotalCosts),
		GrossProfitDisplay:  i18n.FormatCurrency(locale, stats.GrossProfit),
		ProfitMarginDisplay: i18n.FormatPercent(stats.ProfitMargin),
	}
}
