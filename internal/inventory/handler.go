package inventory

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
	"github.com/meezan-erp/meezan-erp/internal/i18n"
)

type Handler struct {
	logger            *slog.Logger
	store             *Store
	lowStockThreshold float64
}

func NewHandler(logger *slog.Logger, store *Store, lowStockThreshold float64) *Handler {
	return &Handler{logger: logger, store: store, lowStockThreshold: lowStockThreshold}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/low-stock", h.LowStock)
}

// ItemRow is the list view model with formatted valuation columns.
type ItemRow struct {
	Item
	TotalValueDisplay string `json:"totalValueDisplay"`
	LowStock          bool   `json:"lowStock"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	locale := i18n.LocaleFromContext(r.Context())
	rows := make([]ItemRow, len(items))
	for i, it := range items {
		rows[i] = ItemRow{
			Item:              it,
			TotalValueDisplay: i18n.FormatCurrency(locale, it.TotalValue),
			LowStock:          it.QuantityOnHand <= h.lowStockThreshold,
		}
	}
	httpx.Data(w, http.StatusOK, rows)
}

// LowStock lists items at or below the threshold; ?threshold=N
// overrides the configured default.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := h.lowStockThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid threshold")
			return
		}
		threshold = parsed
	}
	items, err := h.store.LowStock(r.Context(), threshold)
	if err != nil {
		h.logger.Error("low stock", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, items)
}
