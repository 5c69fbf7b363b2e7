package zakat

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
	"github.com/meezan-erp/meezan-erp/internal/i18n"
)

type Handler struct {
	logger *slog.Logger
	store  *Store
}

func NewHandler(logger *slog.Logger, store *Store) *Handler {
	return &Handler{logger: logger, store: store}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/calculate", h.Calculate)
}

// RecordRow is the list view model with the obligation flag and
// formatted amounts.
type RecordRow struct {
	Record
	Obligatory    bool   `json:"obligatory"`
	AmountDisplay string `json:"amountDisplay"`
	DateDisplay   string `json:"dateDisplay"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list zakat records", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	locale := i18n.LocaleFromContext(r.Context())
	rows := make([]RecordRow, len(items))
	for i, rec := range items {
		rows[i] = RecordRow{
			Record:        rec,
			Obligatory:    rec.Obligatory(),
			AmountDisplay: i18n.FormatCurrency(locale, rec.CalculatedAmount),
			DateDisplay:   i18n.FormatDateString(locale, rec.CalculationDate),
		}
	}
	httpx.Data(w, http.StatusOK, rows)
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	created, err := h.store.Calculate(r.Context())
	if err != nil {
		h.logger.Error("calculate zakat", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, created)
}
