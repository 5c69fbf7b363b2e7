package sales

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
	"github.com/meezan-erp/meezan-erp/internal/i18n"
)

type Handler struct {
	logger  *slog.Logger
	store   *Store
	service *Service
}

func NewHandler(logger *slog.Logger, store *Store, service *Service) *Handler {
	return &Handler{logger: logger, store: store, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	r.Get("/options", h.Options)
	r.Post("/", h.Create)
	r.Post("/preview", h.Preview)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// SaleRow is the list view model with locale-formatted money columns.
type SaleRow struct {
	Sale
	TotalRevenueDisplay string `json:"totalRevenueDisplay"`
	GrossProfitDisplay  string `json:"grossProfitDisplay"`
	SaleDateDisplay     string `json:"saleDateDisplay"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list sales", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	locale := i18n.LocaleFromContext(r.Context())
	rows := make([]SaleRow, len(items))
	for i, s := range items {
		rows[i] = SaleRow{
			Sale:                s,
			TotalRevenueDisplay: i18n.FormatCurrency(locale, s.TotalRevenue),
			GrossProfitDisplay:  i18n.FormatCurrency(locale, s.GrossProfit),
			SaleDateDisplay:     i18n.FormatDateString(locale, s.SaleDate),
		}
	}
	httpx.Data(w, http.StatusOK, rows)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid sale id")
		return
	}
	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get sale", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, item)
}

// Options answers the new-sale form's dependent batch dropdown:
// ?product=ID&batch=ID (batch is the current selection, may be 0).
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(r.URL.Query().Get("product"), 10, 64)
	if err != nil || productID <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid product id")
		return
	}
	selected, _ := strconv.ParseInt(r.URL.Query().Get("batch"), 10, 64)
	opts, err := h.service.OptionsFor(r.Context(), productID, selected)
	if err != nil {
		h.logger.Error("sale options", slog.Any("error", err), slog.Int64("product", productID))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, opts)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form SaleForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	created, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.logger.Error("create sale", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, created)
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	derived, err := h.service.Preview(r.Context(), req)
	if err != nil {
		h.logger.Error("sale preview", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, derived)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid sale id")
		return
	}
	var form SaleForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	updated, err := h.service.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Error("update sale", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid sale id")
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete sale", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
