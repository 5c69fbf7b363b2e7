package cashflows

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

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
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Put("/{documentId}/mark-paid", h.MarkPaid)
}

// CashflowRow is the list view model with locale-formatted columns.
type CashflowRow struct {
	Cashflow
	AmountDisplay string `json:"amountDisplay"`
	DateDisplay   string `json:"dateDisplay"`
}

func filterFromQuery(q map[string][]string) ListFilter {
	get := func(k string) string {
		if v := q[k]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	f := ListFilter{
		From:     get("from"),
		To:       get("to"),
		Type:     get("type"),
		Category: get("category"),
	}
	if id, err := strconv.ParseInt(get("owner"), 10, 64); err == nil {
		f.OwnerID = id
	}
	if raw := get("isPaid"); raw != "" {
		paid := raw == "true"
		f.IsPaid = &paid
	}
	return f
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context(), filterFromQuery(r.URL.Query()))
	if err != nil {
		h.logger.Error("list cashflows", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	locale := i18n.LocaleFromContext(r.Context())
	rows := make([]CashflowRow, len(items))
	for i, cf := range items {
		rows[i] = CashflowRow{
			Cashflow:      cf,
			AmountDisplay: i18n.FormatCurrency(locale, cf.Amount),
			DateDisplay:   i18n.FormatDateString(locale, cf.TransactionDate),
		}
	}
	httpx.Data(w, http.StatusOK, rows)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form CashflowForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	if err := form.Validate(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	created, err := h.store.Create(r.Context(), form)
	if err != nil {
		h.logger.Error("create cashflow", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid cashflow id")
		return
	}
	var form CashflowForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	if err := form.Validate(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.store.Update(r.Context(), id, form)
	if err != nil {
		h.logger.Error("update cashflow", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid cashflow id")
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete cashflow", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentId")
	paidDate := time.Now().Format("2006-01-02")
	updated, err := h.store.MarkPaid(r.Context(), documentID, paidDate)
	if err != nil {
		h.logger.Error("mark cashflow paid", slog.Any("error", err), slog.String("documentId", documentID))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}
