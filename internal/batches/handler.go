package batches

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
	"github.com/meezan-erp/meezan-erp/internal/i18n"
	"github.com/meezan-erp/meezan-erp/internal/products"
)

type Handler struct {
	logger       *slog.Logger
	store        *Store
	service      *Service
	productStore *products.Store
}

func NewHandler(logger *slog.Logger, store *Store, service *Service, productStore *products.Store) *Handler {
	return &Handler{logger: logger, store: store, service: service, productStore: productStore}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Show)
	r.Post("/", h.Create)
	r.Post("/preview", h.Preview)
	r.Post("/{id}/calculate-costs", h.CalculateCosts)
	r.Post("/{id}/complete", h.Complete)
	r.Put("/{documentId}/status", h.UpdateStatus)
}

// BatchRow is the list view model: the batch plus the inline status
// editor options and a formatted unit cost.
type BatchRow struct {
	Batch
	StatusOptions      []string `json:"statusOptions"`
	CostPerUnitDisplay string   `json:"costPerUnitDisplay"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list batches", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := items[:0:0]
		for _, b := range items {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		items = filtered
	}
	locale := i18n.LocaleFromContext(r.Context())
	rows := make([]BatchRow, len(items))
	for i, b := range items {
		rows[i] = BatchRow{
			Batch:              b,
			StatusOptions:      StatusOptions(b.Status),
			CostPerUnitDisplay: i18n.FormatCurrency(locale, b.CostPerUnit),
		}
	}
	httpx.Data(w, http.StatusOK, rows)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid batch id")
		return
	}
	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get batch", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBatchRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrPartialCreate) {
			h.logger.Error("composite batch create rolled back", slog.Any("error", err))
			httpx.Problem(w, http.StatusBadGateway, "Partial Create", err.Error())
			return
		}
		h.logger.Error("create batch", slog.Any("error", err))
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
	preview, err := h.service.Preview(r.Context(), req, h.lookupProduct)
	if err != nil {
		h.logger.Error("batch preview", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, preview)
}

func (h *Handler) CalculateCosts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid batch id")
		return
	}
	updated, err := h.store.CalculateCosts(r.Context(), id)
	if err != nil {
		h.logger.Error("calculate batch costs", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid batch id")
		return
	}
	updated, err := h.store.Complete(r.Context(), id)
	if err != nil {
		h.logger.Error("complete batch", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, "documentId")
	var form StatusUpdateForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid body")
		return
	}
	if err := form.Validate(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	updated, err := h.store.UpdateStatus(r.Context(), documentID, form.Status)
	if err != nil {
		h.logger.Error("update batch status", slog.Any("error", err), slog.String("documentId", documentID))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) lookupProduct(ctx context.Context, id int64) (*products.Product, error) {
	p, err := h.productStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
