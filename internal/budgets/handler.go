package budgets

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
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
	r.Get("/{id}", h.Show)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Get("/{id}/calculate-variances", h.CalculateVariances)
}

// PlanView pairs a plan with its derived per-line variance report.
type PlanView struct {
	BudgetPlan
	Variances []Variance `json:"variances"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list budget plans", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	views := make([]PlanView, len(items))
	for i, p := range items {
		views[i] = PlanView{BudgetPlan: p, Variances: Variances(p)}
	}
	httpx.Data(w, http.StatusOK, views)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid plan id")
		return
	}
	plan, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get budget plan", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, PlanView{BudgetPlan: plan, Variances: Variances(plan)})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form BudgetForm
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
		h.logger.Error("create budget plan", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid plan id")
		return
	}
	var form BudgetForm
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
		h.logger.Error("update budget plan", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) CalculateVariances(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid plan id")
		return
	}
	refreshed, err := h.store.CalculateVariances(r.Context(), id)
	if err != nil {
		h.logger.Error("calculate budget variances", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, PlanView{BudgetPlan: refreshed, Variances: Variances(refreshed)})
}
