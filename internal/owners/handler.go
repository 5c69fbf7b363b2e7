package owners

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meezan-erp/meezan-erp/internal/httpx"
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
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// MountDashboard mounts the investment dashboard separately so the
// router can place it beside the main dashboard.
func (h *Handler) MountDashboard(r chi.Router) {
	r.Get("/", h.InvestmentDashboard)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		items []Owner
		err   error
	)
	if r.URL.Query().Get("active") == "true" {
		items, err = h.store.ListActive(r.Context())
	} else {
		items, err = h.store.List(r.Context())
	}
	if err != nil {
		h.logger.Error("list owners", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var form OwnerForm
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
		h.logger.Error("create owner", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid owner id")
		return
	}
	var form OwnerForm
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
		h.logger.Error("update owner", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid owner id")
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete owner", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) InvestmentDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.service.InvestmentDashboard(r.Context())
	if err != nil {
		h.logger.Error("investment dashboard", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.Data(w, http.StatusOK, d)
}
