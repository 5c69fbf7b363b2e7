package products

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

func newTestHandler(t *testing.T, upstream http.Handler) (http.Handler, func()) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	store := NewStore(strapi.NewClient(srv.URL), query.New(time.Minute))
	h := NewHandler(slog.Default(), store)
	r := chi.NewRouter()
	r.Route("/products", h.MountRoutes)
	return r, srv.Close
}

func TestListReturnsEnvelopedProducts(t *testing.T) {
	router, cleanup := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id": 1, "name": "soap", "sku": "SO-1", "category": "home"}]}`))
	}))
	defer cleanup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"soap"`)
}

func TestCreateValidatesBeforeRemoteCall(t *testing.T) {
	upstreamCalled := false
	router, cleanup := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	}))
	defer cleanup()

	body := strings.NewReader(`{"name": "", "sku": "", "category": "home", "lifecycleStage": "launch"}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, upstreamCalled, "validation failure must block the network call")
}

func TestCreateSubmitsValidForm(t *testing.T) {
	router, cleanup := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": 4, "name": "candle", "sku": "CA-1"}}`))
	}))
	defer cleanup()

	body := strings.NewReader(`{
		"name": "candle",
		"sku": "CA-1",
		"category": "home",
		"lifecycleStage": "launch",
		"standardMaterialCost": 2,
		"standardLaborCost": 1.5,
		"standardOverheadCost": 0.5,
		"isActive": true
	}`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products/", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"candle"`)
}

func TestShowPropagatesUpstreamNotFound(t *testing.T) {
	router, cleanup := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"status": 404, "message": "Not Found"}}`))
	}))
	defer cleanup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/99", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowRejectsNonNumericID(t *testing.T) {
	router, cleanup := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer cleanup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
