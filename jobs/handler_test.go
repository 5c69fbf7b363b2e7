package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

type stubEnqueuer struct {
	warmupScopes []string
	zakatReasons []string
	fail         bool
}

func (s *stubEnqueuer) EnqueueDashboardWarmup(ctx context.Context, scope string) (*asynq.TaskInfo, error) {
	if s.fail {
		return nil, errors.New("queue unavailable")
	}
	s.warmupScopes = append(s.warmupScopes, scope)
	return &asynq.TaskInfo{ID: "t-1", Queue: QueueDefault}, nil
}

func (s *stubEnqueuer) EnqueueZakatRecalculate(ctx context.Context, reason string) (*asynq.TaskInfo, error) {
	if s.fail {
		return nil, errors.New("queue unavailable")
	}
	s.zakatReasons = append(s.zakatReasons, reason)
	return &asynq.TaskInfo{ID: "t-2", Queue: QueueDefault}, nil
}

func newJobsRouter(enq Enqueuer) http.Handler {
	h := NewHandler(nil, enq, slog.Default())
	r := chi.NewRouter()
	r.Route("/jobs", h.MountRoutes)
	return r
}

func TestWarmupEnqueuesDefaultScope(t *testing.T) {
	enq := &stubEnqueuer{}
	router := newJobsRouter(enq)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/warmup", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"task":"t-1"`)
	require.Equal(t, []string{"stats"}, enq.warmupScopes)
}

func TestWarmupHonorsScopeParam(t *testing.T) {
	enq := &stubEnqueuer{}
	router := newJobsRouter(enq)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/warmup?scope=all", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, []string{"all"}, enq.warmupScopes)
}

func TestZakatRecalculateEnqueues(t *testing.T) {
	enq := &stubEnqueuer{}
	router := newJobsRouter(enq)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/zakat-recalculate?reason=year-end", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"task":"t-2"`)
	require.Equal(t, []string{"year-end"}, enq.zakatReasons)
}

func TestEnqueueFailureReturnsServiceUnavailable(t *testing.T) {
	router := newJobsRouter(&stubEnqueuer{fail: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/warmup", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSubmissionWithoutQueueReturnsServiceUnavailable(t *testing.T) {
	router := newJobsRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs/zakat-recalculate", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
