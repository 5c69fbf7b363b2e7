package batches

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// The content API exposes no version token on batches, so concurrent
// status edits resolve last-writer-wins.
func TestUpdateStatusLastWriterWins(t *testing.T) {
	current := StatusPlanned
	var puts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/batches/doc-7", r.URL.Path)

		var body struct {
			Data struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		current = body.Data.Status
		puts = append(puts, current)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": 7, "documentId": "doc-7", "batchNumber": "B-1", "status": "` + current + `"}}`))
	}))
	defer srv.Close()

	cache := query.New(time.Minute)
	store := NewStore(strapi.NewClient(srv.URL), cache)

	seed := func() {
		_, err := cache.Read(context.Background(), query.Key(query.KeyBatches, ""), func(ctx context.Context) (any, error) {
			return "listing", nil
		})
		require.NoError(t, err)
	}

	seed()
	first, err := store.UpdateStatus(context.Background(), "doc-7", StatusInProduction)
	require.NoError(t, err)
	require.Equal(t, StatusInProduction, first.Status)
	require.True(t, cache.IsStale(query.Key(query.KeyBatches, "")), "status change must stale batch reads")

	seed()
	second, err := store.UpdateStatus(context.Background(), "doc-7", StatusQualityCheck)
	require.NoError(t, err)
	require.Equal(t, StatusQualityCheck, second.Status)
	require.True(t, cache.IsStale(query.Key(query.KeyBatches, "")))

	require.Equal(t, []string{StatusInProduction, StatusQualityCheck}, puts)
	require.Equal(t, StatusQualityCheck, current, "second writer's value stands")
}
