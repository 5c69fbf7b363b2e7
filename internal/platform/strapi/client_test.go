package strapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	Entity
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func TestGetListUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/widgets", r.URL.Path)
		require.Equal(t, "product,batch", r.URL.Query().Get("populate"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": 1, "documentId": "a1", "name": "first", "price": 10},
				{"id": 2, "documentId": "b2", "name": "second", "price": 20}
			],
			"meta": {"pagination": {"page": 1, "pageSize": 25, "pageCount": 1, "total": 2}}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, pg, err := GetList[widget](context.Background(), c, "/widgets", NewParams().Populate("product", "batch"))
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(1), items[0].ID)
	require.Equal(t, "a1", items[0].DocumentID)
	require.Equal(t, "second", items[1].Name)
	require.NotNil(t, pg)
	require.Equal(t, 2, pg.Total)
}

func TestCreateWrapsBodyInDataEnvelope(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": 7, "name": "made"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	created, err := Create[widget](context.Background(), c, "/widgets", map[string]any{"name": "made"})
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)

	data, ok := captured["data"].(map[string]any)
	require.True(t, ok, "write body must be wrapped as {data: fields}")
	require.Equal(t, "made", data["name"])
}

func TestNonSuccessSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": {"message": "batchNumber must be unique"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := GetOne[widget](context.Background(), c, "/widgets/1", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	require.Contains(t, apiErr.Body, "batchNumber must be unique")
}

func TestBearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data": {"id": 1}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("sekrit"))
	_, err := GetOne[widget](context.Background(), c, "/widgets/1", nil)
	require.NoError(t, err)
}

func TestActionDecodesEnvelopedAndBareResponses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"enveloped", `{"data": {"id": 3, "name": "done"}}`},
		{"bare", `{"id": 3, "name": "done"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			out, err := Action[widget](context.Background(), c, "/widgets/3/complete")
			require.NoError(t, err)
			require.Equal(t, int64(3), out.ID)
			require.Equal(t, "done", out.Name)
		})
	}
}

func TestDeletePropagatesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"status": 404}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Delete(context.Background(), "/widgets/9")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}
