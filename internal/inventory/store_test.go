package inventory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventories", r.URL.Path)
		require.Equal(t, "product,batch", r.URL.Query().Get("populate"))
		_, _ = w.Write([]byte(`{"data": [
			{"id": 1, "product": 7, "quantityOnHand": 25, "unitCost": 4, "totalValue": 100},
			{"id": 2, "product": 8, "quantityOnHand": 3, "unitCost": 10, "totalValue": 30},
			{"id": 3, "product": 9, "quantityOnHand": 8, "unitCost": 2, "totalValue": 16}
		]}`))
	}))
	return NewStore(strapi.NewClient(srv.URL), query.New(time.Minute)), srv.Close
}

func TestListPopulatesRelations(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	items, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, int64(7), items[0].Product.ID)
	require.False(t, items[0].Product.Populated())
}

func TestLowStockFiltersAndSortsAscending(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	low, err := store.LowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, low, 2)
	require.Equal(t, int64(2), low[0].ID, "lowest quantity first")
	require.Equal(t, int64(3), low[1].ID)
}
