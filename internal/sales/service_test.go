package sales

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

type staticBatches struct {
	pool []batches.Batch
}

func (s staticBatches) List(ctx context.Context) ([]batches.Batch, error) {
	return s.pool, nil
}

func TestOptionsFilterEligibleBatches(t *testing.T) {
	pool := []batches.Batch{}
	mk := func(id, productID int64, status string, cpu float64) batches.Batch {
		var b batches.Batch
		b.ID = id
		b.Product.ID = productID
		b.Status = status
		b.CostPerUnit = cpu
		return b
	}
	pool = append(pool,
		mk(1, 7, batches.StatusCompleted, 12.5), // eligible
		mk(2, 7, batches.StatusCompleted, 0),    // no unit cost
		mk(3, 7, batches.StatusInProduction, 9), // not completed
		mk(4, 8, batches.StatusCompleted, 11),   // other product
	)
	svc := NewService(slog.Default(), nil, staticBatches{pool: pool})

	opts, err := svc.OptionsFor(context.Background(), 7, 0)
	require.NoError(t, err)
	require.Len(t, opts.Batches, 1)
	require.Equal(t, int64(1), opts.Batches[0].ID)
	require.False(t, opts.SelectionReset)
}

func TestOptionsResetsStaleSelection(t *testing.T) {
	var eligible, other batches.Batch
	eligible.ID = 1
	eligible.Product.ID = 7
	eligible.Status = batches.StatusCompleted
	eligible.CostPerUnit = 10
	other.ID = 4
	other.Product.ID = 8
	other.Status = batches.StatusCompleted
	other.CostPerUnit = 11

	svc := NewService(slog.Default(), nil, staticBatches{pool: []batches.Batch{eligible, other}})

	// Previously selected batch 4 belongs to another product: the form
	// must clear it after the product change.
	opts, err := svc.OptionsFor(context.Background(), 7, 4)
	require.NoError(t, err)
	require.True(t, opts.SelectionReset)
	require.Zero(t, opts.SelectedBatch)

	// A selection still inside the filtered set survives.
	opts, err = svc.OptionsFor(context.Background(), 7, 1)
	require.NoError(t, err)
	require.False(t, opts.SelectionReset)
	require.Equal(t, int64(1), opts.SelectedBatch)
}

func TestCreateRecomputesDerivedFiguresServerSide(t *testing.T) {
	var captured SaleForm
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sales", r.URL.Path)
		var body struct {
			Data SaleForm `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		captured = body.Data
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": 31}}`))
	}))
	defer srv.Close()

	var batch batches.Batch
	batch.ID = 5
	batch.Product.ID = 7
	batch.Status = batches.StatusCompleted
	batch.CostPerUnit = 15

	cache := query.New(time.Minute)
	store := NewStore(strapi.NewClient(srv.URL), cache)
	svc := NewService(slog.Default(), store, staticBatches{pool: []batches.Batch{batch}})

	created, err := svc.Create(context.Background(), SaleForm{
		SaleDate:            "2026-08-01",
		Product:             7,
		Batch:               5,
		Quantity:            10,
		SellingPricePerUnit: 25,
		PaymentMethod:       "cash",
		PaymentStatus:       PaymentStatusPartial,
		AmountPaid:          100,
		// Client-supplied derived values must be overwritten.
		TotalRevenue: 9999,
	})
	require.NoError(t, err)
	require.Equal(t, int64(31), created.ID)

	require.Equal(t, 250.0, captured.TotalRevenue)
	require.Equal(t, 15.0, captured.CostPerUnit)
	require.Equal(t, 150.0, captured.TotalCOGS)
	require.Equal(t, 100.0, captured.GrossProfit)
	require.Equal(t, 40.0, captured.GrossMarginPercent)
	require.Equal(t, 150.0, captured.AmountDue)
	require.NotEmpty(t, captured.InvoiceNumber)

	// sales.create invalidates sales, inventory and dashboard.
	for _, key := range []string{query.KeySales, query.KeyInventory, query.KeyDashboard} {
		require.Contains(t, query.AffectedKeys(query.MutationSaleCreate), key)
	}
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	svc := NewService(slog.Default(), nil, staticBatches{})
	_, err := svc.Create(context.Background(), SaleForm{Quantity: 0})
	require.Error(t, err)
}

func TestPreviewWithoutBatch(t *testing.T) {
	svc := NewService(slog.Default(), nil, staticBatches{})
	d, err := svc.Preview(context.Background(), PreviewRequest{Quantity: 4, SellingPricePerUnit: 5})
	require.NoError(t, err)
	require.Equal(t, 20.0, d.TotalRevenue)
	require.Zero(t, d.TotalCOGS)
}
