package sales

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/meezan-erp/meezan-erp/internal/batches"
)

// BatchLister supplies the batch pool the new-sale form chooses from.
type BatchLister interface {
	List(ctx context.Context) ([]batches.Batch, error)
}

// Service owns the sale form flow: eligible-batch filtering and the
// derived figures recorded with each sale.
type Service struct {
	logger  *slog.Logger
	store   *Store
	batches BatchLister
}

func NewService(logger *slog.Logger, store *Store, batchLister BatchLister) *Service {
	return &Service{logger: logger, store: store, batches: batchLister}
}

// Options is the new-sale form's dependent state for a chosen product.
type Options struct {
	Batches []batches.Batch `json:"batches"`
	// SelectionReset is set when the previously selected batch does not
	// belong to the filtered set, so the form must clear it.
	SelectionReset bool  `json:"selectionReset"`
	SelectedBatch  int64 `json:"selectedBatch"`
}

// OptionsFor filters the batch pool to completed batches of the chosen
// product with a known unit cost. A previously selected batch that
// falls outside the filtered set is reported as reset.
func (s *Service) OptionsFor(ctx context.Context, productID, selectedBatch int64) (Options, error) {
	pool, err := s.batches.List(ctx)
	if err != nil {
		return Options{}, err
	}
	opts := Options{Batches: []batches.Batch{}}
	for _, b := range pool {
		if b.Product.ID != productID {
			continue
		}
		if b.Status != batches.StatusCompleted || b.CostPerUnit <= 0 {
			continue
		}
		opts.Batches = append(opts.Batches, b)
	}
	if selectedBatch > 0 {
		for _, b := range opts.Batches {
			if b.ID == selectedBatch {
				opts.SelectedBatch = selectedBatch
				return opts, nil
			}
		}
		opts.SelectionReset = true
	}
	return opts, nil
}

// Create validates the form, recomputes the derived figures server-side
// and submits the sale. Client-supplied derived fields are overwritten.
func (s *Service) Create(ctx context.Context, form SaleForm) (Sale, error) {
	if err := form.Validate(); err != nil {
		return Sale{}, err
	}
	if strings.TrimSpace(form.InvoiceNumber) == "" {
		form.InvoiceNumber = generateInvoiceNumber()
	}
	costPerUnit, err := s.resolveCostPerUnit(ctx, form.Batch)
	if err != nil {
		return Sale{}, err
	}
	form.CostPerUnit = costPerUnit
	applyDerived(&form, Calculate(form.Quantity, form.SellingPricePerUnit, costPerUnit, form.AmountPaid))
	return s.store.Create(ctx, form)
}

// Update recomputes the derived figures the same way Create does.
func (s *Service) Update(ctx context.Context, id int64, form SaleForm) (Sale, error) {
	if err := form.Validate(); err != nil {
		return Sale{}, err
	}
	costPerUnit, err := s.resolveCostPerUnit(ctx, form.Batch)
	if err != nil {
		return Sale{}, err
	}
	form.CostPerUnit = costPerUnit
	applyDerived(&form, Calculate(form.Quantity, form.SellingPricePerUnit, costPerUnit, form.AmountPaid))
	return s.store.Update(ctx, id, form)
}

// Preview recomputes the derived state for the in-progress sale form.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (Derived, error) {
	costPerUnit, err := s.resolveCostPerUnit(ctx, req.Batch)
	if err != nil {
		return Derived{}, err
	}
	return Calculate(req.Quantity, req.SellingPricePerUnit, costPerUnit, req.AmountPaid), nil
}

// resolveCostPerUnit looks the unit cost up from the selected batch.
// No batch selected means zero COGS.
func (s *Service) resolveCostPerUnit(ctx context.Context, batchID int64) (float64, error) {
	if batchID <= 0 {
		return 0, nil
	}
	pool, err := s.batches.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, b := range pool {
		if b.ID == batchID {
			return b.CostPerUnit, nil
		}
	}
	return 0, nil
}

func applyDerived(form *SaleForm, d Derived) {
	form.TotalRevenue = d.TotalRevenue
	form.TotalCOGS = d.TotalCOGS
	form.GrossProfit = d.GrossProfit
	form.GrossMarginPercent = d.GrossMarginPercent
	form.AmountDue = d.AmountDue
}

func generateInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
