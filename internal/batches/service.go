package batches

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/meezan-erp/meezan-erp/internal/products"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// ProductLookup resolves a product id for estimation. The handler
// passes the product store's Get so previews share its cache entries.
type ProductLookup func(ctx context.Context, id int64) (*products.Product, error)

// ErrPartialCreate reports a composite create whose batch succeeded
// but at least one direct-cost line failed. The created batch is
// deleted best-effort before this is returned.
var ErrPartialCreate = errors.New("batch created but direct costs failed")

// Service owns the composite batch-creation flow.
type Service struct {
	logger *slog.Logger
	store  *Store
	cache  *query.Cache
}

func NewService(logger *slog.Logger, store *Store, cache *query.Cache) *Service {
	return &Service{logger: logger, store: store, cache: cache}
}

// Create performs the composite create: the batch first, then every
// direct-cost line in parallel. The calls are not atomic on the
// server, so a child failure triggers a compensating delete of the
// batch and the caller sees ErrPartialCreate instead of a silently
// half-created run.
func (s *Service) Create(ctx context.Context, req CreateBatchRequest) (Batch, error) {
	if err := req.Validate(); err != nil {
		return Batch{}, err
	}
	form := req.BatchForm
	if strings.TrimSpace(form.BatchNumber) == "" {
		form.BatchNumber = generateBatchNumber()
	}

	created, err := s.store.createBatch(ctx, form)
	if err != nil {
		return Batch{}, err
	}

	if len(req.DirectCosts) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, line := range req.DirectCosts {
			line := line
			line.Batch = created.ID
			g.Go(func() error {
				_, err := s.store.createDirectCost(gctx, line)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			if delErr := s.store.deleteBatch(context.WithoutCancel(ctx), created.ID); delErr != nil {
				s.logger.Error("compensating batch delete failed",
					slog.Int64("batch", created.ID), slog.Any("error", delErr))
			}
			return Batch{}, fmt.Errorf("%w: %w", ErrPartialCreate, err)
		}
	}

	s.cache.ApplyMutation(query.MutationBatchCreate)
	return created, nil
}

// Preview recomputes the derived state for the in-progress batch form.
func (s *Service) Preview(ctx context.Context, req PreviewRequest, productLookup ProductLookup) (Preview, error) {
	var preview Preview
	if req.Product > 0 && productLookup != nil {
		p, err := productLookup(ctx, req.Product)
		if err != nil {
			return Preview{}, err
		}
		preview.EstimatedCost = EstimatedCost(p, req.PlannedQuantity)
	}
	preview.LineTotals = make([]float64, len(req.DirectCosts))
	for i, line := range req.DirectCosts {
		preview.LineTotals[i] = LineTotal(line.Quantity, line.UnitCost)
	}
	preview.GrandTotal = GrandTotal(req.DirectCosts)
	return preview, nil
}

func generateBatchNumber() string {
	return "B-" + strings.ToUpper(uuid.NewString()[:8])
}
