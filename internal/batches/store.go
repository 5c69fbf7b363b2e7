package batches

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the batch resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func listParams() *strapi.Params {
	return strapi.NewParams().Populate("product", "directCosts")
}

func (s *Store) List(ctx context.Context) ([]Batch, error) {
	params := listParams()
	key := query.Key(query.KeyBatches, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Batch](ctx, s.client, "/batches", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Batch), nil
}

func (s *Store) Get(ctx context.Context, id int64) (Batch, error) {
	key := query.DetailKey(query.KeyBatches, id)
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return strapi.GetOne[Batch](ctx, s.client, "/batches/"+strconv.FormatInt(id, 10), listParams())
	})
	if err != nil {
		return Batch{}, err
	}
	return v.(Batch), nil
}

// createBatch performs the bare create call. Invalidation is owned by
// the service, which decides whether the composite action succeeded.
func (s *Store) createBatch(ctx context.Context, form BatchForm) (Batch, error) {
	return strapi.Create[Batch](ctx, s.client, "/batches", form)
}

// createDirectCost attaches one cost line to an existing batch.
func (s *Store) createDirectCost(ctx context.Context, form DirectCostForm) (DirectCost, error) {
	return strapi.Create[DirectCost](ctx, s.client, "/direct-costs", form)
}

// deleteBatch is the compensation path for a failed composite create.
func (s *Store) deleteBatch(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/batches/"+strconv.FormatInt(id, 10))
}

// CalculateCosts triggers the server-side cost roll-up.
func (s *Store) CalculateCosts(ctx context.Context, id int64) (Batch, error) {
	updated, err := strapi.Action[Batch](ctx, s.client, "/batches/"+strconv.FormatInt(id, 10)+"/calculate-costs")
	if err != nil {
		return Batch{}, err
	}
	s.cache.ApplyMutation(query.MutationBatchCalculateCosts)
	return updated, nil
}

// Complete moves a quality_check batch to completed and books its
// output into inventory, both on the server.
func (s *Store) Complete(ctx context.Context, id int64) (Batch, error) {
	updated, err := strapi.Action[Batch](ctx, s.client, "/batches/"+strconv.FormatInt(id, 10)+"/complete")
	if err != nil {
		return Batch{}, err
	}
	s.cache.ApplyMutation(query.MutationBatchComplete)
	return updated, nil
}

// UpdateStatus is the documentId update variant used by the inline
// status editor. Last writer wins: the content API exposes no version
// token, so a concurrent edit is silently overwritten.
func (s *Store) UpdateStatus(ctx context.Context, documentID, status string) (Batch, error) {
	updated, err := strapi.Update[Batch](ctx, s.client, "/batches/"+documentID, map[string]string{"status": status})
	if err != nil {
		return Batch{}, err
	}
	s.cache.ApplyMutation(query.MutationBatchUpdateStatus)
	return updated, nil
}
