package inventory

import (
	"context"
	"sort"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the inventory resource to the query cache. Inventory is
// read-only from here; stock moves through batch completion and sales.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func listParams() *strapi.Params {
	return strapi.NewParams().Populate("product", "batch")
}

func (s *Store) List(ctx context.Context) ([]Item, error) {
	params := listParams()
	key := query.Key(query.KeyInventory, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Item](ctx, s.client, "/inventories", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Item), nil
}

// LowStock filters to items at or below the threshold, lowest first.
func (s *Store) LowStock(ctx context.Context, threshold float64) ([]Item, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]Item, 0)
	for _, it := range all {
		if it.QuantityOnHand <= threshold {
			low = append(low, it)
		}
	}
	sort.Slice(low, func(i, j int) bool {
		return low[i].QuantityOnHand < low[j].QuantityOnHand
	})
	return low, nil
}
