package zakat

import (
	"context"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the zakat-sadaqat resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func listParams() *strapi.Params {
	return strapi.NewParams().Sort("calculationDate:desc")
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	params := listParams()
	key := query.Key(query.KeyZakat, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Record](ctx, s.client, "/zakat-sadaqats", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Record), nil
}

// Calculate triggers the server-side computation and returns the new
// snapshot.
func (s *Store) Calculate(ctx context.Context) (Record, error) {
	created, err := strapi.Action[Record](ctx, s.client, "/zakat-sadaqats/calculate")
	if err != nil {
		return Record{}, err
	}
	s.cache.ApplyMutation(query.MutationZakatCalculate)
	return created, nil
}
