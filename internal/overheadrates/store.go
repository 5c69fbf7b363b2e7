package overheadrates

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the overhead-rate resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func listParams() *strapi.Params {
	return strapi.NewParams().Sort("effectiveFrom:desc")
}

func (s *Store) List(ctx context.Context) ([]OverheadRate, error) {
	params := listParams()
	key := query.Key(query.KeyOverheadRates, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[OverheadRate](ctx, s.client, "/overhead-rates", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]OverheadRate), nil
}

func (s *Store) Create(ctx context.Context, form RateForm) (OverheadRate, error) {
	created, err := strapi.Create[OverheadRate](ctx, s.client, "/overhead-rates", form)
	if err != nil {
		return OverheadRate{}, err
	}
	s.cache.ApplyMutation(query.MutationOverheadRateCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form RateForm) (OverheadRate, error) {
	updated, err := strapi.Update[OverheadRate](ctx, s.client, "/overhead-rates/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return OverheadRate{}, err
	}
	s.cache.ApplyMutation(query.MutationOverheadRateUpdate)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, "/overhead-rates/"+strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.cache.ApplyMutation(query.MutationOverheadRateDelete)
	return nil
}
