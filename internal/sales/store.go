package sales

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the sale resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func listParams() *strapi.Params {
	return strapi.NewParams().Populate("product", "batch").Sort("saleDate:desc")
}

func (s *Store) List(ctx context.Context) ([]Sale, error) {
	params := listParams()
	key := query.Key(query.KeySales, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Sale](ctx, s.client, "/sales", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Sale), nil
}

func (s *Store) Get(ctx context.Context, id int64) (Sale, error) {
	key := query.DetailKey(query.KeySales, id)
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return strapi.GetOne[Sale](ctx, s.client, "/sales/"+strconv.FormatInt(id, 10), listParams())
	})
	if err != nil {
		return Sale{}, err
	}
	return v.(Sale), nil
}

func (s *Store) Create(ctx context.Context, form SaleForm) (Sale, error) {
	created, err := strapi.Create[Sale](ctx, s.client, "/sales", form)
	if err != nil {
		return Sale{}, err
	}
	s.cache.ApplyMutation(query.MutationSaleCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form SaleForm) (Sale, error) {
	updated, err := strapi.Update[Sale](ctx, s.client, "/sales/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return Sale{}, err
	}
	s.cache.ApplyMutation(query.MutationSaleUpdate)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, "/sales/"+strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.cache.ApplyMutation(query.MutationSaleDelete)
	return nil
}
