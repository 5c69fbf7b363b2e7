package products

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the product resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func (s *Store) List(ctx context.Context) ([]Product, error) {
	key := query.Key(query.KeyProducts, "")
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Product](ctx, s.client, "/products", nil)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Product), nil
}

func (s *Store) Get(ctx context.Context, id int64) (Product, error) {
	key := query.DetailKey(query.KeyProducts, id)
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return strapi.GetOne[Product](ctx, s.client, "/products/"+strconv.FormatInt(id, 10), nil)
	})
	if err != nil {
		return Product{}, err
	}
	return v.(Product), nil
}

func (s *Store) Create(ctx context.Context, form ProductForm) (Product, error) {
	created, err := strapi.Create[Product](ctx, s.client, "/products", form)
	if err != nil {
		return Product{}, err
	}
	s.cache.ApplyMutation(query.MutationProductCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form ProductForm) (Product, error) {
	updated, err := strapi.Update[Product](ctx, s.client, "/products/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return Product{}, err
	}
	s.cache.ApplyMutation(query.MutationProductUpdate)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, "/products/"+strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.cache.ApplyMutation(query.MutationProductDelete)
	return nil
}
