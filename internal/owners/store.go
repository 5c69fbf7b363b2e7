package owners

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the owner resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func (s *Store) List(ctx context.Context) ([]Owner, error) {
	key := query.Key(query.KeyOwners, "")
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Owner](ctx, s.client, "/owners", nil)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Owner), nil
}

// ListActive filters to active owners, the set the investment
// dashboard allocates over.
func (s *Store) ListActive(ctx context.Context) ([]Owner, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]Owner, 0, len(all))
	for _, o := range all {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active, nil
}

func (s *Store) Create(ctx context.Context, form OwnerForm) (Owner, error) {
	created, err := strapi.Create[Owner](ctx, s.client, "/owners", form)
	if err != nil {
		return Owner{}, err
	}
	s.cache.ApplyMutation(query.MutationOwnerCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form OwnerForm) (Owner, error) {
	updated, err := strapi.Update[Owner](ctx, s.client, "/owners/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return Owner{}, err
	}
	s.cache.ApplyMutation(query.MutationOwnerUpdate)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, "/owners/"+strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.cache.ApplyMutation(query.MutationOwnerDelete)
	return nil
}
