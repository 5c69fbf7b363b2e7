package budgets

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the budget-plan resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

func (s *Store) List(ctx context.Context) ([]BudgetPlan, error) {
	key := query.Key(query.KeyBudgets, "")
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[BudgetPlan](ctx, s.client, "/budget-plans", nil)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]BudgetPlan), nil
}

func (s *Store) Get(ctx context.Context, id int64) (BudgetPlan, error) {
	key := query.DetailKey(query.KeyBudgets, id)
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		return strapi.GetOne[BudgetPlan](ctx, s.client, "/budget-plans/"+strconv.FormatInt(id, 10), nil)
	})
	if err != nil {
		return BudgetPlan{}, err
	}
	return v.(BudgetPlan), nil
}

func (s *Store) Create(ctx context.Context, form BudgetForm) (BudgetPlan, error) {
	created, err := strapi.Create[BudgetPlan](ctx, s.client, "/budget-plans", form)
	if err != nil {
		return BudgetPlan{}, err
	}
	s.cache.ApplyMutation(query.MutationBudgetCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form BudgetForm) (BudgetPlan, error) {
	updated, err := strapi.Update[BudgetPlan](ctx, s.client, "/budget-plans/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return BudgetPlan{}, err
	}
	s.cache.ApplyMutation(query.MutationBudgetUpdate)
	return updated, nil
}

// CalculateVariances asks the server to refresh the plan's actuals
// from recorded sales and cashflows. The refreshed plan comes back and
// cached budget reads go stale.
func (s *Store) CalculateVariances(ctx context.Context, id int64) (BudgetPlan, error) {
	path := "/budget-plans/" + strconv.FormatInt(id, 10) + "/calculate-variances"
	refreshed, err := strapi.GetOne[BudgetPlan](ctx, s.client, path, nil)
	if err != nil {
		return BudgetPlan{}, err
	}
	s.cache.ApplyMutation(query.MutationBudgetUpdate)
	return refreshed, nil
}
