package cashflows

import (
	"context"
	"strconv"

	"github.com/meezan-erp/meezan-erp/internal/owners"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
)

// Store binds the cashflow resource to the query cache.
type Store struct {
	client *strapi.Client
	cache  *query.Cache
}

func NewStore(client *strapi.Client, cache *query.Cache) *Store {
	return &Store{client: client, cache: cache}
}

// listParams encodes the filter into content-API query parameters,
// always populated with the owner and sorted newest first.
func listParams(f ListFilter) *strapi.Params {
	p := strapi.NewParams().Populate("owner").Sort("transactionDate:desc")
	if f.From != "" {
		p.Filter("transactionDate", "gte", f.From)
	}
	if f.To != "" {
		p.Filter("transactionDate", "lte", f.To)
	}
	if f.Type != "" {
		p.FilterEq("type", f.Type)
	}
	if f.Category != "" {
		p.FilterEq("category", f.Category)
	}
	if f.OwnerID > 0 {
		p.FilterEq("owner.id", f.OwnerID)
	}
	if f.IsPaid != nil {
		p.FilterEq("isPaid", *f.IsPaid)
	}
	return p
}

func (s *Store) List(ctx context.Context, filter ListFilter) ([]Cashflow, error) {
	params := listParams(filter)
	key := query.Key(query.KeyCashflows, params.CacheKey())
	v, err := s.cache.Read(ctx, key, func(ctx context.Context) (any, error) {
		items, _, err := strapi.GetList[Cashflow](ctx, s.client, "/cashflows", params)
		return items, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]Cashflow), nil
}

func (s *Store) Create(ctx context.Context, form CashflowForm) (Cashflow, error) {
	created, err := strapi.Create[Cashflow](ctx, s.client, "/cashflows", form)
	if err != nil {
		return Cashflow{}, err
	}
	s.cache.ApplyMutation(query.MutationCashflowCreate)
	return created, nil
}

func (s *Store) Update(ctx context.Context, id int64, form CashflowForm) (Cashflow, error) {
	updated, err := strapi.Update[Cashflow](ctx, s.client, "/cashflows/"+strconv.FormatInt(id, 10), form)
	if err != nil {
		return Cashflow{}, err
	}
	s.cache.ApplyMutation(query.MutationCashflowUpdate)
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, "/cashflows/"+strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	s.cache.ApplyMutation(query.MutationCashflowDelete)
	return nil
}

// MarkPaid is the documentId update variant used by the payables view.
func (s *Store) MarkPaid(ctx context.Context, documentID, paidDate string) (Cashflow, error) {
	body := map[string]any{"isPaid": true, "paidDate": paidDate}
	updated, err := strapi.Update[Cashflow](ctx, s.client, "/cashflows/"+documentID, body)
	if err != nil {
		return Cashflow{}, err
	}
	s.cache.ApplyMutation(query.MutationCashflowMarkPaid)
	return updated, nil
}

// ExpenseSummary totals expense entries by category for the investment
// dashboard.
func (s *Store) ExpenseSummary(ctx context.Context) (owners.ExpenseSummary, error) {
	expenses, err := s.List(ctx, ListFilter{Type: TypeExpense})
	if err != nil {
		return owners.ExpenseSummary{}, err
	}
	summary := owners.ExpenseSummary{ByCategory: map[string]float64{}}
	for _, cf := range expenses {
		summary.Total += cf.Amount
		summary.ByCategory[cf.Category] += cf.Amount
	}
	return summary, nil
}
