package query

// Mutation names a write operation that affects cached reads.
type Mutation string

const (
	MutationProductCreate Mutation = "products.create"
	MutationProductUpdate Mutation = "products.update"
	MutationProductDelete Mutation = "products.delete"

	MutationBatchCreate         Mutation = "batches.create"
	MutationBatchCalculateCosts Mutation = "batches.calculate-costs"
	MutationBatchComplete       Mutation = "batches.complete"
	MutationBatchUpdateStatus   Mutation = "batches.update-status"

	MutationSaleCreate Mutation = "sales.create"
	MutationSaleUpdate Mutation = "sales.update"
	MutationSaleDelete Mutation = "sales.delete"

	MutationCashflowCreate   Mutation = "cashflows.create"
	MutationCashflowUpdate   Mutation = "cashflows.update"
	MutationCashflowDelete   Mutation = "cashflows.delete"
	MutationCashflowMarkPaid Mutation = "cashflows.mark-paid"

	MutationOwnerCreate Mutation = "owners.create"
	MutationOwnerUpdate Mutation = "owners.update"
	MutationOwnerDelete Mutation = "owners.delete"

	MutationOverheadRateCreate Mutation = "overhead-rates.create"
	MutationOverheadRateUpdate Mutation = "overhead-rates.update"
	MutationOverheadRateDelete Mutation = "overhead-rates.delete"

	MutationBudgetCreate Mutation = "budgets.create"
	MutationBudgetUpdate Mutation = "budgets.update"

	MutationZakatCalculate Mutation = "zakat.calculate"
)

// Cache key prefixes for each resource.
const (
	KeyProducts            = "products"
	KeyBatches             = "batches"
	KeySales               = "sales"
	KeyCashflows           = "cashflows"
	KeyOwners              = "owners"
	KeyOverheadRates       = "overhead-rates"
	KeyBudgets             = "budgets"
	KeyZakat               = "zakat"
	KeyInventory           = "inventory"
	KeyDashboard           = "dashboard"
	KeyInvestmentDashboard = "investment-dashboard"
)

// affected is the static cross-entity invalidation table. The backend
// emits no change events, so every write declares up front which
// cached reads it can affect.
var affected = map[Mutation][]string{
	MutationProductCreate: {KeyProducts},
	MutationProductUpdate: {KeyProducts},
	MutationProductDelete: {KeyProducts},

	MutationBatchCreate:         {KeyBatches},
	MutationBatchCalculateCosts: {KeyBatches},
	MutationBatchComplete:       {KeyBatches, KeyInventory},
	MutationBatchUpdateStatus:   {KeyBatches},

	MutationSaleCreate: {KeySales, KeyInventory, KeyDashboard},
	MutationSaleUpdate: {KeySales},
	MutationSaleDelete: {KeySales},

	MutationCashflowCreate:   {KeyCashflows, KeyDashboard},
	MutationCashflowUpdate:   {KeyCashflows},
	MutationCashflowDelete:   {KeyCashflows},
	MutationCashflowMarkPaid: {KeyCashflows, KeyDashboard},

	MutationOwnerCreate: {KeyOwners, KeyInvestmentDashboard},
	MutationOwnerUpdate: {KeyOwners, KeyInvestmentDashboard},
	MutationOwnerDelete: {KeyOwners, KeyInvestmentDashboard},

	MutationOverheadRateCreate: {KeyOverheadRates},
	MutationOverheadRateUpdate: {KeyOverheadRates},
	MutationOverheadRateDelete: {KeyOverheadRates},

	MutationBudgetCreate: {KeyBudgets},
	MutationBudgetUpdate: {KeyBudgets},

	MutationZakatCalculate: {KeyZakat},
}

// AffectedKeys returns the key prefixes a mutation invalidates.
func AffectedKeys(m Mutation) []string {
	keys := affected[m]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// ApplyMutation invalidates every key prefix the mutation affects.
func (c *Cache) ApplyMutation(m Mutation) {
	c.Invalidate(affected[m]...)
}
