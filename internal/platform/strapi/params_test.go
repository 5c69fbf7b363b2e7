package strapi

import "testing"

func TestFilterBuildsNestedKeys(t *testing.T) {
	p := NewParams().
		Filter("transactionDate", "gte", "2026-01-01").
		FilterEq("owner.id", 3).
		FilterEq("isPaid", false)

	v := p.values()
	if got := v.Get("filters[transactionDate][$gte]"); got != "2026-01-01" {
		t.Fatalf("date filter: %q", got)
	}
	if got := v.Get("filters[owner][id][$eq]"); got != "3" {
		t.Fatalf("nested relation filter: %q", got)
	}
	if got := v.Get("filters[isPaid][$eq]"); got != "false" {
		t.Fatalf("bool filter: %q", got)
	}
}

func TestCacheKeyIsDeterministic(t *testing.T) {
	a := NewParams().Populate("product").Sort("saleDate:desc")
	b := NewParams().Sort("saleDate:desc").Populate("product")
	if a.CacheKey() != b.CacheKey() {
		t.Fatalf("same parameters must key identically: %q vs %q", a.CacheKey(), b.CacheKey())
	}
	if a.CacheKey() == "" {
		t.Fatal("non-empty params must produce a key")
	}
}

func TestCacheKeyEmptyParams(t *testing.T) {
	if got := NewParams().CacheKey(); got != "" {
		t.Fatalf("empty params: %q", got)
	}
	var p *Params
	if got := p.CacheKey(); got != "" {
		t.Fatalf("nil params: %q", got)
	}
}
