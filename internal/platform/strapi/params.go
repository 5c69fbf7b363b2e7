package strapi

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Params builds content-API query strings: filters[field][$op]=value,
// populate=a,b and sort=field:dir. The zero value is usable; a nil
// *Params means no parameters.
type Params struct {
	pairs [][2]string
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

func (p *Params) add(key, value string) *Params {
	p.pairs = append(p.pairs, [2]string{key, value})
	return p
}

// Filter adds filters[field][$op]=value. Nested relation fields use
// dotted notation, e.g. "owner.id".
func (p *Params) Filter(field, op string, value any) *Params {
	key := "filters"
	for _, part := range strings.Split(field, ".") {
		key += "[" + part + "]"
	}
	return p.add(key+"[$"+op+"]", fmt.Sprint(value))
}

// FilterEq adds an equality filter.
func (p *Params) FilterEq(field string, value any) *Params {
	return p.Filter(field, "eq", value)
}

// Populate requests expanded relations.
func (p *Params) Populate(relations ...string) *Params {
	return p.add("populate", strings.Join(relations, ","))
}

// Sort orders the listing, e.g. "transactionDate:desc".
func (p *Params) Sort(expr string) *Params {
	return p.add("sort", expr)
}

// Page requests a pagination window.
func (p *Params) Page(page, pageSize int) *Params {
	p.add("pagination[page]", fmt.Sprint(page))
	return p.add("pagination[pageSize]", fmt.Sprint(pageSize))
}

func (p *Params) values() url.Values {
	if p == nil || len(p.pairs) == 0 {
		return nil
	}
	v := url.Values{}
	for _, pair := range p.pairs {
		v.Add(pair[0], pair[1])
	}
	return v
}

// CacheKey serializes the parameters deterministically so equal
// parameter sets map to the same cache entry.
func (p *Params) CacheKey() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}
	parts := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		parts[i] = pair[0] + "=" + pair[1]
	}
	sort.Strings(parts)
	return strings.Join(parts, "&")
}
