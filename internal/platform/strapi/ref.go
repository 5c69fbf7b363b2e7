package strapi

import (
	"encoding/json"
)

// Ref is a relation field. Depending on the populate parameters the
// content API returns either a bare numeric id or the expanded object;
// Ref resolves both forms once, at the API boundary, so view code
// never type-checks at runtime.
type Ref[T any] struct {
	ID    int64
	Value *T
}

// Populated reports whether the relation arrived expanded.
func (r Ref[T]) Populated() bool {
	return r.Value != nil
}

// UnmarshalJSON accepts null, a bare id, or an expanded object.
func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	r.ID = 0
	r.Value = nil
	if string(b) == "null" {
		return nil
	}
	if b[0] != '{' {
		return json.Unmarshal(b, &r.ID)
	}
	var head struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	r.ID = head.ID
	r.Value = &v
	return nil
}

// MarshalJSON emits the bare id; write bodies reference relations by id.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.ID == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// Entity carries the identity fields every content-API record has.
type Entity struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
