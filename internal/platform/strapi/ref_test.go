package strapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type refHolder struct {
	Product Ref[widget] `json:"product"`
}

func TestRefUnmarshalBareID(t *testing.T) {
	var h refHolder
	require.NoError(t, json.Unmarshal([]byte(`{"product": 12}`), &h))
	require.Equal(t, int64(12), h.Product.ID)
	require.False(t, h.Product.Populated())
}

func TestRefUnmarshalExpandedObject(t *testing.T) {
	var h refHolder
	require.NoError(t, json.Unmarshal([]byte(`{"product": {"id": 5, "name": "soap", "price": 3.5}}`), &h))
	require.Equal(t, int64(5), h.Product.ID)
	require.True(t, h.Product.Populated())
	require.Equal(t, "soap", h.Product.Value.Name)
	require.Equal(t, 3.5, h.Product.Value.Price)
}

func TestRefUnmarshalNull(t *testing.T) {
	var h refHolder
	require.NoError(t, json.Unmarshal([]byte(`{"product": null}`), &h))
	require.Zero(t, h.Product.ID)
	require.False(t, h.Product.Populated())
}

func TestRefMarshalEmitsBareID(t *testing.T) {
	h := refHolder{Product: Ref[widget]{ID: 9, Value: &widget{Name: "expanded"}}}
	raw, err := json.Marshal(h)
	require.NoError(t, err)
	require.JSONEq(t, `{"product": 9}`, string(raw))

	raw, err = json.Marshal(refHolder{})
	require.NoError(t, err)
	require.JSONEq(t, `{"product": null}`, string(raw))
}
