package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := NewCart(nil)
	_, err := c.Add(productA, 2, "red", "OS")
	require.NoError(t, err)
	_, err = c.Add(productB, 1, "blue", "M")
	require.NoError(t, err)

	data, err := Encode(c.Items())
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, c.Items(), NewCart(decoded).Items())
}

func TestEncode_UsesStoredFieldNames(t *testing.T) {
	data, err := Encode([]LineItem{{
		Product:       productA,
		CartID:        "A:red:OS",
		Quantity:      1,
		SelectedColor: "red",
		SelectedSize:  "OS",
	}})
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"id", "name", "category", "price", "image", "description", "colors", "sizes", "cartId", "quantity", "selectedColor", "selectedSize"} {
		assert.Contains(t, raw[0], key)
	}
	assert.NotContains(t, raw[0], "weight")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.ErrorIs(t, err, ErrMalformedCart)

	_, err = Decode([]byte(`{"id":"A"}`))
	assert.ErrorIs(t, err, ErrMalformedCart)
}

func TestDecode_NullIsEmpty(t *testing.T) {
	items, err := Decode([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, items)
}
