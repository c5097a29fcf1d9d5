package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductUnmarshalAcceptsNumericID(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"id": 7, "name": "Stool", "category": "Chairs", "price": 49.5, "rating": 4}`), &p)
	require.NoError(t, err)
	require.Equal(t, "7", p.ID)
	require.Equal(t, "49.5", p.Price.String())

	err = json.Unmarshal([]byte(`{"id": "abc", "price": "10"}`), &p)
	require.NoError(t, err)
	require.Equal(t, "abc", p.ID)
}

func TestProductUnmarshalRejectsBadID(t *testing.T) {
	var p Product
	require.Error(t, json.Unmarshal([]byte(`{"id": {"x": 1}}`), &p))
}

func TestProductJSONRoundTrip(t *testing.T) {
	original := Seed()[0]
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, original.ID, decoded.ID)
	require.True(t, original.Price.Equal(decoded.Price))
	require.Equal(t, original.Specs, decoded.Specs)
}

func TestFindByID(t *testing.T) {
	p, ok := FindByID(Seed(), "3")
	require.True(t, ok)
	require.Equal(t, "Tide Glass Coffee Table", p.Name)

	_, ok = FindByID(Seed(), "99")
	require.False(t, ok)
}

func TestFeaturedAndCategories(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, ids(Featured(Seed())))
	require.Equal(t, []string{"Chairs", "Sofas", "Tables"}, Categories(Seed()))
	require.Empty(t, Categories(nil))
}

func TestDimensions(t *testing.T) {
	require.Equal(t, "52cm x 57cm x 82cm", Seed()[0].Dimensions())
}

func TestProductMarshalWritesNumericPrice(t *testing.T) {
	p, ok := FindByID(Seed(), "1")
	require.True(t, ok)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	require.Equal(t, "129.9", string(fields["price"]))
	require.Equal(t, `"1"`, string(fields["id"]))
	require.Contains(t, fields, "specs")
}
