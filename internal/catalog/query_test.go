package catalog

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func price(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func product(id, name, category, amount string) Product {
	return Product{ID: id, Name: name, Category: category, Price: decimal.RequireFromString(amount)}
}

func TestApplyEmptyQueryIsIdentity(t *testing.T) {
	seed := Seed()
	got := Apply(seed, Query{})
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(got))

	got = Apply(seed, Query{Text: "   ", Sort: "bogus"})
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestApplyOakChairScenario(t *testing.T) {
	got := Apply(Seed(), Query{Text: "oak", Sort: SortPriceAsc})
	require.Len(t, got, 1)
	require.Equal(t, "Nordic Oak Chair", got[0].Name)
	require.True(t, got[0].Price.Equal(decimal.RequireFromString("129.90")))
}

func TestApplyTextMatchesAnyField(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"name", "VELVET", []string{"2"}},
		{"category", "chairs", []string{"1", "4"}},
		{"short description", "coastal", []string{"4"}},
		{"trimmed", "  glass ", []string{"3"}},
		{"no match", "marble", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ids(Apply(Seed(), Query{Text: tc.text})))
		})
	}
}

func TestApplyCategoryIsExactAndCaseSensitive(t *testing.T) {
	require.Equal(t, []string{"1", "4"}, ids(Apply(Seed(), Query{Category: "Chairs"})))
	require.Empty(t, Apply(Seed(), Query{Category: "chairs"}))
	require.Empty(t, Apply(Seed(), Query{Category: "Chair"}))
}

func TestApplyPriceBoundsAreInclusive(t *testing.T) {
	got := Apply(Seed(), Query{MinPrice: price("129.9"), MaxPrice: price("249.99")})
	require.Equal(t, []string{"1", "3", "4"}, ids(got))

	require.Equal(t, []string{"2"}, ids(Apply(Seed(), Query{MinPrice: price("899")})))
	require.Equal(t, []string{"1"}, ids(Apply(Seed(), Query{MaxPrice: price("129.90")})))
	require.Empty(t, Apply(Seed(), Query{MinPrice: price("300"), MaxPrice: price("200")}))
}

func TestApplyFiltersCompose(t *testing.T) {
	got := Apply(Seed(), Query{Text: "chair", Category: "Chairs", MaxPrice: price("150"), Sort: SortPriceDesc})
	require.Equal(t, []string{"1"}, ids(got))
}

func TestApplyPriceSorts(t *testing.T) {
	require.Equal(t, []string{"1", "4", "3", "2"}, ids(Apply(Seed(), Query{Sort: SortPriceAsc})))
	require.Equal(t, []string{"2", "3", "4", "1"}, ids(Apply(Seed(), Query{Sort: SortPriceDesc})))
}

func TestApplySortIsStableUnderTies(t *testing.T) {
	input := []Product{
		product("a", "A", "X", "50"),
		product("b", "B", "X", "10"),
		product("c", "C", "X", "50"),
		product("d", "D", "X", "10"),
		product("e", "E", "X", "50.00"),
	}

	require.Equal(t, []string{"b", "d", "a", "c", "e"}, ids(Apply(input, Query{Sort: SortPriceAsc})))
	require.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(Apply(input, Query{Sort: SortPriceDesc})))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := Seed()
	_ = Apply(input, Query{Sort: SortPriceDesc})
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(input))
}

func TestParseSort(t *testing.T) {
	require.Equal(t, SortPriceAsc, ParseSort("price_asc"))
	require.Equal(t, SortPriceDesc, ParseSort(" price_desc "))
	require.Equal(t, SortRelevance, ParseSort(""))
	require.Equal(t, SortRelevance, ParseSort("rating"))
}

func TestParseQueryFromURL(t *testing.T) {
	values, err := url.ParseQuery("q=oak&category=Chairs&minPrice=100&maxPrice=abc&sort=price_desc")
	require.NoError(t, err)

	q := ParseQuery(values)
	require.Equal(t, "oak", q.Text)
	require.Equal(t, "Chairs", q.Category)
	require.NotNil(t, q.MinPrice)
	require.True(t, q.MinPrice.Equal(decimal.NewFromInt(100)))
	require.Nil(t, q.MaxPrice)
	require.Equal(t, SortPriceDesc, q.Sort)
}

func TestQueryValuesOmitsDefaults(t *testing.T) {
	require.Empty(t, Query{Sort: SortRelevance}.Values())

	q := Query{Text: "sofa", MaxPrice: price("900"), Sort: SortPriceAsc}
	require.Equal(t, "maxPrice=900&q=sofa&sort=price_asc", q.Values().Encode())

	round := ParseQuery(q.Values())
	require.Equal(t, q.Text, round.Text)
	require.True(t, round.MaxPrice.Equal(*q.MaxPrice))
	require.Equal(t, q.Sort, round.Sort)
}
