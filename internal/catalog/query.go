package catalog

import (
	"net/url"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Sort orders query results.
type Sort string

const (
	SortRelevance Sort = "relevance"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// ParseSort maps a raw value onto a supported sort; anything unknown is relevance.
func ParseSort(raw string) Sort {
	switch Sort(strings.TrimSpace(raw)) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortRelevance
	}
}

// Query is the shareable filter state of the product list. Nil bounds are absent.
type Query struct {
	Text     string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     Sort
}

// URL parameter names of the product list.
const (
	ParamText     = "q"
	ParamCategory = "category"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamSort     = "sort"
)

// ParseQuery reads a Query from URL parameters. Unparseable prices are treated
// as absent and unknown sorts as relevance.
func ParseQuery(values url.Values) Query {
	return Query{
		Text:     values.Get(ParamText),
		Category: values.Get(ParamCategory),
		MinPrice: parsePrice(values.Get(ParamMinPrice)),
		MaxPrice: parsePrice(values.Get(ParamMaxPrice)),
		Sort:     ParseSort(values.Get(ParamSort)),
	}
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// Values renders the query back to URL parameters, omitting empty fields and
// the default sort.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Text != "" {
		values.Set(ParamText, q.Text)
	}
	if q.Category != "" {
		values.Set(ParamCategory, q.Category)
	}
	if q.MinPrice != nil {
		values.Set(ParamMinPrice, q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		values.Set(ParamMaxPrice, q.MaxPrice.String())
	}
	if s := ParseSort(string(q.Sort)); s != SortRelevance {
		values.Set(ParamSort, string(s))
	}
	return values
}

// Apply filters and sorts products for q. The input slice is never modified;
// the result is a new slice. Stages run in a fixed order: text, category,
// price range, sort. Price sorts are stable.
func Apply(products []Product, q Query) []Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if text != "" && !matchesText(p, text) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if !inPriceRange(p.Price, q.MinPrice, q.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	switch ParseSort(string(q.Sort)) {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	}
	return out
}

func matchesText(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle) ||
		strings.Contains(strings.ToLower(p.ShortDesc), needle)
}

func inPriceRange(price decimal.Decimal, lo, hi *decimal.Decimal) bool {
	if lo != nil && price.LessThan(*lo) {
		return false
	}
	if hi != nil && price.GreaterThan(*hi) {
		return false
	}
	return true
}
