package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Specs holds the display dimensions of a product.
type Specs struct {
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	Depth  string `json:"depth,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Product is read-only catalog data. The engine never mutates a Product; cart
// lines hold their own copy.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Rating    float64         `json:"rating"`
	Material  string          `json:"material,omitempty"`
	Featured  bool            `json:"featured,omitempty"`
	ShortDesc string          `json:"shortDesc,omitempty"`
	Specs     Specs           `json:"specs"`
}

// MarshalJSON writes the price as a JSON number, matching the records other
// clients read.
func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price json.Number `json:"price"`
	}{alias: alias(p), Price: json.Number(p.Price.String())})
}

// UnmarshalJSON accepts numeric ids from remote sources and stores them as
// strings, so lookups compare ids textually.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		ID json.RawMessage `json:"id"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("product id: %w", err)
	}
	return n.String(), nil
}

// Dimensions renders "W x D x H" the way the detail page lists them.
func (p Product) Dimensions() string {
	return fmt.Sprintf("%s x %s x %s", p.Specs.Width, p.Specs.Depth, p.Specs.Height)
}

// FindByID returns the product whose id matches, comparing ids as strings.
func FindByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Featured keeps featured products in input order.
func Featured(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists distinct non-empty categories in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
