package cart

import (
	"encoding/json"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line is one product in the cart. It keeps a snapshot of the product taken
// when the line was created and serializes flat, as the product fields plus qty.
type Line struct {
	catalog.Product
	Qty int `json:"qty"`
}

// MarshalJSON writes the flat {...product, qty} shape. Without it the
// promoted Product marshaller would drop qty.
func (l Line) MarshalJSON() ([]byte, error) {
	product, err := json.Marshal(l.Product)
	if err != nil {
		return nil, err
	}
	qty, err := json.Marshal(l.Qty)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(product)+len(qty)+8)
	out = append(out, product[:len(product)-1]...)
	out = append(out, `,"qty":`...)
	out = append(out, qty...)
	return append(out, '}'), nil
}

// UnmarshalJSON decodes the flat {...product, qty} shape.
func (l *Line) UnmarshalJSON(data []byte) error {
	var product catalog.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return err
	}
	var qty struct {
		Qty int `json:"qty"`
	}
	if err := json.Unmarshal(data, &qty); err != nil {
		return err
	}
	l.Product = product
	l.Qty = qty.Qty
	return nil
}

// Total is price times quantity.
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// State is an ordered cart snapshot. Derived values are computed on demand.
type State []Line

func (s State) Count() int {
	n := 0
	for _, l := range s {
		n += l.Qty
	}
	return n
}

func (s State) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s {
		sum = sum.Add(l.Total())
	}
	return sum
}

// Total equals Subtotal until order adjustments exist.
func (s State) Total() decimal.Decimal {
	return s.Subtotal()
}

// LineTotal returns the total of the line for id, or zero when absent.
func (s State) LineTotal(id string) decimal.Decimal {
	if i := s.index(id); i >= 0 {
		return s[i].Total()
	}
	return decimal.Zero
}

// Find returns the line for id.
func (s State) Find(id string) (Line, bool) {
	if i := s.index(id); i >= 0 {
		return s[i], true
	}
	return Line{}, false
}

func (s State) index(id string) int {
	for i := range s {
		if s[i].ID == id {
			return i
		}
	}
	return -1
}

// normalize drops lines without an id, merges duplicate ids into the first
// occurrence and floors quantities at 1.
func normalize(lines State) State {
	out := make(State, 0, len(lines))
	for _, l := range lines {
		if l.ID == "" {
			continue
		}
		if l.Qty < 1 {
			l.Qty = 1
		}
		if i := out.index(l.ID); i >= 0 {
			out[i].Qty += l.Qty
			continue
		}
		out = append(out, l)
	}
	return out
}
