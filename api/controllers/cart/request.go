package cart

import (
	"encoding/json"
	"strings"

	cartsvc "github.com/angelmondragon/storefront/internal/cart"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Qty       int    `json:"qty" validate:"omitempty,max=99"`
}

// setQtyRequest carries the raw quantity field; numbers and numeric strings
// are both accepted and clamped like the quantity input.
type setQtyRequest struct {
	Qty json.RawMessage `json:"qty" validate:"required"`
}

func (r setQtyRequest) clamped() int {
	return cartsvc.ClampQty(strings.Trim(strings.TrimSpace(string(r.Qty)), `"`))
}

type panelRequest struct {
	Open *bool `json:"open,omitempty"`
}
