package cart

import (
	cartsvc "github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/storefront"
	"github.com/shopspring/decimal"
)

type lineView struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Image        string          `json:"image,omitempty"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	Qty          int             `json:"qty"`
	LineTotal    decimal.Decimal `json:"line_total"`
	CanIncrement bool            `json:"can_increment"`
	CanDecrement bool            `json:"can_decrement"`
}

type cartView struct {
	Lines     []lineView      `json:"lines"`
	Count     int             `json:"count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	PanelOpen bool            `json:"panel_open"`
}

func newCartView(s *storefront.Session) cartView {
	state := s.Cart.Lines()
	lines := make([]lineView, 0, len(state))
	for _, l := range state {
		lines = append(lines, lineView{
			ProductID:    l.ID,
			Name:         l.Name,
			Image:        l.Image,
			Category:     l.Category,
			Price:        l.Price,
			Qty:          l.Qty,
			LineTotal:    l.Total(),
			CanIncrement: cartsvc.CanIncrement(l.Qty),
			CanDecrement: cartsvc.CanDecrement(l.Qty),
		})
	}
	return cartView{
		Lines:     lines,
		Count:     state.Count(),
		Subtotal:  state.Subtotal(),
		Total:     state.Total(),
		PanelOpen: s.Panel.IsOpen(),
	}
}
