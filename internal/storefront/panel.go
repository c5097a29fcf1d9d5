package storefront

import "github.com/angelmondragon/storefront/internal/cart"

// Panel tracks whether the cart panel is open. It subscribes to the cart panel
// channel; an event without Open toggles it.
type Panel struct {
	open bool
}

func (p *Panel) Handle(ev cart.PanelEvent) {
	if ev.Open == nil {
		p.open = !p.open
		return
	}
	p.open = *ev.Open
}

func (p *Panel) IsOpen() bool {
	return p.open
}
