// Package storefront wires the commerce state engine for one shopper session:
// the cart and wishlist stores, the cart panel channel, the catalog source and
// the review board.
package storefront

import (
	"context"
	"io"

	"github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/catalogsource"
	"github.com/angelmondragon/storefront/internal/reviews"
	"github.com/angelmondragon/storefront/internal/wishlist"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/events"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
	"github.com/angelmondragon/storefront/pkg/persistence"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// PanelChannel is the name of the cart panel event channel.
const PanelChannel = "cart_panel"

// SessionParams groups dependencies for a session.
type SessionParams struct {
	ID          string
	Adapter     persistence.Adapter
	CartKey     string
	WishlistKey string
	Source      catalogsource.Source
	Logger      *logger.Logger
	Metrics     *metrics.EngineMetrics
	// Closers are closed, in order, by Close.
	Closers []io.Closer
}

// Session is the state of one shopper. It is not safe for concurrent use;
// hosts serialize access.
type Session struct {
	ID       string
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Reviews  *reviews.Board
	Panel    *Panel
	Events   *events.Channel[cart.PanelEvent]

	source   catalogsource.Source
	loader   *catalogsource.Loader
	detail   *catalogsource.Loader
	logg     *logger.Logger
	closers  []io.Closer
	unsubs   []func()
	products []catalog.Product
	loaded   bool
}

// ProductView is everything the product detail page shows.
type ProductView struct {
	Product  catalog.Product  `json:"product"`
	Reviews  []reviews.Review `json:"reviews"`
	Stats    reviews.Stats    `json:"stats"`
	InCart   bool             `json:"inCart"`
	Wishlist bool             `json:"wishlisted"`
}

// NewSession loads the persisted cart and wishlist and subscribes the panel.
// A nil Source serves the static dataset.
func NewSession(ctx context.Context, params SessionParams) (*Session, error) {
	if params.Adapter == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session persistence adapter is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	id := params.ID
	if id == "" {
		id = uuid.NewString()
	}
	ctx = logg.WithSessionID(ctx, id)

	channel := events.NewChannel[cart.PanelEvent](PanelChannel)
	channel.OnPanic(func(name string, recovered any) {
		params.Metrics.IncSubscriberPanic(name)
		logg.Error(logg.WithField(ctx, "recovered", recovered), "event subscriber panicked", nil)
	})

	cartStore, err := cart.NewStore(ctx, cart.StoreParams{
		Adapter: params.Adapter,
		Key:     params.CartKey,
		Events:  channel,
		Logger:  logg,
		Metrics: params.Metrics,
	})
	if err != nil {
		return nil, err
	}
	wishlistStore, err := wishlist.NewStore(ctx, wishlist.StoreParams{
		Adapter: params.Adapter,
		Key:     params.WishlistKey,
		Logger:  logg,
		Metrics: params.Metrics,
	})
	if err != nil {
		return nil, err
	}

	source := params.Source
	if source == nil {
		source = catalogsource.NewFallbackSource(nil, logg, params.Metrics)
	}

	s := &Session{
		ID:       id,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Reviews:  reviews.NewBoard(),
		Panel:    &Panel{},
		Events:   channel,
		source:   source,
		loader:   catalogsource.NewLoader(params.Metrics),
		detail:   catalogsource.NewLoader(params.Metrics),
		logg:     logg,
		closers:  params.Closers,
	}
	s.unsubs = append(s.unsubs, channel.Subscribe(s.Panel.Handle))
	return s, nil
}

// Catalog fetches the product list. Results of a superseded fetch are dropped
// and the latest applied list is returned instead.
func (s *Session) Catalog(ctx context.Context) ([]catalog.Product, error) {
	ticket := s.loader.Begin()
	products, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	s.loader.Apply(ticket, func() {
		s.products = products
		s.loaded = true
	})
	return s.Products(), nil
}

// Products returns the last applied product list.
func (s *Session) Products() []catalog.Product {
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Browse filters and sorts the catalog for q, fetching it first if needed.
func (s *Session) Browse(ctx context.Context, q catalog.Query) ([]catalog.Product, error) {
	if !s.loaded {
		if _, err := s.Catalog(ctx); err != nil {
			return nil, err
		}
	}
	return catalog.Apply(s.products, q), nil
}

// Product builds the detail view of id with fetched and submitted reviews. A
// request superseded by a later Product call returns CodeConflict and its
// result is dropped.
func (s *Session) Product(ctx context.Context, id string) (ProductView, error) {
	ticket := s.detail.Begin()
	product, err := s.source.FetchByID(ctx, id)
	if err != nil {
		return ProductView{}, err
	}
	fetched, err := s.source.FetchReviews(ctx, id)
	if err != nil {
		return ProductView{}, err
	}

	var view ProductView
	applied := s.detail.Apply(ticket, func() {
		list := s.Reviews.Merge(id, fetched)
		view = ProductView{
			Product:  product,
			Reviews:  list,
			Stats:    reviews.Aggregate(list),
			InCart:   s.InCart(id),
			Wishlist: s.Wishlist.Contains(id),
		}
	})
	if !applied {
		return ProductView{}, pkgerrors.New(pkgerrors.CodeConflict, "product request superseded")
	}
	return view, nil
}

// SubmitReview validates sub and records it against an existing product.
func (s *Session) SubmitReview(ctx context.Context, productID string, sub reviews.Submission) (reviews.Review, error) {
	if _, err := s.source.FetchByID(ctx, productID); err != nil {
		return reviews.Review{}, err
	}
	return s.Reviews.Submit(productID, sub)
}

// AddToCart resolves id and adds qty units.
func (s *Session) AddToCart(ctx context.Context, id string, qty int) error {
	product, err := s.source.FetchByID(ctx, id)
	if err != nil {
		return err
	}
	s.Cart.AddItem(ctx, product, qty)
	return nil
}

// MoveToCart adds one unit of a wishlisted product to the cart and drops it
// from the wishlist.
func (s *Session) MoveToCart(ctx context.Context, id string) error {
	if err := s.AddToCart(ctx, id, 1); err != nil {
		return err
	}
	s.Wishlist.RemoveItem(ctx, id)
	return nil
}

func (s *Session) InCart(id string) bool {
	return s.Cart.Contains(id)
}

// WishlistProducts resolves the wishlist against the catalog.
func (s *Session) WishlistProducts(ctx context.Context) ([]catalog.Product, error) {
	if !s.loaded {
		if _, err := s.Catalog(ctx); err != nil {
			return nil, err
		}
	}
	return s.Wishlist.Products(s.products), nil
}

// TogglePanel flips the cart panel; SetPanel forces it.
func (s *Session) TogglePanel() {
	s.Events.Publish(cart.PanelEvent{})
}

func (s *Session) SetPanel(open bool) {
	s.Events.Publish(cart.PanelEvent{Open: &open})
}

// Close unsubscribes the panel and closes the registered closers, combining
// their errors.
func (s *Session) Close() error {
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c.Close())
	}
	s.closers = nil
	return err
}
