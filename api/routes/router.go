package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/controllers"
	cartcontrollers "github.com/angelmondragon/storefront/api/controllers/cart"
	catalogcontrollers "github.com/angelmondragon/storefront/api/controllers/catalog"
	wishlistcontrollers "github.com/angelmondragon/storefront/api/controllers/wishlist"
	"github.com/angelmondragon/storefront/api/middleware"
	"github.com/angelmondragon/storefront/internal/storefront"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/logger"
)

// NewRouter exposes the storefront session over HTTP. metricsHandler is
// mounted at cfg.Metrics.Path when metrics are enabled and it is non-nil.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	host *storefront.Host,
	pingers map[string]controllers.Pinger,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Recoverer(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	if cfg.Metrics.Enabled && metricsHandler != nil {
		r.Handle(cfg.Metrics.Path, metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogcontrollers.ProductsList(host, logg))
			r.Get("/featured", catalogcontrollers.ProductsFeatured(host, logg))
			r.Get("/{productId}", catalogcontrollers.ProductDetail(host, logg))
			r.Post("/{productId}/reviews", catalogcontrollers.ProductReviewCreate(host, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(host, logg))
			r.Delete("/", cartcontrollers.CartClear(host, logg))
			r.Post("/panel", cartcontrollers.CartPanel(host, logg))
			r.Post("/items", cartcontrollers.CartAddItem(host, logg))
			r.Patch("/items/{productId}", cartcontrollers.CartSetQty(host, logg))
			r.Delete("/items/{productId}", cartcontrollers.CartRemoveItem(host, logg))
			r.Post("/items/{productId}/increment", cartcontrollers.CartIncrement(host, logg))
			r.Post("/items/{productId}/decrement", cartcontrollers.CartDecrement(host, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", wishlistcontrollers.WishlistFetch(host, logg))
			r.Delete("/", wishlistcontrollers.WishlistClear(host, logg))
			r.Post("/items", wishlistcontrollers.WishlistAddItem(host, logg))
			r.Delete("/items/{productId}", wishlistcontrollers.WishlistRemoveItem(host, logg))
			r.Post("/items/{productId}/toggle", wishlistcontrollers.WishlistToggle(host, logg))
			r.Post("/items/{productId}/move-to-cart", wishlistcontrollers.WishlistMoveToCart(host, logg))
		})
	})

	return r
}
