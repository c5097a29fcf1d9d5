package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/storefront"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
)

const productIDParam = "productId"

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type wishlistView struct {
	IDs      []string          `json:"ids"`
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

func newWishlistView(r *http.Request, s *storefront.Session) (wishlistView, error) {
	products, err := s.WishlistProducts(r.Context())
	if err != nil {
		return wishlistView{}, err
	}
	return wishlistView{IDs: s.Wishlist.IDs(), Products: products, Count: s.Wishlist.Count()}, nil
}

// WishlistFetch returns the saved ids and the products they resolve to.
func WishlistFetch(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(host, logg, w, r, http.StatusOK, func(*storefront.Session) error { return nil })
	}
}

// WishlistAddItem saves a product; saving it twice is a no-op.
func WishlistAddItem(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		respond(host, logg, w, r, http.StatusCreated, func(s *storefront.Session) error {
			s.Wishlist.Add(r.Context(), payload.ProductID)
			return nil
		})
	}
}

// WishlistRemoveItem drops a product from the wishlist.
func WishlistRemoveItem(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, productIDParam)
		respond(host, logg, w, r, http.StatusOK, func(s *storefront.Session) error {
			s.Wishlist.RemoveItem(r.Context(), id)
			return nil
		})
	}
}

// WishlistToggle flips membership of a product.
func WishlistToggle(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, productIDParam)
		respond(host, logg, w, r, http.StatusOK, func(s *storefront.Session) error {
			s.Wishlist.Toggle(r.Context(), id)
			return nil
		})
	}
}

// WishlistMoveToCart adds a saved product to the cart and unsaves it.
func WishlistMoveToCart(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, productIDParam)
		respond(host, logg, w, r, http.StatusOK, func(s *storefront.Session) error {
			if !s.Wishlist.Contains(id) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "wishlist item not found").WithDetails(map[string]any{"product_id": id})
			}
			return s.MoveToCart(r.Context(), id)
		})
	}
}

// WishlistClear drops every saved product.
func WishlistClear(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(host, logg, w, r, http.StatusOK, func(s *storefront.Session) error {
			s.Wishlist.Clear(r.Context())
			return nil
		})
	}
}

func respond(host *storefront.Host, logg *logger.Logger, w http.ResponseWriter, r *http.Request, status int, fn func(*storefront.Session) error) {
	ctx := r.Context()
	if host == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
		return
	}
	var view wishlistView
	err := host.Do(func(s *storefront.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		var err error
		view, err = newWishlistView(r, s)
		return err
	})
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	responses.WriteSuccessStatus(w, status, view)
}
