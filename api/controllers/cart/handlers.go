package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	cartsvc "github.com/angelmondragon/storefront/internal/cart"
	"github.com/angelmondragon/storefront/internal/storefront"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
)

const productIDParam = "productId"

// CartFetch returns the cart lines and totals.
func CartFetch(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if host == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		var view cartView
		_ = host.Do(func(s *storefront.Session) error {
			view = newCartView(s)
			return nil
		})
		responses.WriteSuccess(w, view)
	}
}

// CartAddItem adds a catalog product to the cart.
func CartAddItem(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if host == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var view cartView
		err := host.Do(func(s *storefront.Session) error {
			if err := s.AddToCart(ctx, payload.ProductID, payload.Qty); err != nil {
				return err
			}
			view = newCartView(s)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CartSetQty replaces the quantity of a line.
func CartSetQty(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload setQtyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		qty := payload.clamped()
		mutateLine(host, logg, w, r, func(s *storefront.Session, id string) error {
			s.Cart.SetQty(r.Context(), id, qty)
			return nil
		})
	}
}

// CartIncrement adds one unit, up to the quantity cap.
func CartIncrement(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mutateLine(host, logg, w, r, func(s *storefront.Session, id string) error {
			line, _ := s.Cart.Lines().Find(id)
			if !cartsvc.CanIncrement(line.Qty) {
				return pkgerrors.New(pkgerrors.CodeConflict, "quantity limit reached")
			}
			s.Cart.Increment(r.Context(), id)
			return nil
		})
	}
}

// CartDecrement removes one unit; the line goes away at zero.
func CartDecrement(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mutateLine(host, logg, w, r, func(s *storefront.Session, id string) error {
			s.Cart.Decrement(r.Context(), id)
			return nil
		})
	}
}

// CartRemoveItem deletes a line.
func CartRemoveItem(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mutateLine(host, logg, w, r, func(s *storefront.Session, id string) error {
			s.Cart.Remove(r.Context(), id)
			return nil
		})
	}
}

// CartClear empties the cart.
func CartClear(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if host == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		var view cartView
		_ = host.Do(func(s *storefront.Session) error {
			s.Cart.Clear(r.Context())
			view = newCartView(s)
			return nil
		})
		responses.WriteSuccess(w, view)
	}
}

// CartPanel sets the cart panel state; an empty body or a missing open flag
// toggles it.
func CartPanel(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if host == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		var payload panelRequest
		if validators.HasBody(r) {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}
		var open bool
		_ = host.Do(func(s *storefront.Session) error {
			if payload.Open == nil {
				s.TogglePanel()
			} else {
				s.SetPanel(*payload.Open)
			}
			open = s.Panel.IsOpen()
			return nil
		})
		responses.WriteSuccess(w, map[string]bool{"open": open})
	}
}

func mutateLine(host *storefront.Host, logg *logger.Logger, w http.ResponseWriter, r *http.Request, fn func(*storefront.Session, string) error) {
	ctx := r.Context()
	if host == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
		return
	}
	id := chi.URLParam(r, productIDParam)

	var view cartView
	err := host.Do(func(s *storefront.Session) error {
		if !s.Cart.Contains(id) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found").WithDetails(map[string]any{"product_id": id})
		}
		if err := fn(s, id); err != nil {
			return err
		}
		view = newCartView(s)
		return nil
	})
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return
	}
	responses.WriteSuccess(w, view)
}
