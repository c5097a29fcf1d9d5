package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/storefront/api/responses"
	"github.com/angelmondragon/storefront/api/validators"
	catalogsvc "github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/reviews"
	"github.com/angelmondragon/storefront/internal/storefront"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
)

const (
	productIDParam = "productId"
	maxSearchLen   = 100
)

type productList struct {
	Products   []catalogsvc.Product `json:"products"`
	Count      int                  `json:"count"`
	Categories []string             `json:"categories"`
	Query      string               `json:"query"`
}

type statsView struct {
	reviews.Stats
	MaxBucket int `json:"max_bucket"`
}

type productDetail struct {
	Product    catalogsvc.Product `json:"product"`
	Dimensions string             `json:"dimensions"`
	Reviews    []reviews.Review   `json:"reviews"`
	Stats      statsView          `json:"stats"`
	InCart     bool               `json:"in_cart"`
	Wishlisted bool               `json:"wishlisted"`
}

func newStatsView(stats reviews.Stats) statsView {
	return statsView{Stats: stats, MaxBucket: stats.MaxBucket()}
}

// ProductsList filters and sorts the catalog from the q, category, minPrice,
// maxPrice and sort parameters.
func ProductsList(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if host == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}

		query := catalogsvc.ParseQuery(r.URL.Query())
		query.Text = validators.SanitizeString(query.Text, maxSearchLen)

		var resp productList
		err := host.Do(func(s *storefront.Session) error {
			products, err := s.Browse(ctx, query)
			if err != nil {
				return err
			}
			resp = productList{
				Products:   products,
				Count:      len(products),
				Categories: catalogsvc.Categories(s.Products()),
				Query:      query.Values().Encode(),
			}
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// ProductsFeatured returns the home page selection.
func ProductsFeatured(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if host == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		var featured []catalogsvc.Product
		err := host.Do(func(s *storefront.Session) error {
			products, err := s.Catalog(ctx)
			if err != nil {
				return err
			}
			featured = catalogsvc.Featured(products)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, featured)
	}
}

// ProductDetail returns one product with its reviews and rating summary.
func ProductDetail(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if host == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		id := chi.URLParam(r, productIDParam)

		var resp productDetail
		err := host.Do(func(s *storefront.Session) error {
			view, err := s.Product(ctx, id)
			if err != nil {
				return err
			}
			resp = productDetail{
				Product:    view.Product,
				Dimensions: view.Product.Dimensions(),
				Reviews:    view.Reviews,
				Stats:      newStatsView(view.Stats),
				InCart:     view.InCart,
				Wishlisted: view.Wishlist,
			}
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}

// ProductReviewCreate validates and records a review for the product.
func ProductReviewCreate(host *storefront.Host, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if host == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}
		id := chi.URLParam(r, productIDParam)

		var payload reviews.Submission
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var resp struct {
			Review reviews.Review `json:"review"`
			Stats  statsView      `json:"stats"`
		}
		err := host.Do(func(s *storefront.Session) error {
			review, err := s.SubmitReview(ctx, id, payload)
			if err != nil {
				return err
			}
			view, err := s.Product(ctx, id)
			if err != nil {
				return err
			}
			resp.Review = review
			resp.Stats = newStatsView(view.Stats)
			return nil
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}
