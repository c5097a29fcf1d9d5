// Package catalogsource fetches products and reviews from the remote catalog
// API and falls back to the static dataset when it cannot.
package catalogsource

import (
	"context"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/reviews"
)

// Source supplies raw catalog collections. Every call may fail.
type Source interface {
	FetchAll(ctx context.Context) ([]catalog.Product, error)
	FetchByID(ctx context.Context, id string) (catalog.Product, error)
	FetchReviews(ctx context.Context, productID string) ([]reviews.Review, error)
}

// Call names used in logs and metrics.
const (
	CallFetchAll     = "fetch_all"
	CallFetchByID    = "fetch_by_id"
	CallFetchReviews = "fetch_reviews"
)
