package catalogsource

import (
	"context"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/reviews"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
)

// FallbackSource answers from the static dataset whenever the remote source is
// missing or fails. Only FetchByID can still fail, with CodeNotFound, when the
// id is unknown to the dataset too.
type FallbackSource struct {
	remote  Source
	logg    *logger.Logger
	metrics *metrics.EngineMetrics
}

// NewFallbackSource wraps remote, which may be nil to serve the dataset only.
func NewFallbackSource(remote Source, logg *logger.Logger, m *metrics.EngineMetrics) *FallbackSource {
	if logg == nil {
		logg = logger.Nop()
	}
	return &FallbackSource{remote: remote, logg: logg, metrics: m}
}

func (s *FallbackSource) FetchAll(ctx context.Context) ([]catalog.Product, error) {
	if s.remote != nil {
		products, err := s.remote.FetchAll(ctx)
		if err == nil {
			return products, nil
		}
		s.fellBack(ctx, CallFetchAll, "", err)
	}
	return catalog.Seed(), nil
}

func (s *FallbackSource) FetchByID(ctx context.Context, id string) (catalog.Product, error) {
	if s.remote != nil {
		product, err := s.remote.FetchByID(ctx, id)
		if err == nil {
			return product, nil
		}
		s.fellBack(ctx, CallFetchByID, id, err)
	}
	if product, ok := catalog.FindByID(catalog.Seed(), id); ok {
		return product, nil
	}
	return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").WithDetails(map[string]any{"id": id})
}

func (s *FallbackSource) FetchReviews(ctx context.Context, productID string) ([]reviews.Review, error) {
	if s.remote != nil {
		list, err := s.remote.FetchReviews(ctx, productID)
		if err == nil {
			return list, nil
		}
		s.fellBack(ctx, CallFetchReviews, productID, err)
	}
	list := reviews.SeedFor(productID)
	if list == nil {
		list = []reviews.Review{}
	}
	return list, nil
}

func (s *FallbackSource) fellBack(ctx context.Context, call, id string, err error) {
	s.metrics.IncCatalogFallback(call)
	ctx = s.logg.WithField(ctx, "call", call)
	if id != "" {
		ctx = s.logg.WithProductID(ctx, id)
	}
	s.logg.WarnErr(ctx, "catalog source failed; serving static dataset", err)
}
