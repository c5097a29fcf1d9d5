package catalogsource

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/reviews"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	products []catalog.Product
	reviews  []reviews.Review
	err      error
}

func (s stubSource) FetchAll(context.Context) ([]catalog.Product, error) {
	return s.products, s.err
}

func (s stubSource) FetchByID(_ context.Context, id string) (catalog.Product, error) {
	if s.err != nil {
		return catalog.Product{}, s.err
	}
	p, ok := catalog.FindByID(s.products, id)
	if !ok {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "missing")
	}
	return p, nil
}

func (s stubSource) FetchReviews(context.Context, string) ([]reviews.Review, error) {
	return s.reviews, s.err
}

func TestFallbackPassesThroughRemote(t *testing.T) {
	remote := stubSource{
		products: []catalog.Product{{ID: "77", Name: "Remote Desk"}},
		reviews:  []reviews.Review{{ID: "x", Rating: 2}},
	}
	src := NewFallbackSource(remote, nil, nil)
	ctx := context.Background()

	products, err := src.FetchAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "Remote Desk", products[0].Name)

	p, err := src.FetchByID(ctx, "77")
	require.NoError(t, err)
	require.Equal(t, "77", p.ID)

	list, err := src.FetchReviews(ctx, "77")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFallbackServesStaticDatasetOnFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewEngineMetrics(reg)
	src := NewFallbackSource(stubSource{err: errors.New("network down")}, nil, m)
	ctx := context.Background()

	products, err := src.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	p, err := src.FetchByID(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, "Tide Glass Coffee Table", p.Name)

	list, err := src.FetchReviews(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = src.FetchReviews(ctx, "unknown")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	count, err := testutil.GatherAndCount(reg, "storefront_catalog_fallbacks_total")
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestFallbackRemoteNotFoundUsesDataset(t *testing.T) {
	src := NewFallbackSource(stubSource{products: []catalog.Product{}}, nil, nil)
	p, err := src.FetchByID(context.Background(), "2")
	require.NoError(t, err)
	require.Equal(t, "Aurora Velvet Sofa", p.Name)
}

func TestFallbackUnknownIDIsNotFound(t *testing.T) {
	src := NewFallbackSource(nil, nil, nil)
	_, err := src.FetchByID(context.Background(), "999")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestFallbackWithoutRemoteServesDataset(t *testing.T) {
	src := NewFallbackSource(nil, nil, nil)
	products, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, catalog.Seed(), products)
}
