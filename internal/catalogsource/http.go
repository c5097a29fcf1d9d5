package catalogsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/internal/reviews"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

const maxBodyBytes = 4 << 20

// HTTPSource reads the catalog from {base}/products.
type HTTPSource struct {
	base   string
	client *http.Client
}

// NewHTTPSource builds a source for baseURL. A nil client gets one with timeout.
func NewHTTPSource(baseURL string, client *http.Client, timeout time.Duration) (*HTTPSource, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "catalog base url is invalid")
	}
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPSource{base: base, client: client}, nil
}

func (s *HTTPSource) FetchAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := s.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *HTTPSource) FetchByID(ctx context.Context, id string) (catalog.Product, error) {
	var product catalog.Product
	if err := s.getJSON(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return catalog.Product{}, err
	}
	return product, nil
}

func (s *HTTPSource) FetchReviews(ctx context.Context, productID string) ([]reviews.Review, error) {
	var list []reviews.Review
	if err := s.getJSON(ctx, "/products/"+url.PathEscape(productID)+"/reviews", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+path, nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "catalog request failed")
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodyBytes)
	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, body)
		return pkgerrors.New(pkgerrors.CodeNotFound, "catalog resource not found").WithDetails(map[string]any{"path": path})
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, body)
		return pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog responded %d", resp.StatusCode)).
			WithDetails(map[string]any{"path": path, "status": resp.StatusCode})
	}
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode catalog response")
	}
	return nil
}
