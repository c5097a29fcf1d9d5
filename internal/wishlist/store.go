// Package wishlist keeps the shopper's saved product ids.
package wishlist

import (
	"context"

	"github.com/angelmondragon/storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
	"github.com/angelmondragon/storefront/pkg/persistence"
)

// DefaultKey is the record key of the persisted wishlist.
const DefaultKey = "wishlist-items-v1"

const recordName = "wishlist"

// StoreParams groups dependencies for the wishlist store.
type StoreParams struct {
	Adapter persistence.Adapter
	Key     string
	Logger  *logger.Logger
	Metrics *metrics.EngineMetrics
}

// Store is an insertion-ordered set of product ids, written through on every
// change. It is not safe for concurrent use.
type Store struct {
	adapter persistence.Adapter
	key     string
	logg    *logger.Logger
	metrics *metrics.EngineMetrics

	ids []string
	set map[string]struct{}
}

// NewStore builds a store and loads the persisted wishlist; unreadable or
// corrupt records start empty.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.Adapter == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist persistence adapter is required")
	}
	key := params.Key
	if key == "" {
		key = DefaultKey
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	s := &Store{
		adapter: params.Adapter,
		key:     key,
		logg:    logg,
		metrics: params.Metrics,
		ids:     []string{},
		set:     map[string]struct{}{},
	}

	var stored []string
	found, err := persistence.LoadJSON(ctx, s.adapter, s.key, &stored)
	if err != nil {
		s.absorb(ctx, "read", err)
	} else if found {
		for _, id := range stored {
			s.insert(id)
		}
	}
	return s, nil
}

// Add saves id. Adding a present id changes nothing.
func (s *Store) Add(ctx context.Context, id string) {
	if !s.insert(id) {
		return
	}
	s.commit(ctx, "add")
}

// RemoveItem drops id if present.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	if !s.delete(id) {
		return
	}
	s.commit(ctx, "remove")
}

// Toggle adds id when absent and removes it when present, and reports whether
// id is saved afterwards.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	if id == "" {
		return false
	}
	saved := false
	if s.Contains(id) {
		s.delete(id)
	} else {
		s.insert(id)
		saved = true
	}
	s.commit(ctx, "toggle")
	return saved
}

func (s *Store) Contains(id string) bool {
	_, ok := s.set[id]
	return ok
}

// Clear drops every id.
func (s *Store) Clear(ctx context.Context) {
	s.ids = []string{}
	s.set = map[string]struct{}{}
	s.commit(ctx, "clear")
}

func (s *Store) Count() int {
	return len(s.ids)
}

// IDs returns the saved ids in insertion order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Products resolves the saved ids against the catalog in wishlist order,
// skipping ids the catalog no longer knows.
func (s *Store) Products(products []catalog.Product) []catalog.Product {
	return Products(s.ids, products)
}

// Products resolves ids against products in ids order.
func Products(ids []string, products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := catalog.FindByID(products, id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) insert(id string) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	s.set[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *Store) delete(id string) bool {
	if !s.Contains(id) {
		return false
	}
	delete(s.set, id)
	next := make([]string, 0, len(s.ids)-1)
	for _, existing := range s.ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	s.ids = next
	return true
}

func (s *Store) commit(ctx context.Context, op string) {
	s.metrics.IncMutation(recordName, op)
	if err := persistence.SaveJSON(ctx, s.adapter, s.key, s.ids); err != nil {
		s.absorb(ctx, "write", err)
	}
}

func (s *Store) absorb(ctx context.Context, op string, err error) {
	s.metrics.IncPersistenceFailure(recordName, op)
	ctx = s.logg.WithFields(ctx, map[string]any{"record": s.key, "op": op})
	s.logg.WarnErr(ctx, "wishlist persistence failed; keeping in-memory state", err)
}
