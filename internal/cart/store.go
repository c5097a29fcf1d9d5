// Package cart owns the shopping cart lines, their derived totals and the
// write-through persistence of the cart record.
package cart

import (
	"context"

	"github.com/angelmondragon/storefront/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
	"github.com/angelmondragon/storefront/pkg/persistence"
	"github.com/shopspring/decimal"
)

// DefaultKey is the record key of the persisted cart.
const DefaultKey = "cart-items-v1"

const recordName = "cart"

// PanelEvent asks the cart panel to open or close. A nil Open toggles it.
type PanelEvent struct {
	Open *bool `json:"open,omitempty"`
}

// OpenPanel is the event published when the cart stops being empty.
func OpenPanel() PanelEvent {
	open := true
	return PanelEvent{Open: &open}
}

// Publisher delivers panel events; *events.Channel[PanelEvent] satisfies it.
type Publisher interface {
	Publish(PanelEvent) int
}

// StoreParams groups dependencies for the cart store.
type StoreParams struct {
	Adapter persistence.Adapter
	Key     string
	Events  Publisher
	Logger  *logger.Logger
	Metrics *metrics.EngineMetrics
}

// Store holds the cart in memory and writes every mutation through to the
// adapter. Mutations never fail: persistence errors are logged and counted.
// A Store is not safe for concurrent use.
type Store struct {
	adapter persistence.Adapter
	key     string
	events  Publisher
	logg    *logger.Logger
	metrics *metrics.EngineMetrics

	lines State
}

// NewStore builds a store and loads the persisted cart. Unreadable or corrupt
// records start an empty cart.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.Adapter == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart persistence adapter is required")
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
		events:  params.Events,
		logg:    logg,
		metrics: params.Metrics,
		lines:   State{},
	}
	s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) {
	var stored State
	found, err := persistence.LoadJSON(ctx, s.adapter, s.key, &stored)
	if err != nil {
		s.absorb(ctx, "read", err)
		return
	}
	if found {
		s.lines = normalize(stored)
	}
}

// AddItem adds qty units of product. An existing line accumulates; otherwise a
// new line is appended with a copy of product. qty below 1 counts as 1.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, qty int) {
	if product.ID == "" {
		return
	}
	if qty < 1 {
		qty = 1
	}
	wasEmpty := len(s.lines) == 0
	if i := s.lines.index(product.ID); i >= 0 {
		s.lines[i].Qty += qty
	} else {
		s.lines = append(s.lines, Line{Product: product, Qty: qty})
	}
	s.commit(ctx, "add")
	if wasEmpty {
		s.publishOpen()
	}
}

// SetQty sets the quantity of an existing line, flooring it at 1. Absent ids
// are ignored.
func (s *Store) SetQty(ctx context.Context, id string, qty int) {
	i := s.lines.index(id)
	if i < 0 {
		return
	}
	if qty < 1 {
		qty = 1
	}
	s.lines[i].Qty = qty
	s.commit(ctx, "set_qty")
}

// Increment adds one unit to an existing line.
func (s *Store) Increment(ctx context.Context, id string) {
	i := s.lines.index(id)
	if i < 0 {
		return
	}
	s.lines[i].Qty++
	s.commit(ctx, "increment")
}

// Decrement removes one unit; the line is deleted when it reaches zero.
func (s *Store) Decrement(ctx context.Context, id string) {
	i := s.lines.index(id)
	if i < 0 {
		return
	}
	if s.lines[i].Qty-1 <= 0 {
		s.lines = deleteAt(s.lines, i)
	} else {
		s.lines[i].Qty--
	}
	s.commit(ctx, "decrement")
}

// Remove deletes the line for id.
func (s *Store) Remove(ctx context.Context, id string) {
	i := s.lines.index(id)
	if i < 0 {
		return
	}
	s.lines = deleteAt(s.lines, i)
	s.commit(ctx, "remove")
}

// Clear empties the cart and persists the empty record.
func (s *Store) Clear(ctx context.Context) {
	s.lines = State{}
	s.commit(ctx, "clear")
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() State {
	out := make(State, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Count() int {
	return s.lines.Count()
}

func (s *Store) Subtotal() decimal.Decimal {
	return s.lines.Subtotal()
}

func (s *Store) Total() decimal.Decimal {
	return s.lines.Total()
}

func (s *Store) LineTotal(id string) decimal.Decimal {
	return s.lines.LineTotal(id)
}

// Contains reports whether a line exists for id.
func (s *Store) Contains(id string) bool {
	return s.lines.index(id) >= 0
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) commit(ctx context.Context, op string) {
	s.metrics.IncMutation(recordName, op)
	if err := persistence.SaveJSON(ctx, s.adapter, s.key, s.lines); err != nil {
		s.absorb(ctx, "write", err)
	}
}

func (s *Store) absorb(ctx context.Context, op string, err error) {
	s.metrics.IncPersistenceFailure(recordName, op)
	ctx = s.logg.WithFields(ctx, map[string]any{"record": s.key, "op": op})
	s.logg.WarnErr(ctx, "cart persistence failed; keeping in-memory state", err)
}

func (s *Store) publishOpen() {
	if s.events == nil || len(s.lines) == 0 {
		return
	}
	s.metrics.IncCartPanelOpen()
	s.events.Publish(OpenPanel())
}

func deleteAt(lines State, i int) State {
	out := make(State, 0, len(lines)-1)
	out = append(out, lines[:i]...)
	return append(out, lines[i+1:]...)
}
