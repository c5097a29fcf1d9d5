// Package persistence is the best-effort key/value layer behind the cart and
// wishlist records. Adapters report failures as errors so callers and tests can
// see them; the stores decide to absorb them.
package persistence

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

// Adapter is a durable key/value store.
type Adapter interface {
	// Read returns the stored bytes and whether a record exists.
	Read(ctx context.Context, key string) ([]byte, bool, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the record at key into dest. A missing record returns
// (false, nil). Unreadable storage returns CodeUnavailable; undecodable
// content returns CodeMalformed and leaves dest untouched.
func LoadJSON[T any](ctx context.Context, a Adapter, key string, dest *T) (bool, error) {
	if a == nil {
		return false, pkgerrors.New(pkgerrors.CodeUnavailable, "persistence adapter not configured")
	}
	raw, found, err := a.Read(ctx, key)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeUnavailable, err, "read "+key)
	}
	if !found || len(strings.TrimSpace(string(raw))) == 0 {
		return false, nil
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeMalformed, err, "decode "+key)
	}
	*dest = decoded
	return true, nil
}

// SaveJSON encodes value and writes it under key.
func SaveJSON(ctx context.Context, a Adapter, key string, value any) error {
	if a == nil {
		return pkgerrors.New(pkgerrors.CodeUnavailable, "persistence adapter not configured")
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeMalformed, err, "encode "+key)
	}
	if err := a.Write(ctx, key, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnavailable, err, "write "+key)
	}
	return nil
}

type prefixed struct {
	inner  Adapter
	prefix string
}

// WithPrefix scopes every key of inner under prefix, e.g. one browser session.
// An empty prefix returns inner unchanged.
func WithPrefix(inner Adapter, prefix string) Adapter {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return inner
	}
	return &prefixed{inner: inner, prefix: prefix}
}

func (p *prefixed) key(k string) string {
	return p.prefix + ":" + k
}

func (p *prefixed) Read(ctx context.Context, key string) ([]byte, bool, error) {
	return p.inner.Read(ctx, p.key(key))
}

func (p *prefixed) Write(ctx context.Context, key string, value []byte) error {
	return p.inner.Write(ctx, p.key(key), value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.key(key))
}

type bounded struct {
	inner   Adapter
	timeout time.Duration
}

// WithTimeout bounds every call to inner by d. A non-positive d returns inner
// unchanged.
func WithTimeout(inner Adapter, d time.Duration) Adapter {
	if d <= 0 {
		return inner
	}
	return &bounded{inner: inner, timeout: d}
}

func (b *bounded) Read(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.inner.Read(ctx, key)
}

func (b *bounded) Write(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.inner.Write(ctx, key, value)
}

func (b *bounded) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.inner.Delete(ctx, key)
}
