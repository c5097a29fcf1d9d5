package persistence

import (
	"context"
	"time"
)

// redisStore is the subset of pkg/redis.Client the adapter needs.
type redisStore interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	StateKey(name string) string
}

// Redis stores each record as a string value under the client's state namespace.
type Redis struct {
	client redisStore
	ttl    time.Duration
}

// NewRedis builds the adapter; ttl of zero keeps records until overwritten.
func NewRedis(client redisStore, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Read(ctx context.Context, key string) ([]byte, bool, error) {
	value, found, err := r.client.Lookup(ctx, r.client.StateKey(key))
	if err != nil || !found {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *Redis) Write(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.client.StateKey(key), string(value), r.ttl)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.client.StateKey(key))
}
