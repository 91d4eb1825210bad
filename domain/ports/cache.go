package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.GetJSON when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a small read-through cache used for derived data such as
// task statistics. Implementations must treat failures as soft: a
// broken cache degrades to the underlying store, never to an error
// surfaced to the client.
type Cache interface {
	GetJSON(ctx context.Context, key string, target any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
