// Package cachemanager provides a typed cache layer over go-cache plus a
// generic read-through wrapper. The catalog uses it to keep loaded record
// sets around for the lifetime of the process.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
