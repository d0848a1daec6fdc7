// Package cache implements a generic, thread-safe, in-memory cache.
package cache

import (
	"context"
	"sync"
	"time"
)

const (
	defaultTTL = 5 * time.Second
)

// Value is a generic, thread-safe, in-memory cache that stores a single value
// with a TTL, after which the cache expires and the value is fetched again.
type Value[T any] struct {
	fetch  func(context.Context) (T, error)
	data   T
	expiry time.Time
	ttl    time.Duration
	mu     sync.Mutex
}

// Option is a functional option argument to NewValue().
type Option[T any] func(*Value[T])

// WithTTL sets the the Value time-to-live to ttl.
func WithTTL[T any](ttl time.Duration) Option[T] {
	return func(c *Value[T]) {
		c.ttl = ttl
	}
}

// NewValue instantiates a Value cache for type T which calls fetch to
// refresh an expired value. The default TTL is 5 seconds.
func NewValue[T any](fetch func(context.Context) (T, error), options ...Option[T]) *Value[T] {
	c := Value[T]{
		fetch: fetch,
		ttl:   defaultTTL,
	}
	for _, option := range options {
		option(&c)
	}
	return &c
}

// Get returns the cached value, fetching it first if the cache has expired.
// Fetch errors are returned as-is and leave the cache expired.
func (c *Value[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Now().Before(c.expiry) {
		return c.data, nil
	}
	data, err := c.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.data = data
	c.expiry = time.Now().Add(c.ttl)
	return data, nil
}
