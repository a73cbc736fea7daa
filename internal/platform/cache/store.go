package cache

import (
	"context"
	"time"
)

// Store is a shared byte cache with TTL expiry and tag-based invalidation.
// Values are replaced whole; a reader never observes a partial write.
type Store interface {
	// Get returns the value for key. ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key for ttl and records it under each tag.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	// InvalidateTag evicts every key recorded under tag.
	InvalidateTag(ctx context.Context, tag string) error
}
