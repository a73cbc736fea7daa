package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "quote_viewer:cache:"

// RedisStore implements Store on Redis so several instances share one cache.
// Each tag is a set of the value keys written under it.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore parses a redis:// URL and checks the connection.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return NewRedisStoreWithClient(client, ""), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) valueKey(key string) string { return s.keyPrefix + "v:" + key }
func (s *RedisStore) tagKey(tag string) string   { return s.keyPrefix + "t:" + tag }

// Get returns the value for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.valueKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return val, true, nil
}

// Set writes the value and its tag memberships in one transaction. Tag sets
// outlive the value by the same ttl so a later invalidation still finds it.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	vk := s.valueKey(key)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, vk, value, ttl)
		for _, tag := range tags {
			tk := s.tagKey(tag)
			pipe.SAdd(ctx, tk, vk)
			pipe.Expire(ctx, tk, 2*ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// InvalidateTag deletes every value recorded under tag along with the tag set.
func (s *RedisStore) InvalidateTag(ctx context.Context, tag string) error {
	tk := s.tagKey(tag)
	keys, err := s.client.SMembers(ctx, tk).Result()
	if err != nil {
		return fmt.Errorf("failed to read cache tag %s: %w", tag, err)
	}
	if err := s.client.Del(ctx, append(keys, tk)...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache tag %s: %w", tag, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
