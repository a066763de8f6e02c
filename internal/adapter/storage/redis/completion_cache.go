package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// CompletionCache implements ports.CompletionCache using Redis. It is the
// fast-path dedup for re-delivered payment webhooks; the transaction row in
// PostgreSQL stays the source of truth.
type CompletionCache struct {
	client *goredis.Client
	prefix string
}

// NewCompletionCache creates a new Redis-backed completion cache.
func NewCompletionCache(client *goredis.Client) *CompletionCache {
	return &CompletionCache{
		client: client,
		prefix: "completion:",
	}
}

// Get retrieves the cached completion response for a transaction.
// Returns nil, nil if the key does not exist.
func (c *CompletionCache) Get(ctx context.Context, transactionID uuid.UUID) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+transactionID.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis completion get: %w", err)
	}
	return val, nil
}

// Set stores a completion response with TTL.
func (c *CompletionCache) Set(ctx context.Context, transactionID uuid.UUID, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+transactionID.String(), value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis completion set: %w", err)
	}
	return nil
}
