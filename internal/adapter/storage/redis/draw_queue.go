package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DrawQueue implements ports.DrawQueue as a Redis list. LPUSH on enqueue,
// BRPOP on dequeue; delivery is at-least-once, which the drawing service's
// idempotent guard absorbs.
type DrawQueue struct {
	client *goredis.Client
	key    string
}

// NewDrawQueue creates a new Redis-backed draw queue.
func NewDrawQueue(client *goredis.Client) *DrawQueue {
	return &DrawQueue{
		client: client,
		key:    "draw:queue",
	}
}

// Enqueue pushes a lottery id onto the queue.
func (q *DrawQueue) Enqueue(ctx context.Context, lotteryID uuid.UUID) error {
	if err := q.client.LPush(ctx, q.key, lotteryID.String()).Err(); err != nil {
		return fmt.Errorf("redis draw enqueue: %w", err)
	}
	return nil
}

// Dequeue blocks up to timeout waiting for a lottery id. ok is false when the
// queue stayed empty for the whole timeout.
func (q *DrawQueue) Dequeue(ctx context.Context, timeout time.Duration) (uuid.UUID, bool, error) {
	vals, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if err == goredis.Nil {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("redis draw dequeue: %w", err)
	}
	// BRPOP returns [key, value].
	id, err := uuid.Parse(vals[1])
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("malformed draw queue entry %q: %w", vals[1], err)
	}
	return id, true, nil
}
