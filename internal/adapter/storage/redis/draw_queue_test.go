package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawQueue_EnqueueDequeue(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewDrawQueue(client)
	ctx := context.Background()

	id := uuid.New()
	err := queue.Enqueue(ctx, id)
	require.NoError(t, err)

	got, ok, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestDrawQueue_FIFOOrder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewDrawQueue(client)
	ctx := context.Background()

	first, second := uuid.New(), uuid.New()
	require.NoError(t, queue.Enqueue(ctx, first))
	require.NoError(t, queue.Enqueue(ctx, second))

	got, ok, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, got)

	got, ok, err = queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestDrawQueue_EmptyTimesOut(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewDrawQueue(client)
	ctx := context.Background()

	_, ok, err := queue.Dequeue(ctx, 10*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDrawQueue_MalformedEntry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	queue := NewDrawQueue(client)
	ctx := context.Background()

	require.NoError(t, client.LPush(ctx, "draw:queue", "not-a-uuid").Err())

	_, ok, err := queue.Dequeue(ctx, time.Second)
	assert.False(t, ok)
	assert.Error(t, err)
}
