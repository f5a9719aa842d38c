package kvstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Second), mr
}

func TestRedisStore_GetSetDel(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	_, err := store.Get(ctx, "slots:1:2025-06-01:2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "slots:1:2025-06-01:2", []byte(`[]`), 300*time.Second))
	assert.Equal(t, 300*time.Second, mr.TTL("slots:1:2025-06-01:2"))

	value, err := store.Get(ctx, "slots:1:2025-06-01:2")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, store.Del(ctx, "slots:1:2025-06-01:2"))
	assert.False(t, mr.Exists("slots:1:2025-06-01:2"))
}

func TestRedisStore_SetNX(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	ok, err := store.SetNX(ctx, "slot:1:2025-06-01:18:00", []byte("a"), 300*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetNX(ctx, "slot:1:2025-06-01:18:00", []byte("b"), 300*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(301 * time.Second)

	ok, err = store.SetNX(ctx, "slot:1:2025-06-01:18:00", []byte("c"), 300*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStore_SetNXConcurrent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.SetNX(ctx, "slot:9:2025-06-01:20:00", []byte("x"), time.Minute)
			assert.NoError(t, err)
			if ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestRedisStore_BackendError(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrBackend)

	_, err = store.SetNX(ctx, "k", []byte("v"), time.Minute)
	assert.ErrorIs(t, err, ErrBackend)

	assert.ErrorIs(t, store.Set(ctx, "k", []byte("v"), time.Minute), ErrBackend)
	assert.ErrorIs(t, store.Del(ctx, "k"), ErrBackend)
	assert.ErrorIs(t, store.Ping(ctx), ErrBackend)
}
