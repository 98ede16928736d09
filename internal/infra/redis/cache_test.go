//go:build unit

package redis_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"court-reservation/internal/infra/redis"
	"court-reservation/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestKeys(t *testing.T) {
	id := uuid.MustParse("7f1f9c8e-1d7b-4c55-a9f6-1f9b1e0f2a10")
	assert.Equal(t, "court:v1:venue:7f1f9c8e-1d7b-4c55-a9f6-1f9b1e0f2a10", redis.KeyVenue(id))
	assert.Equal(t, "court:v1:sport:7f1f9c8e-1d7b-4c55-a9f6-1f9b1e0f2a10", redis.KeySport(id))
}

func TestGetOrSetJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from cache", func(t *testing.T) {
		kv := testutil.NewFakeKV()
		cache := redis.NewCache(kv)
		var calls int32
		loader := func(context.Context) (item, error) {
			atomic.AddInt32(&calls, 1)
			return item{Name: "centre"}, nil
		}

		first, err := redis.GetOrSetJSON(ctx, cache, "k", time.Minute, loader)
		require.NoError(t, err)
		second, err := redis.GetOrSetJSON(ctx, cache, "k", time.Minute, loader)
		require.NoError(t, err)

		assert.Equal(t, "centre", first.Name)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		assert.True(t, kv.Has("k"))
	})

	t.Run("loader errors are returned and not cached", func(t *testing.T) {
		kv := testutil.NewFakeKV()
		cache := redis.NewCache(kv)
		boom := errors.New("boom")

		_, err := redis.GetOrSetJSON(ctx, cache, "k", time.Minute, func(context.Context) (item, error) {
			return item{}, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.False(t, kv.Has("k"))
	})

	t.Run("read failures degrade to the loader", func(t *testing.T) {
		kv := testutil.NewFakeKV()
		kv.GetErr = errors.New("connection refused")
		cache := redis.NewCache(kv)

		got, err := redis.GetOrSetJSON(ctx, cache, "k", time.Minute, func(context.Context) (item, error) {
			return item{Name: "fallback"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "fallback", got.Name)
	})

	t.Run("concurrent callers share one load", func(t *testing.T) {
		cache := redis.NewCache(testutil.NewFakeKV())
		var calls int32
		release := make(chan struct{})
		loader := func(context.Context) (item, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return item{Name: "shared"}, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := redis.GetOrSetJSON(ctx, cache, "k", time.Minute, loader)
				assert.NoError(t, err)
				assert.Equal(t, "shared", got.Name)
			}()
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2))
	})
}

func TestCache_Del(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewFakeKV()
	cache := redis.NewCache(kv)

	require.NoError(t, redis.SetJSON(ctx, cache, "a", item{Name: "x"}, time.Minute))
	require.NoError(t, cache.Del(ctx, "a"))
	_, ok, err := redis.GetJSON[item](ctx, cache, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.Del(ctx))
}
