package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache[string], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := NewRedisCache[string](&RedisOptions{
		Addr:      mr.Addr(),
		OpTimeout: time.Second,
	})
	t.Cleanup(func() {
		_ = rc.Close()
	})
	return rc, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	rc, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "k1", "v1", 0))

	got, err := rc.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", got)
}

func TestRedisCache_Miss(t *testing.T) {
	rc, _ := newTestRedisCache(t)

	_, err := rc.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_TTL(t *testing.T) {
	rc, mr := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "k", "v", 30*time.Second))

	mr.FastForward(time.Minute)
	_, err := rc.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	rc, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "k", "v", 0))
	require.NoError(t, rc.Delete(ctx, "k"))

	_, err := rc.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_MGetMSet(t *testing.T) {
	rc, _ := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, rc.MSet(ctx, map[string]string{"a": "1", "b": "2"}, 0))

	vals, errs := rc.MGet(ctx, "a", "c", "b")
	assert.Equal(t, "1", vals[0])
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], ErrCacheMiss)
	assert.Equal(t, "2", vals[2])
	assert.NoError(t, errs[2])
}
