package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunStatsCache(t *testing.T) (*RunStatsCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	return NewRunStatsCache(rds), mr
}

func TestRunStatsCache_Incr(t *testing.T) {
	c, mr := newRunStatsCache(t)
	ctx := context.Background()

	require.NoError(t, c.Incr(ctx, "r1", "run", 0, 10, 2))
	require.NoError(t, c.Incr(ctx, "r1", "run", 0, 5, 1))
	require.NoError(t, c.Incr(ctx, "r1", "run", 1, 7, 0))
	require.NoError(t, c.Incr(ctx, "r1", "prepare", 0, 100, 3))

	succeeded, failed := c.Get(ctx, "r1", "run", 0)
	assert.Equal(t, int64(15), succeeded)
	assert.Equal(t, int64(3), failed)

	succeeded, failed, err := c.Totals(ctx, "r1", "run")
	require.NoError(t, err)
	assert.Equal(t, int64(22), succeeded)
	assert.Equal(t, int64(3), failed)

	assert.True(t, mr.TTL("hongbao:run:r1") > 0)
}

func TestRunStatsCache_Missing(t *testing.T) {
	c, _ := newRunStatsCache(t)

	succeeded, failed := c.Get(context.Background(), "none", "run", 3)
	assert.Equal(t, int64(0), succeeded)
	assert.Equal(t, int64(0), failed)

	succeeded, failed, err := c.Totals(context.Background(), "none", "run")
	require.NoError(t, err)
	assert.Zero(t, succeeded)
	assert.Zero(t, failed)
}
