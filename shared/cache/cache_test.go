package cache_test

import (
	"context"
	"hoteladmin/infras/otel/mocks"
	"hoteladmin/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	type payload struct {
		Mode string `json:"mode"`
	}

	require.NoError(t, c.Save(ctx, "panel:s1:hotel", payload{Mode: "adding"}, 60))

	var got payload
	require.NoError(t, c.Get(ctx, "panel:s1:hotel", &got))
	assert.Equal(t, "adding", got.Mode)

	err := c.Get(ctx, "panel:s1:room", &got)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_StringValue(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	require.NoError(t, c.Save(ctx, "plain", "value", 60))

	var got string
	require.NoError(t, c.Get(ctx, "plain", &got))
	assert.Equal(t, "value", got)
}

func TestRedisCache_TTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	require.NoError(t, c.Save(ctx, "limiter:1", 3, 10))

	mr.FastForward(11 * time.Second)

	var count int
	assert.ErrorIs(t, c.Get(ctx, "limiter:1", &count), cache.Nil)
}
