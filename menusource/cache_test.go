package menusource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisCache_Integration requires a running Redis and skips otherwise.
func TestRedisCache_Integration(t *testing.T) {
	cache := NewRedisCache("localhost:6379", "", 0)
	defer cache.Close()
	ctx := context.Background()
	if err := cache.Ping(ctx); err != nil {
		t.Skip("Skipping Redis integration test: redis not available")
	}

	key := "pizzapi:test:" + t.Name()
	_, err := cache.Get(ctx, key)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, key, []byte(`{"Variants":{}}`), time.Second))
	b, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Variants":{}}`, string(b))
}
