//go:build integration

package kv

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(testutil.StartRedis(t, testutil.RedisImage))

	t.Run("get missing key", func(t *testing.T) {
		_, found, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("setnx claims once", func(t *testing.T) {
		ok, err := store.SetNX(ctx, "nx", "0", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.SetNX(ctx, "nx", "0", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("compare and delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "owned", "a", time.Minute))

		deleted, err := store.DeleteIfEquals(ctx, "owned", "b")
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = store.DeleteIfEquals(ctx, "owned", "a")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("hash round trip", func(t *testing.T) {
		require.NoError(t, store.HSet(ctx, "h", "token", "{}"))

		value, found, err := store.HGet(ctx, "h", "token")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "{}", value)

		ok, err := store.Expire(ctx, "h", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		all, err := store.HGetAll(ctx, "h")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"token": "{}"}, all)
	})
}
