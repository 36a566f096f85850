package cache_test

import (
	"context"
	"testing"

	"loadout-manager/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("UseBeforeInit", func(t *testing.T) {
		m := cache.NewMemory()
		_, _, err := m.Get(ctx, "config", "manifestVersion")
		assert.ErrorIs(t, err, cache.ErrNamespaceNotInitialized)
		assert.ErrorIs(t, m.Put(ctx, "config", "k", []byte("v")), cache.ErrNamespaceNotInitialized)
	})

	t.Run("PutGet", func(t *testing.T) {
		m := cache.NewMemory()
		require.NoError(t, m.Init(ctx, "config"))

		_, found, err := m.Get(ctx, "config", "manifestVersion")
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, m.Put(ctx, "config", "manifestVersion", []byte("v1")))
		require.NoError(t, m.Put(ctx, "config", "manifestVersion", []byte("v2")))

		v, found, err := m.Get(ctx, "config", "manifestVersion")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v2", string(v))
	})

	t.Run("AddRejectsDuplicates", func(t *testing.T) {
		m := cache.NewMemory()
		require.NoError(t, m.Init(ctx, "manifest"))
		require.NoError(t, m.Add(ctx, "manifest", "A", []byte("{}")))
		assert.ErrorIs(t, m.Add(ctx, "manifest", "A", []byte("{}")), cache.ErrKeyExists)
	})

	t.Run("KeysSortedAndClear", func(t *testing.T) {
		m := cache.NewMemory()
		require.NoError(t, m.Init(ctx, "manifest", "config"))
		require.NoError(t, m.Add(ctx, "manifest", "b", nil))
		require.NoError(t, m.Add(ctx, "manifest", "a", nil))
		require.NoError(t, m.Put(ctx, "config", "manifestVersion", []byte("v1")))

		keys, err := m.Keys(ctx, "manifest")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, keys)

		require.NoError(t, m.Clear(ctx, "manifest"))
		keys, err = m.Keys(ctx, "manifest")
		require.NoError(t, err)
		assert.Empty(t, keys)

		// Other namespaces are untouched
		_, found, err := m.Get(ctx, "config", "manifestVersion")
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("InitKeepsData", func(t *testing.T) {
		m := cache.NewMemory()
		require.NoError(t, m.Init(ctx, "config"))
		require.NoError(t, m.Put(ctx, "config", "k", []byte("v")))
		require.NoError(t, m.Init(ctx, "config"))
		_, found, err := m.Get(ctx, "config", "k")
		require.NoError(t, err)
		assert.True(t, found)
	})
}
