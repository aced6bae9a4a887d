package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solara-ai/notify/pkg/cache"
)

func TestLRU(t *testing.T) {
	t.Parallel()

	t.Run("basic put and get", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2, nil)
		c.Put("a", 1)
		c.Put("b", 2)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("evicts the least recently used", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2, nil)
		c.Put("a", 1)
		c.Put("b", 2)

		// Touch "a" so "b" becomes the eviction candidate.
		_, ok := c.Get("a")
		require.True(t, ok)

		c.Put("c", 3)

		_, ok = c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		_, ok = c.Get("c")
		assert.True(t, ok)
	})

	t.Run("eviction callback fires with the evicted pair", func(t *testing.T) {
		t.Parallel()

		var evictedKey string
		var evictedVal int
		c := cache.NewLRU(1, func(k string, v int) {
			evictedKey = k
			evictedVal = v
		})

		c.Put("a", 1)
		c.Put("b", 2)

		assert.Equal(t, "a", evictedKey)
		assert.Equal(t, 1, evictedVal)
	})

	t.Run("peek does not touch recency", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2, nil)
		c.Put("a", 1)
		c.Put("b", 2)

		v, ok := c.Peek("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		// "a" stays the oldest despite the peek.
		c.Put("c", 3)
		_, ok = c.Peek("a")
		assert.False(t, ok)
	})

	t.Run("update moves the key to the front", func(t *testing.T) {
		t.Parallel()

		c := cache.NewLRU[string, int](2, nil)
		c.Put("a", 1)
		c.Put("b", 2)
		c.Put("a", 10)
		c.Put("c", 3)

		v, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, 10, v)
		_, ok = c.Get("b")
		assert.False(t, ok)
	})

	t.Run("remove skips the eviction callback", func(t *testing.T) {
		t.Parallel()

		calls := 0
		c := cache.NewLRU(2, func(string, int) { calls++ })
		c.Put("a", 1)

		v, ok := c.Remove("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Zero(t, calls)
		assert.Zero(t, c.Len())

		_, ok = c.Remove("a")
		assert.False(t, ok)
	})

	t.Run("clear invokes the callback per item", func(t *testing.T) {
		t.Parallel()

		calls := 0
		c := cache.NewLRU(3, func(string, int) { calls++ })
		c.Put("a", 1)
		c.Put("b", 2)

		c.Clear()
		assert.Equal(t, 2, calls)
		assert.Zero(t, c.Len())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { cache.NewLRU[string, int](0, nil) })
	})
}
