package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
)

func TestLRU(t *testing.T) {
	t.Run("evicts least recently used", func(t *testing.T) {
		c := cache.New[string, int](2)
		c.Put("a", 1)
		c.Put("b", 2)

		_, ok := c.Get("a")
		require.True(t, ok)

		c.Put("c", 3)
		assert.Equal(t, 2, c.Len())

		_, ok = c.Get("b")
		assert.False(t, ok, "b was the least recently used")
		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("put updates in place", func(t *testing.T) {
		c := cache.New[string, int](2)
		c.Put("a", 1)
		c.Put("a", 10)
		assert.Equal(t, 1, c.Len())
		v, _ := c.Get("a")
		assert.Equal(t, 10, v)
	})

	t.Run("remove", func(t *testing.T) {
		c := cache.New[string, int](2)
		c.Put("a", 1)
		assert.True(t, c.Remove("a"))
		assert.False(t, c.Remove("a"))
		assert.Zero(t, c.Len())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		assert.Panics(t, func() { cache.New[string, int](0) })
	})
}

func TestLRU_GetOrCreate(t *testing.T) {
	c := cache.New[string, int](4)
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrCreate("answer", create)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrCreate("answer", create)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = c.GetOrCreate("broken", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("broken")
	assert.False(t, ok)
}
