package cache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/databinder/pkg/cache"
)

func TestLRU_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.NewLRU[string, int](3)
		c.Put("a", 1)
		c.Put("b", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get missing", func(t *testing.T) {
		c := cache.NewLRU[string, int](1)
		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, val)
	})

	t.Run("update keeps size", func(t *testing.T) {
		c := cache.NewLRU[string, int](2)
		c.Put("a", 1)
		c.Put("a", 2)

		val, _ := c.Get("a")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("invalid capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.NewLRU[string, int](0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	c := cache.NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// touch a so b becomes the oldest
	c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_GetOrLoad(t *testing.T) {
	c := cache.NewLRU[int, int](4)
	calls := 0
	square := func(k int) int {
		calls++
		return k * k
	}

	assert.Equal(t, 9, c.GetOrLoad(3, square))
	assert.Equal(t, 9, c.GetOrLoad(3, square))
	assert.Equal(t, 1, calls)
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.NewLRU[int, int](8)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.GetOrLoad(n%10, func(k int) int { return k })
			c.Get(n % 10)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 8)
}
