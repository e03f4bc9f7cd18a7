package query

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xflash-panda/migemo/pkg/config"
	"github.com/xflash-panda/migemo/pkg/regexgen"
	"github.com/xflash-panda/migemo/pkg/romaji"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	d := loadTestDictionary(t)
	conv := romaji.New()
	c, err := NewCache(d, conv, config.Default())
	require.NoError(t, err)
	return c
}

func TestCacheMissThenHit(t *testing.T) {
	c := newTestCache(t)
	assert.Equal(t, 0, c.Len())

	first := c.Query("kensaku", regexgen.Default)
	assert.Equal(t, 1, c.Len(), "cache should have 1 entry after a miss")

	second := c.Query("kensaku", regexgen.Default)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.Len(), "cache size should not grow on a hit")
}

func TestCacheKeyedByOperatorToo(t *testing.T) {
	c := newTestCache(t)

	c.Query("kensaku", regexgen.Default)
	c.Query("kensaku", regexgen.Vim)
	assert.Equal(t, 2, c.Len(), "same input under different operators caches separately")
}

func TestCachePurge(t *testing.T) {
	c := newTestCache(t)
	c.Query("kensaku", regexgen.Default)
	require.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCacheLoggerCalledOnMiss(t *testing.T) {
	c := newTestCache(t)
	var calls int
	var mu sync.Mutex
	c.Logger = func(format string, args ...interface{}) {
		mu.Lock()
		calls++
		mu.Unlock()
	}

	c.Query("kensaku", regexgen.Default)
	c.Query("kensaku", regexgen.Default) // hit, must not log again

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
}

func TestCacheConcurrentIdenticalQueriesCollapse(t *testing.T) {
	c := newTestCache(t)

	const workers = 32
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = c.Query("kensaku", regexgen.Default)
		}(i)
	}
	wg.Wait()

	want := results[0]
	for _, r := range results {
		assert.Equal(t, want, r)
	}
	assert.Equal(t, 1, c.Len())
}

func TestNewCacheFallsBackToDefaultSizeWhenUnset(t *testing.T) {
	d := loadTestDictionary(t)
	conv := romaji.New()
	c, err := NewCache(d, conv, config.Config{CacheSize: 0})
	require.NoError(t, err)
	assert.NotNil(t, c)
}
