package query

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/xflash-panda/migemo/pkg/config"
	"github.com/xflash-panda/migemo/pkg/dictionary"
	"github.com/xflash-panda/migemo/pkg/regexgen"
	"github.com/xflash-panda/migemo/pkg/romaji"
)

// cacheKey identifies a memoized query result. regexgen.Operator is a
// plain string-field struct, so it is comparable and usable directly as
// (part of) a map key.
type cacheKey struct {
	input string
	op    regexgen.Operator
}

// Cache wraps Query with an RWMutex-guarded get-or-populate LRU result
// cache plus a singleflight.Group that collapses concurrent identical
// queries into a single computation instead of running each one.
type Cache struct {
	dict   *dictionary.Dictionary
	conv   *romaji.Converter
	cfg    config.Config
	cache  *lru.Cache[cacheKey, string]
	group  singleflight.Group
	mu     sync.RWMutex
	Logger func(format string, args ...interface{})
}

// NewCache builds a Cache over dict/conv using cfg's cache size and
// predictive-search toggle.
func NewCache(dict *dictionary.Dictionary, conv *romaji.Converter, cfg config.Config) (*Cache, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultCacheSize
	}
	c, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, fmt.Errorf("create query LRU cache: %w", err)
	}
	return &Cache{dict: dict, conv: conv, cfg: cfg, cache: c}, nil
}

// Query returns the cached result for (input, op) if present, otherwise
// computes it via QueryWithOptions, with concurrent identical requests
// collapsed by singleflight.
func (c *Cache) Query(input string, op regexgen.Operator) string {
	key := cacheKey{input: input, op: op}

	c.mu.RLock()
	if v, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	v, _, _ := c.group.Do(fmt.Sprintf("%s\x00%v", input, op), func() (interface{}, error) {
		result := QueryWithOptions(input, c.dict, c.conv, op, c.cfg.PredictiveDictionarySearch)
		c.mu.Lock()
		c.cache.Add(key, result)
		c.mu.Unlock()
		if c.Logger != nil {
			c.Logger("query cache miss: input=%q operator=%v len=%d cache_size=%d", input, op, len(result), c.cache.Len())
		}
		return result, nil
	})
	return v.(string)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Purge clears the cache.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
