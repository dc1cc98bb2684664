package dataset

import (
	"sync"

	"github.com/latticek/incognito/table"
)

// Cache memoizes Load by (dir, name), so repeated CLI invocations within
// one process (or one `run` command touching the same dataset twice)
// don't re-parse the CSV.
type Cache struct {
	mu    sync.Mutex
	byKey map[cacheKey]table.Table
}

type cacheKey struct{ dir, name string }

// NewCache returns an empty Cache ready to use.
func NewCache() *Cache {
	return &Cache{byKey: make(map[cacheKey]table.Table)}
}

// Load returns the cached Table for (dir, name), loading and caching it
// on first request. The returned Table is never mutated by this package,
// so sharing it across callers is safe.
func (c *Cache) Load(dir, name string) (table.Table, error) {
	key := cacheKey{dir: dir, name: name}

	c.mu.Lock()
	t, ok := c.byKey[key]
	c.mu.Unlock()
	if ok {
		return t, nil
	}

	t, err := Load(dir, name)
	if err != nil {
		return table.Table{}, err
	}

	c.mu.Lock()
	c.byKey[key] = t
	c.mu.Unlock()

	return t, nil
}
