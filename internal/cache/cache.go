// Package cache holds the in-process report cache. Keys are explicit
// (tenant, computation kind, range) tuples and every write that can change a
// report goes through InvalidateOrg, never through an implicit global flush.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

type Cache struct {
	c *ristretto.Cache[string, []byte]

	mu      sync.Mutex
	orgKeys map[string]map[string]struct{}
}

// New creates a ristretto-backed cache. maxCostBytes caps the total size of
// cached values.
func New(maxCostBytes int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxCostBytes / 100 * 10, // ~10x expected items
		MaxCost:     maxCostBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{
		c:       c,
		orgKeys: make(map[string]map[string]struct{}),
	}, nil
}

// Key builds a cache key from the tenant, the computation kind and the range
// (or date) it covers.
func Key(orgID, kind string, parts ...string) string {
	key := fmt.Sprintf("%s:%s", kind, orgID)
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

func (c *Cache) Get(key string) ([]byte, bool) {
	return c.c.Get(key)
}

// Set stores a value under the tenant's key list so InvalidateOrg can find
// it later. ristretto has no prefix deletion, hence the explicit registry.
func (c *Cache) Set(orgID, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	keys, ok := c.orgKeys[orgID]
	if !ok {
		keys = make(map[string]struct{})
		c.orgKeys[orgID] = keys
	}
	keys[key] = struct{}{}
	c.mu.Unlock()

	c.c.SetWithTTL(key, value, int64(len(value)), ttl)
}

// InvalidateOrg drops every cached computation for one tenant. Called after
// any payment, cost or extra-income write for that tenant.
func (c *Cache) InvalidateOrg(orgID string) {
	c.mu.Lock()
	keys := c.orgKeys[orgID]
	delete(c.orgKeys, orgID)
	c.mu.Unlock()

	for key := range keys {
		c.c.Del(key)
	}
}

func (c *Cache) Close() {
	c.c.Close()
}

var (
	reports     *Cache
	reportsOnce sync.Once
)

// Reports returns the process-wide report cache (32 MB).
func Reports() *Cache {
	reportsOnce.Do(func() {
		var err error
		reports, err = New(32 << 20)
		if err != nil {
			panic(err)
		}
	})
	return reports
}
