package plans

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"craftatlas/internal/domain/planning"
)

const cacheCapacity = 4096

// Cache memoizes planner results per composite request key. Results go in
// and come out as deep copies: callers may freely mutate what they receive
// without corrupting later hits.
type Cache struct {
	entries *lru.Cache[string, planning.Result]
}

func NewCache() *Cache {
	entries, err := lru.New[string, planning.Result](cacheCapacity)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Cache{entries: entries}
}

func cacheKey(mode planning.Mode, itemID string, quantity int, recipeID string, maxDepth int) string {
	if recipeID == "" {
		recipeID = "auto"
	}
	return fmt.Sprintf("%s:%s:%d:%s:%d", mode, itemID, quantity, recipeID, maxDepth)
}

func (c *Cache) get(key string) (planning.Result, bool) {
	res, ok := c.entries.Get(key)
	if !ok {
		return planning.Result{}, false
	}
	return res.Clone(), true
}

func (c *Cache) add(key string, res planning.Result) {
	c.entries.Add(key, res.Clone())
}

// Clear purges every entry and reports how many were evicted. Called when
// the underlying recipe dataset changes so stale plans are never served.
func (c *Cache) Clear() int {
	n := c.entries.Len()
	c.entries.Purge()
	return n
}
