package service

import "sync"

// UsedImagesCache remembers image URLs already handed out during this
// process lifetime so consecutive responses lean toward different photos.
// Insert is idempotent and safe for concurrent writers.
type UsedImagesCache struct {
	mu   sync.RWMutex
	used map[string]struct{}
}

func NewUsedImagesCache() *UsedImagesCache {
	return &UsedImagesCache{used: make(map[string]struct{})}
}

func (c *UsedImagesCache) Add(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.used[url] = struct{}{}
}

func (c *UsedImagesCache) Has(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.used[url]
	return ok
}

func (c *UsedImagesCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.used)
}

func (c *UsedImagesCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.used = make(map[string]struct{})
}
