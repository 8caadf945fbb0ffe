package cache

// Cache is a keyed, insert-oriented store. It does no locking and no
// eviction: callers own the write discipline and the retention policy.
type Cache[K comparable, V any] struct {
	entries map[K]V
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	value, ok := c.entries[key]
	return value, ok
}

// Set stores value under key, overwriting any previous entry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.entries[key] = value
}

func (c *Cache[K, V]) Delete(key K) {
	delete(c.entries, key)
}

func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

func (c *Cache[K, V]) ForEach(fn func(key K, value V)) {
	for key, value := range c.entries {
		fn(key, value)
	}
}
