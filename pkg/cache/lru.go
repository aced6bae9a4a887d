package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a thread-safe fixed-capacity cache. When full, the least
// recently used item is evicted and the eviction callback, if any, is
// invoked with it — used for cleanup such as closing resources.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List
	onEvict  func(key K, value V)
	mu       sync.Mutex
}

// NewLRU creates an LRU cache with the given capacity and optional
// eviction callback (nil is fine). Panics on non-positive capacity.
func NewLRU[K comparable, V any](capacity int, onEvict func(key K, value V)) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: LRU capacity must be positive")
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		onEvict:  onEvict,
	}
}

// Get retrieves a value and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Peek retrieves a value without touching recency.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Put inserts or updates a value, evicting the least recently used item
// when over capacity.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})

	if c.order.Len() > c.capacity {
		c.evictOldest()
	}
}

// Remove deletes an item without invoking the eviction callback.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		c.order.Remove(elem)
		delete(c.items, key)
		return e.value, true
	}

	var zero V
	return zero, false
}

// Len reports the current number of cached items.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear removes everything, invoking the eviction callback per item.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for elem := c.order.Front(); elem != nil; elem = elem.Next() {
			e := elem.Value.(*entry[K, V])
			c.onEvict(e.key, e.value)
		}
	}
	c.items = make(map[K]*list.Element)
	c.order.Init()
}

func (c *LRU[K, V]) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
