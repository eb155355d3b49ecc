package devserver

import "sync"

// collection is an in-memory resource backing one REST collection.
// Listing preserves insertion order; the server assigns ids.
type collection[Req any, T any] struct {
	build func(req Req, seq int) T
	apply func(existing T, req Req) T
	idOf  func(T) string

	mu    sync.Mutex
	items []T
	seq   int
}

func (c *collection[Req, T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

func (c *collection[Req, T]) get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[Req, T]) create(req Req) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	item := c.build(req, c.seq)
	c.items = append(c.items, item)
	return item
}

func (c *collection[Req, T]) update(id string, req Req) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			updated := c.apply(item, req)
			c.items[i] = updated
			return updated, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[Req, T]) delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}
