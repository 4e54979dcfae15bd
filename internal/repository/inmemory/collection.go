package inmemory

import (
	"sync"

	repo "afterReach/internal/repository"
)

// Collection is an ordered in-memory set of records keyed by id.
// Values are stored and returned by copy; ids keeps display order.
type Collection[T any] struct {
	storage map[string]T
	mtx     *sync.RWMutex
	ids     []string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		storage: make(map[string]T),
		mtx:     &sync.RWMutex{},
		ids:     []string{},
	}
}

// Prepend inserts item at the head, for most-recent-first lists.
func (c *Collection[T]) Prepend(id string, item T) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, ok := c.storage[id]; ok {
		return repo.ErrDuplicateID
	}
	c.storage[id] = item
	c.ids = append([]string{id}, c.ids...)
	return nil
}

// Append inserts item at the tail.
func (c *Collection[T]) Append(id string, item T) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, ok := c.storage[id]; ok {
		return repo.ErrDuplicateID
	}
	c.storage[id] = item
	c.ids = append(c.ids, id)
	return nil
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	item, ok := c.storage[id]
	if !ok {
		var zero T
		return zero, repo.ErrNotFound
	}
	return item, nil
}

func (c *Collection[T]) Has(id string) bool {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	_, ok := c.storage[id]
	return ok
}

// Replace swaps the stored value in place, keeping its position.
func (c *Collection[T]) Replace(id string, item T) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if _, ok := c.storage[id]; !ok {
		return repo.ErrNotFound
	}
	c.storage[id] = item
	return nil
}

// Update applies fn to a copy of the record and stores the result unless fn fails.
func (c *Collection[T]) Update(id string, fn func(*T) error) (T, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	item, ok := c.storage[id]
	if !ok {
		var zero T
		return zero, repo.ErrNotFound
	}
	if err := fn(&item); err != nil {
		var zero T
		return zero, err
	}
	c.storage[id] = item
	return item, nil
}

// UpdateWhere applies fn to every record and returns how many fn reported as changed.
func (c *Collection[T]) UpdateWhere(fn func(*T) bool) int {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	changed := 0
	for _, id := range c.ids {
		item := c.storage[id]
		if fn(&item) {
			c.storage[id] = item
			changed++
		}
	}
	return changed
}

func (c *Collection[T]) Remove(id string) (T, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	item, ok := c.storage[id]
	if !ok {
		var zero T
		return zero, repo.ErrNotFound
	}
	delete(c.storage, id)
	for ind, val := range c.ids {
		if val == id {
			c.ids = append(c.ids[:ind], c.ids[ind+1:]...)
			break
		}
	}
	return item, nil
}

// List returns every record in display order.
func (c *Collection[T]) List() []T {
	return c.Filter(nil)
}

// Filter returns, in display order, the records keep accepts. A nil keep accepts all.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	res := make([]T, 0, len(c.ids))
	for _, id := range c.ids {
		item := c.storage[id]
		if keep != nil && !keep(item) {
			continue
		}
		res = append(res, item)
	}
	return res
}

func (c *Collection[T]) Len() int {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	return len(c.ids)
}
