// Package memory provides the in-process entity store. All state lives in
// ordered slices guarded by one lock per collection; records handed out are
// clones, so callers never hold a live reference into the store.
package memory

import (
	"sync"

	"github.com/oksasatya/happnhere-api/internal/domain/repository"
)

// Entity is the constraint for records kept in a Collection.
type Entity[T any] interface {
	EntityID() int64
	WithID(id int64) T
	Clone() T
}

// Collection is an insertion-ordered set of records of one entity kind.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	seq   Sequence
	items []T
}

func NewCollection[T Entity[T]]() *Collection[T] {
	return &Collection[T]{}
}

// Insert assigns the next id to rec and appends it.
func (c *Collection[T]) Insert(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(rec)
}

// InsertUnless inserts rec only if conflict reports false for every stored
// record. The check and the insert happen under the same lock.
func (c *Collection[T]) InsertUnless(rec T, conflict func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if conflict(it) {
			var zero T
			return zero, false
		}
	}
	return c.insertLocked(rec), true
}

func (c *Collection[T]) insertLocked(rec T) T {
	stored := rec.WithID(c.seq.Next()).Clone()
	c.items = append(c.items, stored)
	return stored.Clone()
}

func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Find returns the first record, in insertion order, matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if pred(it) {
			return it.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the record with the result of mutate. The record id is
// kept regardless of what mutate returns. If mutate fails nothing changes.
func (c *Collection[T]) Update(id int64, mutate func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i := c.indexLocked(id)
	if i < 0 {
		return zero, repository.ErrNotFound
	}
	next, err := mutate(c.items[i].Clone())
	if err != nil {
		return zero, err
	}
	c.items[i] = next.WithID(id).Clone()
	return c.items[i].Clone(), nil
}

func (c *Collection[T]) Delete(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// List returns every record in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it.Clone())
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) indexLocked(id int64) int {
	for i, it := range c.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}
