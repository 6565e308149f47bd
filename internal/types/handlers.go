// Package types contains shared generic containers.
package types

import (
	"iter"
	"slices"
	"sync"
)

// Handlers is an ordered set of registered handlers.
// Zero value is ready to use. All methods are safe for concurrent use.
type Handlers[T any] struct {
	mu     sync.RWMutex
	items  []handler[T]
	nextID uint64
}

type handler[T any] struct {
	id uint64
	fn T
}

// Len returns the number of registered handlers.
func (h *Handlers[T]) Len() int {
	if h == nil {
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Add registers fn and returns a func that removes it.
// The remove func can be called multiple times.
func (h *Handlers[T]) Add(fn T) (remove func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.items = append(h.items, handler[T]{id, fn})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			h.items = slices.DeleteFunc(h.items, func(e handler[T]) bool { return e.id == id })
			h.mu.Unlock()
		})
	}
}

// All iterates over a snapshot of registered handlers in registration order.
// Handlers added or removed during iteration do not affect it.
func (h *Handlers[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if h == nil {
			return
		}

		h.mu.RLock()
		items := slices.Clone(h.items)
		h.mu.RUnlock()

		for _, e := range items {
			if !yield(e.fn) {
				return
			}
		}
	}
}

// Clear removes all handlers.
func (h *Handlers[T]) Clear() {
	h.mu.Lock()
	h.items = nil
	h.mu.Unlock()
}
