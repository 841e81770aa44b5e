package storage

import (
	"sync"

	"agriai/pkg/platform/sentinel"
)

// MemoryLog is the in-memory Log.
type MemoryLog[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewMemoryLog[T any]() *MemoryLog[T] {
	return &MemoryLog[T]{}
}

func (l *MemoryLog[T]) Append(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// All returns a copy of the items in insertion order.
func (l *MemoryLog[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(make([]T, 0, len(l.items)), l.items...)
}

func (l *MemoryLog[T]) Filter(keep func(T) bool) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *MemoryLog[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// MemoryKeyed is the in-memory Keyed collection.
type MemoryKeyed[K comparable, T any] struct {
	mu    sync.RWMutex
	items map[K]T
	order []K
}

func NewMemoryKeyed[K comparable, T any]() *MemoryKeyed[K, T] {
	return &MemoryKeyed[K, T]{items: make(map[K]T)}
}

// Put stores item under key. The whole value is replaced; nothing from a
// previous value is merged in.
func (m *MemoryKeyed[K, T]) Put(key K, item T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.items[key]
	if !exists {
		m.order = append(m.order, key)
	}
	m.items[key] = item
	return exists
}

func (m *MemoryKeyed[K, T]) Get(key K) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[key]
	if !ok {
		var zero T
		return zero, sentinel.ErrNotFound
	}
	return item, nil
}

// All returns the values in first-insertion order of their keys.
func (m *MemoryKeyed[K, T]) All() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.items[k])
	}
	return out
}

func (m *MemoryKeyed[K, T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

var _ Log[int] = (*MemoryLog[int])(nil)

var _ Keyed[string, int] = (*MemoryKeyed[string, int])(nil)
