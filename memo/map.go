package memo

import "sync"

type mapTable[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewMapTable returns an unbounded table.
func NewMapTable[K comparable, V any]() Table[K, V] {
	return &mapTable[K, V]{entries: make(map[K]V)}
}

func (t *mapTable[K, V]) Load(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[key]
	return v, ok
}

func (t *mapTable[K, V]) Store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[key] = value
}

func (t *mapTable[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[K]V)
}

func (t *mapTable[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
