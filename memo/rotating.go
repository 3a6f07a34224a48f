package memo

import (
	"sync"
	"sync/atomic"
)

// RotatingTable is a bounded table made of two generations.
// Stores go to the head generation; once it holds maxSize entries the older
// generation is dropped and becomes the new, empty head. Loads look in the
// head first, then in the previous generation.
type RotatingTable[K comparable, V any] struct {
	mu      sync.Mutex // serializes rotation
	gens    [2]*sync.Map
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewRotatingTable returns a table holding at most 2*maxSize entries.
// It panics if maxSize is zero.
func NewRotatingTable[K comparable, V any](maxSize uint32) *RotatingTable[K, V] {
	if maxSize == 0 {
		panic("memo: maxSize should be greater than 0")
	}
	return &RotatingTable[K, V]{
		gens:    [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (t *RotatingTable[K, V]) Load(key K) (V, bool) {
	t.mu.Lock()
	head := t.headIdx.Load()
	cur, prev := t.gens[head], t.gens[1-head]
	t.mu.Unlock()

	if v, ok := cur.Load(key); ok {
		return v.(V), true
	}
	if v, ok := prev.Load(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

func (t *RotatingTable[K, V]) Store(key K, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size.Load() >= t.maxSize {
		next := 1 - t.headIdx.Load()
		t.gens[next] = &sync.Map{}
		t.headIdx.Store(next)
		t.size.Store(0)
	}
	if _, loaded := t.gens[t.headIdx.Load()].Swap(key, value); !loaded {
		t.size.Add(1)
	}
}

func (t *RotatingTable[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gens = [2]*sync.Map{{}, {}}
	t.size.Store(0)
}

// Len counts entries across both generations. A key present in both is
// counted twice.
func (t *RotatingTable[K, V]) Len() int {
	t.mu.Lock()
	gens := t.gens
	t.mu.Unlock()

	n := 0
	for _, g := range gens {
		g.Range(func(_, _ any) bool {
			n++
			return true
		})
	}
	return n
}
