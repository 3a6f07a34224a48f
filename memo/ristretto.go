package memo

import (
	"fmt"
	"sync/atomic"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// entry keeps the original key so that two indices sharing a hash can never
// read each other's value.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// RistrettoTable is a bounded table backed by a ristretto cache.
type RistrettoTable[K comparable, V any] struct {
	cache *ristretto.Cache[uint64, entry[K, V]]
	hash  func(K) uint64
	count atomic.Int64
}

// NewRistrettoTable returns a table holding roughly maxEntries values.
// hash maps an index to the cache key; HashInt and HashPair are suitable.
func NewRistrettoTable[K comparable, V any](maxEntries int64, hash func(K) uint64) (*RistrettoTable[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("memo: maxEntries should be greater than 0, got %d", maxEntries)
	}
	if hash == nil {
		return nil, fmt.Errorf("memo: hash function is nil")
	}
	t := &RistrettoTable[K, V]{hash: hash}
	cache, err := ristretto.NewCache(&ristretto.Config[uint64, entry[K, V]]{
		NumCounters:        10 * maxEntries, // keys to track frequency of
		MaxCost:            maxEntries,      // every entry costs 1
		BufferItems:        64,
		IgnoreInternalCost: true,
		OnEvict: func(*ristretto.Item[entry[K, V]]) {
			t.count.Add(-1)
		},
	})
	if err != nil {
		return nil, err
	}
	t.cache = cache
	return t, nil
}

func (t *RistrettoTable[K, V]) Load(key K) (V, bool) {
	e, ok := t.cache.Get(t.hash(key))
	if !ok || e.key != key {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (t *RistrettoTable[K, V]) Store(key K, value V) {
	h := t.hash(key)
	// An occupied slot is overwritten, not added.
	_, occupied := t.cache.Get(h)
	if t.cache.Set(h, entry[K, V]{key: key, value: value}, 1) && !occupied {
		t.count.Add(1)
	}
	// Sets are buffered; wait so the next Load observes this one.
	t.cache.Wait()
}

func (t *RistrettoTable[K, V]) Clear() {
	t.cache.Clear()
	t.count.Store(0)
}

// Len is approximate: ristretto may reject a buffered set after admission.
func (t *RistrettoTable[K, V]) Len() int {
	if n := t.count.Load(); n > 0 {
		return int(n)
	}
	return 0
}

// Close releases the cache goroutines.
func (t *RistrettoTable[K, V]) Close() {
	t.cache.Close()
}
