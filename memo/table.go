package memo

// Table is a cache of computed values keyed by index.
type Table[K comparable, V any] interface {
	// Load returns the value stored for key, if present.
	Load(key K) (V, bool)
	// Store records value for key. Bounded tables may drop it.
	Store(key K, value V)
	// Clear drops every entry.
	Clear()
	// Len reports the number of entries currently held.
	Len() int
}
