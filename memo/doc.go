// Package memo provides the cache tables a recurrence owns.
//
// A table maps an index to a previously computed value. Values stored in a
// table are treated as immutable: the cache is an optimization over a pure
// function of the index, so a table may evict entries at any time and the
// only cost is recomputation.
//
// Three tables are provided:
//   - NewMapTable: unbounded, grows monotonically until Clear.
//   - NewRotatingTable: bounded by entry count, two generations that rotate
//     when the head generation fills.
//   - NewRistrettoTable: bounded TinyLFU cache backed by ristretto.
//
// All tables are safe for concurrent use.
package memo
