package recurrence

import "github.com/on-the-ground/kosmos/memo"

// Base returns the value of a base case of a lattice, reporting false when
// (n, k) is not one.
type Base[T any] func(n, k int) (T, bool)

// LatticeStep computes the value at (n, k) from lexicographically smaller
// pairs obtained through self. Like Step it must be pure, since deferral
// re-enters unwound frames.
type LatticeStep[T any] func(n, k int, self func(n, k int) T) T

// Lattice is a memoized bivariate recurrence.
type Lattice[T any] struct {
	engine engine[memo.Pair, T]
}

// NewLattice returns a lattice built from base and step. It panics if
// either is nil.
func NewLattice[T any](base Base[T], step LatticeStep[T], opts ...Option[T]) *Lattice[T] {
	if base == nil || step == nil {
		panic("recurrence: lattice base or step is nil")
	}
	o := buildOptions(opts)
	table := o.latTable
	if table == nil {
		table = memo.NewMapTable[memo.Pair, T]()
	}
	negative, domain := o.negative, o.domain

	return &Lattice[T]{engine: engine[memo.Pair, T]{
		name:  o.name,
		table: table,
		step: func(p memo.Pair, self func(memo.Pair) T) T {
			return step(p.N, p.K, func(n, k int) T {
				return self(memo.Pair{N: n, K: k})
			})
		},
		resolve: func(p memo.Pair) (T, bool, error) {
			if domain != nil {
				if v, ok := domain(p.N, p.K); ok {
					return v, true, nil
				}
			}
			if p.N < 0 || p.K < 0 {
				neg := p.N
				if neg >= 0 {
					neg = p.K
				}
				v, err := negative(neg)
				return v, err == nil, err
			}
			if v, ok := base(p.N, p.K); ok {
				return v, true, nil
			}
			var zero T
			return zero, false, nil
		},
		less: func(a, b memo.Pair) bool {
			return a.N < b.N || (a.N == b.N && a.K < b.K)
		},
		budget: o.budget,
		logger: o.logger,
	}}
}

// Value returns the value at (n, k).
func (l *Lattice[T]) Value(n, k int) (T, error) {
	return l.engine.value(memo.Pair{N: n, K: k})
}

// Clear drops every cached value.
func (l *Lattice[T]) Clear() {
	l.engine.clear()
}

// Len reports how many values are cached.
func (l *Lattice[T]) Len() int {
	return l.engine.table.Len()
}

// Name returns the configured name.
func (l *Lattice[T]) Name() string {
	return l.engine.name
}
