package recurrence

import "github.com/on-the-ground/kosmos/memo"

// Step computes the value at n from smaller indices obtained through self.
// A step must be pure: when the depth budget defers a deeper index, the
// frames above it unwind and their steps run again once it is cached.
type Step[T any] func(n int, self func(k int) T) T

// Sequence is a memoized univariate recurrence over the non-negative
// integers.
type Sequence[T any] struct {
	engine engine[int, T]
}

// NewSequence returns a sequence whose values at 0..len(base)-1 are base and
// whose later values come from step. It panics if step is nil.
func NewSequence[T any](base []T, step Step[T], opts ...Option[T]) *Sequence[T] {
	if step == nil {
		panic("recurrence: step is nil")
	}
	o := buildOptions(opts)
	table := o.seqTable
	if table == nil {
		table = memo.NewMapTable[int, T]()
	}
	base = append([]T(nil), base...)
	negative := o.negative

	return &Sequence[T]{engine: engine[int, T]{
		name:  o.name,
		table: table,
		step: func(n int, self func(int) T) T {
			return step(n, self)
		},
		resolve: func(n int) (T, bool, error) {
			if n < 0 {
				v, err := negative(n)
				return v, err == nil, err
			}
			if n < len(base) {
				return base[n], true, nil
			}
			var zero T
			return zero, false, nil
		},
		less:   func(a, b int) bool { return a < b },
		budget: o.budget,
		logger: o.logger,
	}}
}

// Value returns the value at n.
func (s *Sequence[T]) Value(n int) (T, error) {
	return s.engine.value(n)
}

// Clear drops every cached value. Values already returned are unaffected.
func (s *Sequence[T]) Clear() {
	s.engine.clear()
}

// Len reports how many values are cached. Base cases are not cached.
func (s *Sequence[T]) Len() int {
	return s.engine.table.Len()
}

// Name returns the configured name.
func (s *Sequence[T]) Name() string {
	return s.engine.name
}
