package recurrence

import (
	"fmt"

	"github.com/on-the-ground/kosmos/memo"
	"go.uber.org/zap"
)

// DefaultDepthBudget bounds the nesting of self calls before an evaluation
// is deferred to the explicit stack.
const DefaultDepthBudget = 256

// NegativePolicy decides the value of a negative index.
type NegativePolicy[T any] func(n int) (T, error)

// RejectNegative fails every negative index with ErrNegativeIndex.
func RejectNegative[T any]() NegativePolicy[T] {
	return func(n int) (T, error) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
}

// ZeroForNegative defines every negative index as zero.
func ZeroForNegative[T any](zero T) NegativePolicy[T] {
	return func(int) (T, error) {
		return zero, nil
	}
}

// NegativeFunc uses fn for negative indices.
func NegativeFunc[T any](fn func(n int) (T, error)) NegativePolicy[T] {
	return fn
}

// Option configures a Sequence or a Lattice.
type Option[T any] func(*options[T])

type options[T any] struct {
	name     string
	logger   *zap.Logger
	budget   int
	negative NegativePolicy[T]
	domain   func(n, k int) (T, bool)
	seqTable memo.Table[int, T]
	latTable memo.Table[memo.Pair, T]
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		name:     "recurrence",
		logger:   zap.NewNop(),
		budget:   DefaultDepthBudget,
		negative: RejectNegative[T](),
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the name used in logs and errors.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDepthBudget bounds native recursion depth. Values below 1 keep the
// default.
func WithDepthBudget[T any](budget int) Option[T] {
	return func(o *options[T]) {
		if budget > 0 {
			o.budget = budget
		}
	}
}

// WithNegative sets the negative-index policy. The default is RejectNegative.
func WithNegative[T any](policy NegativePolicy[T]) Option[T] {
	return func(o *options[T]) {
		if policy != nil {
			o.negative = policy
		}
	}
}

// WithDomain defines lattice values outside the recursive region, such as
// zero above the diagonal of a triangle. It is consulted before negative
// indices and base cases. Sequences ignore it.
func WithDomain[T any](domain func(n, k int) (T, bool)) Option[T] {
	return func(o *options[T]) {
		o.domain = domain
	}
}

// WithSequenceTable replaces the memo table of a Sequence.
func WithSequenceTable[T any](table memo.Table[int, T]) Option[T] {
	return func(o *options[T]) {
		o.seqTable = table
	}
}

// WithLatticeTable replaces the memo table of a Lattice.
func WithLatticeTable[T any](table memo.Table[memo.Pair, T]) Option[T] {
	return func(o *options[T]) {
		o.latTable = table
	}
}
