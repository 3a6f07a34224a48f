// Package recurrence evaluates recursively defined sequences with a
// per-object memo table.
//
// A recurrence is built from its base cases and a step function. The step
// receives the index being computed and a self callback; every call to self
// goes through the same cached path, so a step may fan out into any number
// of smaller indices and each distinct index is stored at most once until
// the table is cleared.
//
//	fib := recurrence.NewSequence(
//		[]*big.Int{big.NewInt(0), big.NewInt(1)},
//		func(n int, self func(int) *big.Int) *big.Int {
//			return new(big.Int).Add(self(n-1), self(n-2))
//		},
//	)
//	v, err := fib.Value(90)
//
// Evaluation is top-down. Native recursion is bounded by a depth budget:
// when a request would nest deeper, the evaluation unwinds, computes the
// deeper index first from an explicit stack, and retries. A retry re-enters
// the steps of the unwound frames, so steps must be pure and may run more
// than once for an index; for a chain like Fibonacci each index runs at most
// twice. Requests for an index that is not strictly smaller than the one
// being computed are domain errors, as are negative indices unless a
// NegativePolicy says otherwise.
//
// Evaluations of one recurrence are serialized; lookups of cached indices
// do not wait for them. A step must recurse through self, never through the
// recurrence's own Value method.
//
// Values handed out are the cached values themselves. Steps must treat the
// results of self as read-only; the sequences package wraps big integers
// with defensive copies.
package recurrence
