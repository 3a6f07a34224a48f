// Package sequences defines classical integer sequences on top of the
// recurrence engine. Every value is an arbitrary-precision integer and
// every intermediate sum, product, power, binomial and sign term is computed
// with math/big.
//
// Each sequence fixes its own negative-index convention:
//
//	Fibonacci, Lucas, Factorial, Catalan, Motzkin, Bell,
//	Derangements, LabeledDAGs, Delannoy        error (ErrNegativeIndex)
//	Partition                                  zero
//	DoubleFactorial                            (-1)!! = 1, below -1 error
//	Binomial, StirlingFirst, StirlingSecond    negative n error,
//	                                           k outside [0, n] zero
//
// Values returned by Integers and IntegerLattice are copies; mutating them
// never reaches the cache.
package sequences
