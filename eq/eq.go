// Package eq provides equality predicates for law checking.
package eq

import (
	"math/big"
	"slices"
)

// Eq reports whether a and b are equal.
type Eq[T any] func(a, b T) bool

// Comparable uses ==.
func Comparable[T comparable]() Eq[T] {
	return func(a, b T) bool { return a == b }
}

// BigInt compares by value. Two nil pointers are equal.
func BigInt() Eq[*big.Int] {
	return func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}
}

// BigRat compares by value. Two nil pointers are equal.
func BigRat() Eq[*big.Rat] {
	return func(a, b *big.Rat) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}
}

// Slices compares element-wise with elem.
func Slices[T any](elem Eq[T]) Eq[[]T] {
	return func(a, b []T) bool {
		return slices.EqualFunc(a, b, func(x, y T) bool { return elem(x, y) })
	}
}

// By compares the keys produced by key.
func By[T any, K comparable](key func(T) K) Eq[T] {
	return func(a, b T) bool { return key(a) == key(b) }
}
