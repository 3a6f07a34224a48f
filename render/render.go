// Package render turns values into text for counterexample reports.
package render

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Printer renders a value.
type Printer[T any] func(T) string

// Default uses %v.
func Default[T any]() Printer[T] {
	return func(v T) string { return fmt.Sprintf("%v", v) }
}

// BigInt renders in base 10.
func BigInt() Printer[*big.Int] {
	return func(v *big.Int) string {
		if v == nil {
			return "<nil>"
		}
		return v.String()
	}
}

// BigRat renders a/b, or a alone for integers.
func BigRat() Printer[*big.Rat] {
	return func(v *big.Rat) string {
		if v == nil {
			return "<nil>"
		}
		return v.RatString()
	}
}

// Quoted renders a Go-quoted string.
func Quoted() Printer[string] {
	return strconv.Quote
}

// Slice renders [e0 e1 ...] with elem.
func Slice[T any](elem Printer[T]) Printer[[]T] {
	return func(vs []T) string {
		parts := make([]string, len(vs))
		for i, v := range vs {
			parts[i] = elem(v)
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
}
