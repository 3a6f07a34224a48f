// Package gens provides gopter generators, with shrinkers, for the value
// types of the algebra instances.
package gens

import (
	"math/big"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/on-the-ground/kosmos/eq"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/render"
)

// BigInt generates integers in [min, max], shrinking toward zero within the
// range.
func BigInt(min, max int64) gopter.Gen {
	inRange := func(v int64) bool { return v >= min && v <= max }
	return gen.Int64Range(min, max).
		Map(func(v int64) *big.Int { return big.NewInt(v) }).
		WithShrinker(func(v any) gopter.Shrink {
			return gen.Int64Shrinker(v.(*big.Int).Int64()).
				Filter(func(s any) bool { return inRange(s.(int64)) }).
				Map(func(s int64) *big.Int { return big.NewInt(s) })
		})
}

// BigRat generates fractions num/den with num in [-bound, bound] and den in
// [1, bound], shrinking the numerator toward zero and the denominator toward
// one.
func BigRat(bound int64) gopter.Gen {
	return gopter.CombineGens(gen.Int64Range(-bound, bound), gen.Int64Range(1, bound)).
		Map(func(vs []any) *big.Rat { return big.NewRat(vs[0].(int64), vs[1].(int64)) }).
		WithShrinker(func(v any) gopter.Shrink {
			r := v.(*big.Rat)
			num, den := r.Num().Int64(), r.Denom().Int64()
			nums := gen.Int64Shrinker(num).
				Map(func(n int64) *big.Rat { return big.NewRat(n, den) })
			dens := gen.Int64Shrinker(den).
				Filter(func(d any) bool { return d.(int64) > 0 }).
				Map(func(d int64) *big.Rat { return big.NewRat(num, d) })
			return nums.Interleave(dens)
		})
}

// Residue generates residues 0..n-1, shrinking toward zero.
func Residue(n int64) gopter.Gen {
	return gen.Int64Range(0, n-1)
}

// Int64 generates integers in [min, max].
func Int64(min, max int64) gopter.Gen {
	return gen.Int64Range(min, max)
}

// Bool generates booleans.
func Bool() gopter.Gen {
	return gen.Bool()
}

// String generates short alphabetic strings, shrinking toward "".
func String() gopter.Gen {
	return gen.AlphaString()
}

// NonZero restricts g to values for which isZero is false.
func NonZero[T any](g gopter.Gen, isZero func(T) bool) gopter.Gen {
	return g.SuchThat(func(v T) bool { return !isZero(v) })
}

// IntegerDomain is BigInt(min, max) compared by value.
func IntegerDomain(min, max int64) laws.Domain[*big.Int] {
	return laws.NewDomain(BigInt(min, max), eq.BigInt(), render.BigInt())
}

// RationalDomain is BigRat(bound) compared by value.
func RationalDomain(bound int64) laws.Domain[*big.Rat] {
	return laws.NewDomain(BigRat(bound), eq.BigRat(), render.BigRat())
}

// ResidueDomain is Residue(n).
func ResidueDomain(n int64) laws.Domain[int64] {
	return laws.NewDomain(Residue(n), eq.Comparable[int64](), nil)
}

// Int64Domain is Int64(min, max).
func Int64Domain(min, max int64) laws.Domain[int64] {
	return laws.NewDomain(Int64(min, max), eq.Comparable[int64](), nil)
}

// BoolDomain is Bool().
func BoolDomain() laws.Domain[bool] {
	return laws.NewDomain(Bool(), eq.Comparable[bool](), nil)
}

// StringDomain is String() rendered quoted.
func StringDomain() laws.Domain[string] {
	return laws.NewDomain(String(), eq.Comparable[string](), render.Quoted())
}
