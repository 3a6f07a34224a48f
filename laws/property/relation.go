package property

import (
	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
)

// Reflexivity checks a R a.
func Reflexivity[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll1(named("reflexivity", symbol), d, func(a T) string {
		if !rel(a, a) {
			return "not a " + symbol + " a"
		}
		return ""
	})
}

// Irreflexivity checks not a R a.
func Irreflexivity[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll1(named("irreflexivity", symbol), d, func(a T) string {
		if rel(a, a) {
			return "a " + symbol + " a"
		}
		return ""
	})
}

// Symmetry checks a R b implies b R a.
func Symmetry[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("symmetry", symbol), d, func(a, b T) string {
		if rel(a, b) && !rel(b, a) {
			return "a " + symbol + " b but not b " + symbol + " a"
		}
		return ""
	})
}

// Antisymmetry checks a R b and b R a imply a = b.
func Antisymmetry[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("antisymmetry", symbol), d, func(a, b T) string {
		if rel(a, b) && rel(b, a) && !d.Eq(a, b) {
			return "a " + symbol + " b and b " + symbol + " a but a != b"
		}
		return ""
	})
}

// Asymmetry checks a R b implies not b R a.
func Asymmetry[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("asymmetry", symbol), d, func(a, b T) string {
		if rel(a, b) && rel(b, a) {
			return "a " + symbol + " b and b " + symbol + " a"
		}
		return ""
	})
}

// Transitivity checks a R b and b R c imply a R c.
func Transitivity[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("transitivity", symbol), d, func(a, b, c T) string {
		if rel(a, b) && rel(b, c) && !rel(a, c) {
			return "a " + symbol + " b and b " + symbol + " c but not a " + symbol + " c"
		}
		return ""
	})
}

// Connexity checks a != b implies a R b or b R a.
func Connexity[T any](symbol string, rel algebra.Relation[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("connexity", symbol), d, func(a, b T) string {
		if !d.Eq(a, b) && !rel(a, b) && !rel(b, a) {
			return "a and b are unrelated by " + symbol
		}
		return ""
	})
}
