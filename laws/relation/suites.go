// Package relation composes the relation laws into the suites of
// equivalences and orders.
package relation

import (
	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/laws/property"
)

func suiteName(structure, symbol string) string {
	return structure + "(" + symbol + ")"
}

// Setoid checks that the equality of d is an equivalence.
func Setoid[T any](d laws.Domain[T]) laws.Suite {
	return Equivalence(algebra.Order[T]{Rel: algebra.Relation[T](d.Eq), Symbol: "=="}, d).
		Extend("setoid")
}

// Equivalence: reflexivity, symmetry and transitivity.
func Equivalence[T any](o algebra.Order[T], d laws.Domain[T]) laws.Suite {
	return laws.NewSuite(suiteName("equivalence", o.Symbol),
		property.Reflexivity(o.Symbol, o.Rel, d),
		property.Symmetry(o.Symbol, o.Rel, d),
		property.Transitivity(o.Symbol, o.Rel, d),
	)
}

// Preorder: reflexivity and transitivity.
func Preorder[T any](o algebra.Order[T], d laws.Domain[T]) laws.Suite {
	return laws.NewSuite(suiteName("preorder", o.Symbol),
		property.Reflexivity(o.Symbol, o.Rel, d),
		property.Transitivity(o.Symbol, o.Rel, d),
	)
}

// Poset: Preorder and antisymmetry.
func Poset[T any](o algebra.Order[T], d laws.Domain[T]) laws.Suite {
	return Preorder(o, d).Extend(suiteName("poset", o.Symbol),
		property.Antisymmetry(o.Symbol, o.Rel, d),
	)
}

// TotalOrder: Poset and connexity.
func TotalOrder[T any](o algebra.Order[T], d laws.Domain[T]) laws.Suite {
	return Poset(o, d).Extend(suiteName("total order", o.Symbol),
		property.Connexity(o.Symbol, o.Rel, d),
	)
}

// StrictOrder: irreflexivity, transitivity and asymmetry.
func StrictOrder[T any](o algebra.Order[T], d laws.Domain[T]) laws.Suite {
	return laws.NewSuite(suiteName("strict order", o.Symbol),
		property.Irreflexivity(o.Symbol, o.Rel, d),
		property.Transitivity(o.Symbol, o.Rel, d),
		property.Asymmetry(o.Symbol, o.Rel, d),
	)
}
