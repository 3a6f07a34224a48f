// Package algebra composes the atomic laws into the suites that define
// algebraic structures. Each suite runs exactly the defining laws of its
// structure.
package algebra

import (
	alg "github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
	"github.com/on-the-ground/kosmos/laws/property"
)

func suiteName(structure, symbol string) string {
	return structure + "(" + symbol + ")"
}

// Semigroup: associativity.
func Semigroup[T any](s alg.Semigroup[T], d laws.Domain[T]) laws.Suite {
	return laws.NewSuite(suiteName("semigroup", s.Symbol),
		property.Associativity(s.Symbol, s.Op, d),
	)
}

// CommutativeSemigroup: Semigroup and commutativity.
func CommutativeSemigroup[T any](s alg.Semigroup[T], d laws.Domain[T]) laws.Suite {
	return Semigroup(s, d).Extend(suiteName("commutative semigroup", s.Symbol),
		property.Commutativity(s.Symbol, s.Op, d),
	)
}

// Band: Semigroup and idempotency.
func Band[T any](s alg.Semigroup[T], d laws.Domain[T]) laws.Suite {
	return Semigroup(s, d).Extend(suiteName("band", s.Symbol),
		property.Idempotency(s.Symbol, s.Op, d),
	)
}

// Semilattice: CommutativeSemigroup and idempotency.
func Semilattice[T any](s alg.Semigroup[T], d laws.Domain[T]) laws.Suite {
	return CommutativeSemigroup(s, d).Extend(suiteName("semilattice", s.Symbol),
		property.Idempotency(s.Symbol, s.Op, d),
	)
}

// Monoid: Semigroup and a two-sided identity.
func Monoid[T any](m alg.Monoid[T], d laws.Domain[T]) laws.Suite {
	return Semigroup(m.Semigroup, d).Extend(suiteName("monoid", m.Symbol),
		property.Identity(m.Symbol, m.Op, m.Identity, d),
	)
}

// CommutativeMonoid: Monoid and commutativity.
func CommutativeMonoid[T any](m alg.Monoid[T], d laws.Domain[T]) laws.Suite {
	return Monoid(m, d).Extend(suiteName("commutative monoid", m.Symbol),
		property.Commutativity(m.Symbol, m.Op, d),
	)
}

// Group: Monoid and inverses.
func Group[T any](g alg.Group[T], d laws.Domain[T]) laws.Suite {
	return Monoid(g.Monoid, d).Extend(suiteName("group", g.Symbol),
		property.Invertibility(g.Symbol, g.Op, g.Inverse, g.Identity, d),
	)
}

// AbelianGroup: Group and commutativity.
func AbelianGroup[T any](g alg.Group[T], d laws.Domain[T]) laws.Suite {
	return Group(g, d).Extend(suiteName("abelian group", g.Symbol),
		property.Commutativity(g.Symbol, g.Op, d),
	)
}

// Ring: AbelianGroup under Add, Monoid under Mul and distributivity of Mul
// over Add.
func Ring[T any](r alg.Ring[T], d laws.Domain[T]) laws.Suite {
	name := suiteName("ring", r.Add.Symbol+", "+r.Mul.Symbol)
	return AbelianGroup(r.Add, d).
		Include(name, Monoid(r.Mul, d)).
		Extend(name, property.Distributivity(r.Mul.Symbol, r.Mul.Op, r.Add.Symbol, r.Add.Op, d))
}

// CommutativeRing: Ring and commutativity of Mul.
func CommutativeRing[T any](r alg.Ring[T], d laws.Domain[T]) laws.Suite {
	return Ring(r, d).Extend(suiteName("commutative ring", r.Add.Symbol+", "+r.Mul.Symbol),
		property.Commutativity(r.Mul.Symbol, r.Mul.Op, d),
	)
}

// IntegralDomain: CommutativeRing without zero divisors.
func IntegralDomain[T any](r alg.Ring[T], d laws.Domain[T]) laws.Suite {
	return CommutativeRing(r, d).Extend(suiteName("integral domain", r.Add.Symbol+", "+r.Mul.Symbol),
		property.NoZeroDivisors(r.Mul.Symbol, r.Mul.Op, r.Zero(), d),
	)
}

// Field: CommutativeRing and reciprocals of the non-zero elements.
func Field[T any](f alg.Field[T], d laws.Domain[T]) laws.Suite {
	zero := f.Zero()
	nonZero := d.Where(func(v T) bool { return !d.Eq(v, zero) })
	return CommutativeRing(f.Ring, d).Extend(suiteName("field", f.Add.Symbol+", "+f.Mul.Symbol),
		property.Invertibility(f.Mul.Symbol, f.Mul.Op, f.Reciprocal, f.One(), nonZero),
	)
}
