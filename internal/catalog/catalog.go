// Package catalog names the instance and suite pairs the CLI can check.
package catalog

import (
	"fmt"
	"sort"

	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
	lawalg "github.com/on-the-ground/kosmos/laws/algebra"
	"github.com/on-the-ground/kosmos/laws/gens"
	"github.com/on-the-ground/kosmos/laws/relation"
)

// Check is a named suite over a concrete instance.
type Check struct {
	Name        string
	Description string
	// Holds is false for instances kept as known counterexamples.
	Holds bool
	Suite func() (laws.Suite, error)
}

func check(name, description string, holds bool, suite func() laws.Suite) Check {
	return Check{
		Name:        name,
		Description: description,
		Holds:       holds,
		Suite:       func() (laws.Suite, error) { return suite(), nil },
	}
}

func modular(n int64, suite func(algebra.Ring[int64], laws.Domain[int64]) laws.Suite) func() (laws.Suite, error) {
	return func() (laws.Suite, error) {
		ring, err := algebra.Modular(n)
		if err != nil {
			return laws.Suite{}, err
		}
		return suite(ring, gens.ResidueDomain(n)), nil
	}
}

func primeField(p int64) func() (laws.Suite, error) {
	return func() (laws.Suite, error) {
		field, err := algebra.ModularField(p)
		if err != nil {
			return laws.Suite{}, err
		}
		return lawalg.Field(field, gens.ResidueDomain(p)), nil
	}
}

// Checks returns every check sorted by name.
func Checks() []Check {
	ints := gens.IntegerDomain(-1000, 1000)
	small := gens.IntegerDomain(-3, 3)
	int64s := gens.Int64Domain(-1000, 1000)

	checks := []Check{
		check("integers/addition", "(Z, +) is an abelian group", true, func() laws.Suite {
			return lawalg.AbelianGroup(algebra.IntegerAddition(), ints)
		}),
		check("integers/multiplication", "(Z, *) is a commutative monoid", true, func() laws.Suite {
			return lawalg.CommutativeMonoid(algebra.IntegerMultiplication(), ints)
		}),
		check("integers/ring", "Z is an integral domain", true, func() laws.Suite {
			return lawalg.IntegralDomain(algebra.Integers(), ints)
		}),
		check("integers/subtraction", "(Z, -) is not a semigroup", false, func() laws.Suite {
			return lawalg.Semigroup(algebra.IntegerSubtraction(), ints)
		}),
		check("integers/order", "<= is a total order on Z", true, func() laws.Suite {
			return relation.TotalOrder(algebra.LessEqual(), ints)
		}),
		check("integers/strict-order", "< is a strict order on Z", true, func() laws.Suite {
			return relation.StrictOrder(algebra.Less(), ints)
		}),
		check("integers/divides", "| is a preorder on Z", true, func() laws.Suite {
			return relation.Preorder(algebra.Divides(), ints)
		}),
		check("integers/divides-poset", "| is not antisymmetric on Z", false, func() laws.Suite {
			return relation.Poset(algebra.Divides(), small)
		}),
		{
			Name:        "integers/congruence",
			Description: "congruence mod 5 is an equivalence on Z",
			Holds:       true,
			Suite: func() (laws.Suite, error) {
				mod5, err := algebra.Congruent(5)
				if err != nil {
					return laws.Suite{}, err
				}
				return relation.Equivalence(mod5, ints), nil
			},
		},
		check("integers/setoid", "value equality on Z is an equivalence", true, func() laws.Suite {
			return relation.Setoid(ints)
		}),
		check("rationals/field", "Q is a field", true, func() laws.Suite {
			return lawalg.Field(algebra.Rationals(), gens.RationalDomain(50))
		}),
		{
			Name:        "z12/ring",
			Description: "Z/12Z is a commutative ring",
			Holds:       true,
			Suite:       modular(12, lawalg.CommutativeRing[int64]),
		},
		{
			Name:        "z12/domain",
			Description: "Z/12Z has zero divisors",
			Holds:       false,
			Suite:       modular(12, lawalg.IntegralDomain[int64]),
		},
		{Name: "z7/field", Description: "Z/7Z is a field", Holds: true, Suite: primeField(7)},
		{Name: "z101/field", Description: "Z/101Z is a field", Holds: true, Suite: primeField(101)},
		check("booleans/ring", "({0, 1}, xor, and) is a commutative ring", true, func() laws.Suite {
			return lawalg.CommutativeRing(algebra.BooleanRing(), gens.BoolDomain())
		}),
		check("booleans/or", "(bool, or) is a semilattice", true, func() laws.Suite {
			return lawalg.Semilattice(algebra.Or().Semigroup, gens.BoolDomain())
		}),
		check("booleans/and", "(bool, and) is a semilattice", true, func() laws.Suite {
			return lawalg.Semilattice(algebra.And().Semigroup, gens.BoolDomain())
		}),
		check("strings/concat", "string concatenation is a monoid", true, func() laws.Suite {
			return lawalg.Monoid(algebra.StringConcat(), gens.StringDomain())
		}),
		check("strings/concat-commutative", "string concatenation is not commutative", false, func() laws.Suite {
			return lawalg.CommutativeMonoid(algebra.StringConcat(), gens.StringDomain())
		}),
		check("strings/prefix", "prefix is a partial order on strings", true, func() laws.Suite {
			return relation.Poset(algebra.Prefix(), gens.StringDomain())
		}),
		check("max/semilattice", "(int64, max) is a semilattice", true, func() laws.Suite {
			return lawalg.Semilattice(algebra.Max().Semigroup, int64s)
		}),
		check("min/semilattice", "(int64, min) is a semilattice", true, func() laws.Suite {
			return lawalg.Semilattice(algebra.Min().Semigroup, int64s)
		}),
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
	return checks
}

// Lookup returns the named check.
func Lookup(name string) (Check, error) {
	for _, c := range Checks() {
		if c.Name == name {
			return c, nil
		}
	}
	return Check{}, fmt.Errorf("catalog: no check named %q", name)
}
