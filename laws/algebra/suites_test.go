package algebra_test

import (
	"math/big"
	"testing"

	alg "github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
	lawalg "github.com/on-the-ground/kosmos/laws/algebra"
	"github.com/on-the-ground/kosmos/laws/gens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = 77

func lawNames(s laws.Suite) []string {
	var names []string
	for _, l := range s.Laws() {
		names = append(names, l.Name())
	}
	return names
}

func TestSuites_ComposeExactlyTheirDefiningLaws(t *testing.T) {
	ints := gens.IntegerDomain(-20, 20)
	z := alg.Integers()

	assert.Equal(t, []string{"associativity(+)"}, lawNames(lawalg.Semigroup(z.Add.Semigroup, ints)))
	assert.Equal(t, []string{"associativity(+)", "identity(+)"}, lawNames(lawalg.Monoid(z.Add.Monoid, ints)))
	assert.Equal(t,
		[]string{"associativity(+)", "identity(+)", "invertibility(+)"},
		lawNames(lawalg.Group(z.Add, ints)))
	assert.Equal(t,
		[]string{"associativity(+)", "identity(+)", "invertibility(+)", "commutativity(+)"},
		lawNames(lawalg.AbelianGroup(z.Add, ints)))
	assert.Equal(t, []string{
		"associativity(+)", "identity(+)", "invertibility(+)", "commutativity(+)",
		"associativity(*)", "identity(*)",
		"distributivity(* over +)",
	}, lawNames(lawalg.Ring(z, ints)))
	assert.Len(t, lawalg.CommutativeRing(z, ints).Laws(), 8)
	assert.Len(t, lawalg.IntegralDomain(z, ints).Laws(), 9)

	field := lawalg.Field(alg.Rationals(), gens.RationalDomain(10))
	assert.Equal(t, "field(+, *)", field.Name())
	assert.Equal(t, []string{
		"associativity(+)", "identity(+)", "invertibility(+)", "commutativity(+)",
		"associativity(*)", "identity(*)",
		"distributivity(* over +)",
		"commutativity(*)",
		"invertibility(*)",
	}, lawNames(field))

	assert.Len(t, lawalg.CommutativeSemigroup(z.Add.Semigroup, ints).Laws(), 2)
	assert.Len(t, lawalg.Band(alg.Or().Semigroup, gens.BoolDomain()).Laws(), 2)
	assert.Len(t, lawalg.Semilattice(alg.Max().Semigroup, gens.Int64Domain(-5, 5)).Laws(), 3)
	assert.Len(t, lawalg.CommutativeMonoid(z.Add.Monoid, ints).Laws(), 3)
}

func TestSuites_LawfulInstancesPass(t *testing.T) {
	f7, err := alg.ModularField(7)
	require.NoError(t, err)
	z12, err := alg.Modular(12)
	require.NoError(t, err)

	ints := gens.IntegerDomain(-100, 100)
	tests := []laws.Suite{
		lawalg.AbelianGroup(alg.IntegerAddition(), ints),
		lawalg.CommutativeMonoid(alg.IntegerMultiplication(), ints),
		lawalg.IntegralDomain(alg.Integers(), ints),
		lawalg.Field(alg.Rationals(), gens.RationalDomain(30)),
		lawalg.Field(f7, gens.ResidueDomain(7)),
		lawalg.CommutativeRing(z12, gens.ResidueDomain(12)),
		lawalg.Field(alg.Field[bool]{Ring: alg.BooleanRing(), Reciprocal: func(b bool) bool { return b }}, gens.BoolDomain()),
		lawalg.Monoid(alg.StringConcat(), gens.StringDomain()),
		lawalg.Semilattice(alg.Max().Semigroup, gens.Int64Domain(-1000, 1000)),
		lawalg.Semilattice(alg.Min().Semigroup, gens.Int64Domain(-1000, 1000)),
		lawalg.CommutativeMonoid(alg.Max(), gens.Int64Domain(-1000, 1000)),
		lawalg.Band(alg.And().Semigroup, gens.BoolDomain()),
		lawalg.CommutativeMonoid(alg.Or(), gens.BoolDomain()),
	}
	for _, suite := range tests {
		t.Run(suite.Name(), func(t *testing.T) {
			laws.Assert(t, suite, laws.WithSeed(seed))
		})
	}
}

func TestSuites_ReportTheViolatedLaw(t *testing.T) {
	z6, err := alg.Modular(6)
	require.NoError(t, err)
	ints := gens.IntegerDomain(-100, 100)

	integerReciprocal := alg.Field[*big.Int]{
		Ring:       alg.Integers(),
		Reciprocal: func(a *big.Int) *big.Int { return new(big.Int).Quo(big.NewInt(1), a) },
	}
	noInverses := alg.Group[*big.Int]{
		Monoid:  alg.IntegerMultiplication(),
		Inverse: func(a *big.Int) *big.Int { return a },
	}

	tests := []struct {
		suite  laws.Suite
		failed []string
	}{
		{lawalg.Semigroup(alg.IntegerSubtraction(), ints), []string{"associativity(-)"}},
		{lawalg.CommutativeMonoid(alg.StringConcat(), gens.StringDomain()), []string{"commutativity(++)"}},
		{lawalg.Band(alg.IntegerAddition().Semigroup, ints), []string{"idempotency(+)"}},
		{lawalg.Group(noInverses, ints), []string{"invertibility(*)"}},
		{lawalg.IntegralDomain(z6, gens.ResidueDomain(6)), []string{"no zero divisors(*)"}},
		{lawalg.Field(integerReciprocal, ints), []string{"invertibility(*)"}},
	}
	for _, tt := range tests {
		t.Run(tt.suite.Name(), func(t *testing.T) {
			report := tt.suite.Run(laws.WithSeed(seed))
			assert.False(t, report.Passed())
			assert.Empty(t, report.Errors())

			var failed []string
			for _, o := range report.Failures() {
				failed = append(failed, o.Law)
			}
			assert.Equal(t, tt.failed, failed)
			assert.Len(t, report.Outcomes, len(tt.suite.Laws()))
		})
	}
}
