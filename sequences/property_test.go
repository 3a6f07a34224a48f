package sequences_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/kosmos/sequences"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFibonacci_CassiniIdentity checks F(n-1)F(n+1) - F(n)^2 = (-1)^n.
func TestFibonacci_CassiniIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	fib := sequences.Fibonacci()
	value := func(n int) *big.Int {
		v, err := fib.Value(n)
		if err != nil {
			t.Fatalf("F(%d): %v", n, err)
		}
		return v
	}

	properties.Property("Cassini's identity", prop.ForAll(
		func(n int) bool {
			left := new(big.Int).Mul(value(n-1), value(n+1))
			left.Sub(left, new(big.Int).Mul(value(n), value(n)))
			right := big.NewInt(1)
			if n%2 != 0 {
				right.Neg(right)
			}
			return left.Cmp(right) == 0
		},
		gen.IntRange(1, 2000),
	))

	properties.TestingRun(t)
}

// TestLucas_FibonacciRelation checks L(n) = F(n-1) + F(n+1).
func TestLucas_FibonacciRelation(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	fib, lucas := sequences.Fibonacci(), sequences.Lucas()
	properties.Property("L(n) = F(n-1) + F(n+1)", prop.ForAll(
		func(n int) bool {
			a, err1 := fib.Value(n - 1)
			b, err2 := fib.Value(n + 1)
			l, err3 := lucas.Value(n)
			if err1 != nil || err2 != nil || err3 != nil {
				return false
			}
			return l.Cmp(new(big.Int).Add(a, b)) == 0
		},
		gen.IntRange(1, 1500),
	))

	properties.TestingRun(t)
}

// TestBinomial_Symmetry checks C(n, k) = C(n, n-k).
func TestBinomial_Symmetry(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	binom := sequences.Binomial()
	properties.Property("C(n,k) = C(n,n-k)", prop.ForAll(
		func(n, k int) bool {
			k = k % (n + 1)
			a, err1 := binom.Value(n, k)
			b, err2 := binom.Value(n, n-k)
			return err1 == nil && err2 == nil && a.Cmp(b) == 0
		},
		gen.IntRange(0, 120),
		gen.IntRange(0, 120),
	))

	properties.TestingRun(t)
}
