package sequences

import (
	"fmt"
	"math/big"

	"github.com/on-the-ground/kosmos/recurrence"
)

// Fibonacci returns F(n): F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
func Fibonacci(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{0, 1}, func(n int, self func(int) *big.Int) *big.Int {
		return new(big.Int).Add(self(n-1), self(n-2))
	}, named("fibonacci", opts))
}

// Lucas returns L(n): L(0)=2, L(1)=1, L(n)=L(n-1)+L(n-2).
func Lucas(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{2, 1}, func(n int, self func(int) *big.Int) *big.Int {
		return new(big.Int).Add(self(n-1), self(n-2))
	}, named("lucas", opts))
}

// Factorial returns n!.
func Factorial(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1}, func(n int, self func(int) *big.Int) *big.Int {
		return new(big.Int).Mul(big.NewInt(int64(n)), self(n-1))
	}, named("factorial", opts))
}

// DoubleFactorial returns n!! = n(n-2)(n-4)..., with 0!! = 1!! = 1.
// (-1)!! is 1; smaller indices are rejected.
func DoubleFactorial(opts ...recurrence.Option[*big.Int]) *Integers {
	negative := recurrence.NegativeFunc(func(n int) (*big.Int, error) {
		if n == -1 {
			return one, nil
		}
		return nil, fmt.Errorf("%w: %d", recurrence.ErrNegativeIndex, n)
	})
	opts = append([]recurrence.Option[*big.Int]{recurrence.WithNegative(negative)}, opts...)
	return newIntegers([]int64{1, 1}, func(n int, self func(int) *big.Int) *big.Int {
		return new(big.Int).Mul(big.NewInt(int64(n)), self(n-2))
	}, named("double_factorial", opts))
}

// Partition returns p(n), the number of partitions of n, by Euler's
// pentagonal number recurrence. p(n) is zero for negative n.
func Partition(opts ...recurrence.Option[*big.Int]) *Integers {
	opts = append([]recurrence.Option[*big.Int]{
		recurrence.WithNegative(recurrence.ZeroForNegative(zero)),
	}, opts...)
	return newIntegers([]int64{1}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int)
		for k := 1; k*(3*k-1)/2 <= n; k++ {
			term := new(big.Int).Add(self(n-k*(3*k-1)/2), self(n-k*(3*k+1)/2))
			sum.Add(sum, term.Mul(term, sign(k+1)))
		}
		return sum
	}, named("partition", opts))
}

// Catalan returns C(n) = sum C(i)C(n-1-i).
func Catalan(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int)
		for i := 0; i < n; i++ {
			sum.Add(sum, new(big.Int).Mul(self(i), self(n-1-i)))
		}
		return sum
	}, named("catalan", opts))
}

// Motzkin returns M(n) = M(n-1) + sum M(k)M(n-2-k).
func Motzkin(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1, 1}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int).Set(self(n - 1))
		for k := 0; k <= n-2; k++ {
			sum.Add(sum, new(big.Int).Mul(self(k), self(n-2-k)))
		}
		return sum
	}, named("motzkin", opts))
}

// Bell returns B(n), the number of partitions of an n-set:
// B(n) = sum binomial(n-1, k) B(k).
func Bell(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int)
		for k := 0; k < n; k++ {
			sum.Add(sum, new(big.Int).Mul(binomial(n-1, k), self(k)))
		}
		return sum
	}, named("bell", opts))
}

// Derangements returns D(n), the permutations of n elements without fixed
// points: D(0)=1, D(1)=0, D(n)=(n-1)(D(n-1)+D(n-2)).
func Derangements(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1, 0}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int).Add(self(n-1), self(n-2))
		return sum.Mul(sum, big.NewInt(int64(n-1)))
	}, named("derangements", opts))
}

// LabeledDAGs returns the number of acyclic digraphs on n labeled nodes
// (OEIS A003024): a(n) = sum_{k=1..n} (-1)^(k+1) binomial(n,k) 2^(k(n-k)) a(n-k).
func LabeledDAGs(opts ...recurrence.Option[*big.Int]) *Integers {
	return newIntegers([]int64{1}, func(n int, self func(int) *big.Int) *big.Int {
		sum := new(big.Int)
		for k := 1; k <= n; k++ {
			term := new(big.Int).Lsh(binomial(n, k), uint(k*(n-k)))
			term.Mul(term, self(n-k))
			sum.Add(sum, term.Mul(term, sign(k+1)))
		}
		return sum
	}, named("labeled_dags", opts))
}
