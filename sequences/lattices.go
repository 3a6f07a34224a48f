package sequences

import (
	"math/big"

	"github.com/on-the-ground/kosmos/recurrence"
)

// triangle is zero for k outside [0, n] on non-negative rows.
func triangle(n, k int) (*big.Int, bool) {
	if n >= 0 && (k < 0 || k > n) {
		return zero, true
	}
	return nil, false
}

func newTriangle(
	name string,
	base recurrence.Base[*big.Int],
	step recurrence.LatticeStep[*big.Int],
	opts []recurrence.Option[*big.Int],
) *IntegerLattice {
	opts = append([]recurrence.Option[*big.Int]{recurrence.WithDomain(triangle)}, opts...)
	return &IntegerLattice{lat: recurrence.NewLattice(base, step, named(name, opts)...)}
}

// Binomial returns Pascal's triangle C(n, k) = C(n-1, k-1) + C(n-1, k).
func Binomial(opts ...recurrence.Option[*big.Int]) *IntegerLattice {
	return newTriangle("binomial",
		func(n, k int) (*big.Int, bool) {
			if k == 0 || k == n {
				return one, true
			}
			return nil, false
		},
		func(n, k int, self func(n, k int) *big.Int) *big.Int {
			return new(big.Int).Add(self(n-1, k-1), self(n-1, k))
		},
		opts,
	)
}

// StirlingFirst returns the unsigned Stirling numbers of the first kind:
// c(n, k) = (n-1) c(n-1, k) + c(n-1, k-1).
func StirlingFirst(opts ...recurrence.Option[*big.Int]) *IntegerLattice {
	return newTriangle("stirling_first", stirlingBase,
		func(n, k int, self func(n, k int) *big.Int) *big.Int {
			v := new(big.Int).Mul(big.NewInt(int64(n-1)), self(n-1, k))
			return v.Add(v, self(n-1, k-1))
		},
		opts,
	)
}

// StirlingSecond returns the Stirling numbers of the second kind:
// S(n, k) = k S(n-1, k) + S(n-1, k-1).
func StirlingSecond(opts ...recurrence.Option[*big.Int]) *IntegerLattice {
	return newTriangle("stirling_second", stirlingBase,
		func(n, k int, self func(n, k int) *big.Int) *big.Int {
			v := new(big.Int).Mul(big.NewInt(int64(k)), self(n-1, k))
			return v.Add(v, self(n-1, k-1))
		},
		opts,
	)
}

// stirlingBase: the diagonal is one and column zero is empty past row zero.
func stirlingBase(n, k int) (*big.Int, bool) {
	switch {
	case k == n:
		return one, true
	case k == 0:
		return zero, true
	}
	return nil, false
}

// Delannoy returns D(m, n) = D(m-1, n) + D(m, n-1) + D(m-1, n-1), the number
// of lattice paths from (0, 0) to (m, n) using steps east, north and
// northeast.
func Delannoy(opts ...recurrence.Option[*big.Int]) *IntegerLattice {
	base := func(m, n int) (*big.Int, bool) {
		if m == 0 || n == 0 {
			return one, true
		}
		return nil, false
	}
	step := func(m, n int, self func(m, n int) *big.Int) *big.Int {
		v := new(big.Int).Add(self(m-1, n), self(m, n-1))
		return v.Add(v, self(m-1, n-1))
	}
	return &IntegerLattice{lat: recurrence.NewLattice(base, step, named("delannoy", opts)...)}
}
