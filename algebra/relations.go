package algebra

import (
	"fmt"
	"math/big"
)

// LessEqual is <= on Z.
func LessEqual() Order[*big.Int] {
	return Order[*big.Int]{Rel: func(a, b *big.Int) bool { return a.Cmp(b) <= 0 }, Symbol: "<="}
}

// Less is < on Z.
func Less() Order[*big.Int] {
	return Order[*big.Int]{Rel: func(a, b *big.Int) bool { return a.Cmp(b) < 0 }, Symbol: "<"}
}

// Divides is a | b on Z: b = a*c for some c. It is a preorder but not a
// partial order, since a | -a and -a | a.
func Divides() Order[*big.Int] {
	return Order[*big.Int]{
		Rel: func(a, b *big.Int) bool {
			if a.Sign() == 0 {
				return b.Sign() == 0
			}
			return new(big.Int).Rem(b, a).Sign() == 0
		},
		Symbol: "|",
	}
}

// Congruent is a = b (mod n).
func Congruent(n int64) (Order[*big.Int], error) {
	if n < 1 {
		return Order[*big.Int]{}, fmt.Errorf("%w: %d", ErrModulus, n)
	}
	modulus := big.NewInt(n)
	return Order[*big.Int]{
		Rel: func(a, b *big.Int) bool {
			d := new(big.Int).Sub(a, b)
			return d.Mod(d, modulus).Sign() == 0
		},
		Symbol: fmt.Sprintf("≡%d", n),
	}, nil
}

// Prefix is "a is a prefix of b" on strings.
func Prefix() Order[string] {
	return Order[string]{
		Rel:    func(a, b string) bool { return len(a) <= len(b) && b[:len(a)] == a },
		Symbol: "prefix",
	}
}
