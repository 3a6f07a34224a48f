package algebra

import (
	"fmt"
	"math"
	"math/big"
)

// IntegerAddition is (Z, +, 0, -).
func IntegerAddition() Group[*big.Int] {
	return Group[*big.Int]{
		Monoid: Monoid[*big.Int]{
			Semigroup: Semigroup[*big.Int]{
				Op:     func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) },
				Symbol: "+",
			},
			Identity: big.NewInt(0),
		},
		Inverse: func(a *big.Int) *big.Int { return new(big.Int).Neg(a) },
	}
}

// IntegerMultiplication is (Z, *, 1).
func IntegerMultiplication() Monoid[*big.Int] {
	return Monoid[*big.Int]{
		Semigroup: Semigroup[*big.Int]{
			Op:     func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) },
			Symbol: "*",
		},
		Identity: big.NewInt(1),
	}
}

// Integers is the ring Z.
func Integers() Ring[*big.Int] {
	return Ring[*big.Int]{Add: IntegerAddition(), Mul: IntegerMultiplication()}
}

// Rationals is the field Q.
func Rationals() Field[*big.Rat] {
	return Field[*big.Rat]{
		Ring: Ring[*big.Rat]{
			Add: Group[*big.Rat]{
				Monoid: Monoid[*big.Rat]{
					Semigroup: Semigroup[*big.Rat]{
						Op:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) },
						Symbol: "+",
					},
					Identity: new(big.Rat),
				},
				Inverse: func(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) },
			},
			Mul: Monoid[*big.Rat]{
				Semigroup: Semigroup[*big.Rat]{
					Op:     func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) },
					Symbol: "*",
				},
				Identity: big.NewRat(1, 1),
			},
		},
		Reciprocal: func(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) },
	}
}

// Modular is the ring Z/nZ on the residues 0..n-1.
func Modular(n int64) (Ring[int64], error) {
	if n < 1 {
		return Ring[int64]{}, fmt.Errorf("%w: %d", ErrModulus, n)
	}
	mod := func(v int64) int64 {
		v %= n
		if v < 0 {
			v += n
		}
		return v
	}
	mulmod := func(a, b int64) int64 {
		p := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
		return p.Mod(p, big.NewInt(n)).Int64()
	}
	return Ring[int64]{
		Add: Group[int64]{
			Monoid: Monoid[int64]{
				Semigroup: Semigroup[int64]{
					Op: func(a, b int64) int64 {
						s := mod(a) + mod(b)
						if s < 0 || s >= n {
							s -= n
						}
						return s
					},
					Symbol: "+",
				},
				Identity: 0,
			},
			Inverse: func(a int64) int64 { return mod(-mod(a)) },
		},
		Mul: Monoid[int64]{
			Semigroup: Semigroup[int64]{Op: mulmod, Symbol: "*"},
			Identity:  mod(1),
		},
	}, nil
}

// ModularField is the field Z/pZ. It fails with ErrNotPrime unless p is
// prime.
func ModularField(p int64) (Field[int64], error) {
	ring, err := Modular(p)
	if err != nil {
		return Field[int64]{}, err
	}
	if !big.NewInt(p).ProbablyPrime(20) {
		return Field[int64]{}, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	modulus := big.NewInt(p)
	return Field[int64]{
		Ring: ring,
		Reciprocal: func(a int64) int64 {
			inv := new(big.Int).ModInverse(big.NewInt(a), modulus)
			if inv == nil {
				return 0
			}
			return inv.Int64()
		},
	}, nil
}

// BooleanRing is ({false, true}, xor, and).
func BooleanRing() Ring[bool] {
	return Ring[bool]{
		Add: Group[bool]{
			Monoid: Monoid[bool]{
				Semigroup: Semigroup[bool]{
					Op:     func(a, b bool) bool { return a != b },
					Symbol: "xor",
				},
				Identity: false,
			},
			Inverse: func(a bool) bool { return a },
		},
		Mul: And(),
	}
}

// Or is ({false, true}, or, false).
func Or() Monoid[bool] {
	return Monoid[bool]{
		Semigroup: Semigroup[bool]{Op: func(a, b bool) bool { return a || b }, Symbol: "or"},
		Identity:  false,
	}
}

// And is ({false, true}, and, true).
func And() Monoid[bool] {
	return Monoid[bool]{
		Semigroup: Semigroup[bool]{Op: func(a, b bool) bool { return a && b }, Symbol: "and"},
		Identity:  true,
	}
}

// StringConcat is the free monoid on strings.
func StringConcat() Monoid[string] {
	return Monoid[string]{
		Semigroup: Semigroup[string]{Op: func(a, b string) string { return a + b }, Symbol: "++"},
		Identity:  "",
	}
}

// Max is (int64, max, MinInt64).
func Max() Monoid[int64] {
	return Monoid[int64]{
		Semigroup: Semigroup[int64]{Op: func(a, b int64) int64 { return max(a, b) }, Symbol: "max"},
		Identity:  math.MinInt64,
	}
}

// Min is (int64, min, MaxInt64).
func Min() Monoid[int64] {
	return Monoid[int64]{
		Semigroup: Semigroup[int64]{Op: func(a, b int64) int64 { return min(a, b) }, Symbol: "min"},
		Identity:  math.MaxInt64,
	}
}

// IntegerSubtraction is a - b. It is not associative and is kept as a
// known-bad candidate.
func IntegerSubtraction() Semigroup[*big.Int] {
	return Semigroup[*big.Int]{
		Op:     func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) },
		Symbol: "-",
	}
}
