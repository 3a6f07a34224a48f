package property

import (
	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
)

// LeftDistributivity checks a ⊗ (b ⊕ c) = (a ⊗ b) ⊕ (a ⊗ c).
func LeftDistributivity[T any](mulSymbol string, mul algebra.Binary[T], addSymbol string, add algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("left distributivity", mulSymbol+" over "+addSymbol), d, func(a, b, c T) string {
		return distributesLeft(d, mulSymbol, mul, addSymbol, add, a, b, c)
	})
}

// RightDistributivity checks (b ⊕ c) ⊗ a = (b ⊗ a) ⊕ (c ⊗ a).
func RightDistributivity[T any](mulSymbol string, mul algebra.Binary[T], addSymbol string, add algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("right distributivity", mulSymbol+" over "+addSymbol), d, func(a, b, c T) string {
		return distributesRight(d, mulSymbol, mul, addSymbol, add, a, b, c)
	})
}

// Distributivity checks both LeftDistributivity and RightDistributivity.
func Distributivity[T any](mulSymbol string, mul algebra.Binary[T], addSymbol string, add algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("distributivity", mulSymbol+" over "+addSymbol), d, func(a, b, c T) string {
		return first(
			distributesLeft(d, mulSymbol, mul, addSymbol, add, a, b, c),
			distributesRight(d, mulSymbol, mul, addSymbol, add, a, b, c),
		)
	})
}

func distributesLeft[T any](d laws.Domain[T], mulSymbol string, mul algebra.Binary[T], addSymbol string, add algebra.Binary[T], a, b, c T) string {
	return differ(d,
		expr2("a ⊗ (b ⊕ c)", mulSymbol, addSymbol), mul(a, add(b, c)),
		expr2("(a ⊗ b) ⊕ (a ⊗ c)", mulSymbol, addSymbol), add(mul(a, b), mul(a, c)),
	)
}

func distributesRight[T any](d laws.Domain[T], mulSymbol string, mul algebra.Binary[T], addSymbol string, add algebra.Binary[T], a, b, c T) string {
	return differ(d,
		expr2("(b ⊕ c) ⊗ a", mulSymbol, addSymbol), mul(add(b, c), a),
		expr2("(b ⊗ a) ⊕ (c ⊗ a)", mulSymbol, addSymbol), add(mul(b, a), mul(c, a)),
	)
}
