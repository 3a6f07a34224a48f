package property

import (
	"fmt"

	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
)

// PowerAssociativity checks that a^i · a^j = a^(i+j) for 1 <= i, j <=
// maxPower, where powers are folded from the left. It holds exactly when
// every bracketing of a · a · ... · a agrees.
func PowerAssociativity[T any](symbol string, op algebra.Binary[T], maxPower int, d laws.Domain[T]) laws.Law {
	maxPower = max(maxPower, 2)
	return laws.ForAll1(named("power associativity", symbol), d, func(a T) string {
		for i := 1; i <= maxPower; i++ {
			for j := 1; j <= maxPower; j++ {
				l := fmt.Sprintf("a^%d %s a^%d", i, symbol, j)
				r := fmt.Sprintf("a^%d", i+j)
				if detail := differ(d, l, op(algebra.Power(op, a, i), algebra.Power(op, a, j)), r, algebra.Power(op, a, i+j)); detail != "" {
					return detail
				}
			}
		}
		return ""
	})
}

// JordanIdentity checks (a · b) · (a · a) = a · (b · (a · a)).
func JordanIdentity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("(a · b) · (a · a)", symbol), expr("a · (b · (a · a))", symbol)
	return laws.ForAll2(named("jordan identity", symbol), d, func(a, b T) string {
		aa := op(a, a)
		return differ(d, l, op(op(a, b), aa), r, op(a, op(b, aa)))
	})
}

// Moufang checks a · (b · (a · c)) = ((a · b) · a) · c.
func Moufang[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("a · (b · (a · c))", symbol), expr("((a · b) · a) · c", symbol)
	return laws.ForAll3(named("moufang", symbol), d, func(a, b, c T) string {
		return differ(d, l, op(a, op(b, op(a, c))), r, op(op(op(a, b), a), c))
	})
}

// LeftBol checks a · (b · (a · c)) = (a · (b · a)) · c.
func LeftBol[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("a · (b · (a · c))", symbol), expr("(a · (b · a)) · c", symbol)
	return laws.ForAll3(named("left bol", symbol), d, func(a, b, c T) string {
		return differ(d, l, op(a, op(b, op(a, c))), r, op(op(a, op(b, a)), c))
	})
}

// Medial checks (a · b) · (c · e) = (a · c) · (b · e).
func Medial[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("(a · b) · (c · d)", symbol), expr("(a · c) · (b · d)", symbol)
	return laws.ForAll4(named("medial", symbol), d, func(a, b, c, e T) string {
		return differ(d, l, op(op(a, b), op(c, e)), r, op(op(a, c), op(b, e)))
	})
}

// Nilpotent checks that a^n = zero for some 1 <= n <= bound.
func Nilpotent[T any](symbol string, op algebra.Binary[T], zero T, bound int, d laws.Domain[T]) laws.Law {
	bound = max(bound, 1)
	return laws.ForAll1(named("nilpotent", symbol), d, func(a T) string {
		p := a
		for n := 1; n <= bound; n++ {
			if d.Eq(p, zero) {
				return ""
			}
			p = op(p, a)
		}
		return fmt.Sprintf("a^n != %s for every n <= %d", d.Render(zero), bound)
	})
}
