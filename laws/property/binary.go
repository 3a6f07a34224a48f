package property

import (
	"github.com/on-the-ground/kosmos/algebra"
	"github.com/on-the-ground/kosmos/laws"
)

// Associativity checks (a · b) · c = a · (b · c).
func Associativity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("(a · b) · c", symbol), expr("a · (b · c)", symbol)
	return laws.ForAll3(named("associativity", symbol), d, func(a, b, c T) string {
		return differ(d, l, op(op(a, b), c), r, op(a, op(b, c)))
	})
}

// Commutativity checks a · b = b · a.
func Commutativity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("a · b", symbol), expr("b · a", symbol)
	return laws.ForAll2(named("commutativity", symbol), d, func(a, b T) string {
		return differ(d, l, op(a, b), r, op(b, a))
	})
}

// Identity checks e · a = a = a · e.
func Identity[T any](symbol string, op algebra.Binary[T], e T, d laws.Domain[T]) laws.Law {
	l, r := expr("e · a", symbol), expr("a · e", symbol)
	return laws.ForAll1(named("identity", symbol), d, func(a T) string {
		return first(
			differ(d, l, op(e, a), "a", a),
			differ(d, r, op(a, e), "a", a),
		)
	})
}

// Invertibility checks a · inv(a) = e = inv(a) · a.
func Invertibility[T any](symbol string, op algebra.Binary[T], inv algebra.Unary[T], e T, d laws.Domain[T]) laws.Law {
	l, r := expr("a · inv(a)", symbol), expr("inv(a) · a", symbol)
	return laws.ForAll1(named("invertibility", symbol), d, func(a T) string {
		ia := inv(a)
		return first(
			differ(d, l, op(a, ia), "e", e),
			differ(d, r, op(ia, a), "e", e),
		)
	})
}

// Idempotency checks a · a = a.
func Idempotency[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l := expr("a · a", symbol)
	return laws.ForAll1(named("idempotency", symbol), d, func(a T) string {
		return differ(d, l, op(a, a), "a", a)
	})
}

// LeftCancellative checks a · b = a · c implies b = c.
func LeftCancellative[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("left cancellative", symbol), d, func(a, b, c T) string {
		return cancels(d, expr("a · b = a · c", symbol), op(a, b), op(a, c), b, c)
	})
}

// RightCancellative checks b · a = c · a implies b = c.
func RightCancellative[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("right cancellative", symbol), d, func(a, b, c T) string {
		return cancels(d, expr("b · a = c · a", symbol), op(b, a), op(c, a), b, c)
	})
}

// Cancellative checks both LeftCancellative and RightCancellative.
func Cancellative[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll3(named("cancellative", symbol), d, func(a, b, c T) string {
		return first(
			cancels(d, expr("a · b = a · c", symbol), op(a, b), op(a, c), b, c),
			cancels(d, expr("b · a = c · a", symbol), op(b, a), op(c, a), b, c),
		)
	})
}

func cancels[T any](d laws.Domain[T], premise string, x, y, b, c T) string {
	if !d.Eq(x, y) || d.Eq(b, c) {
		return ""
	}
	return premise + " = " + d.Render(x) + " but b != c"
}

// NoZeroDivisors checks that a · b is not zero for non-zero a and b.
func NoZeroDivisors[T any](symbol string, op algebra.Binary[T], zero T, d laws.Domain[T]) laws.Law {
	nonZero := d.Where(func(v T) bool { return !d.Eq(v, zero) })
	return laws.ForAll2(named("no zero divisors", symbol), nonZero, func(a, b T) string {
		if d.Eq(op(a, b), zero) {
			return expr("a · b = ", symbol) + d.Render(zero)
		}
		return ""
	})
}

// Involution checks f(f(a)) = a.
func Involution[T any](symbol string, f algebra.Unary[T], d laws.Domain[T]) laws.Law {
	l := symbol + "(" + symbol + "(a))"
	return laws.ForAll1(named("involution", symbol), d, func(a T) string {
		return differ(d, l, f(f(a)), "a", a)
	})
}

// Flexibility checks (a · b) · a = a · (b · a).
func Flexibility[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	l, r := expr("(a · b) · a", symbol), expr("a · (b · a)", symbol)
	return laws.ForAll2(named("flexibility", symbol), d, func(a, b T) string {
		return differ(d, l, op(op(a, b), a), r, op(a, op(b, a)))
	})
}

// LeftAlternativity checks (a · a) · b = a · (a · b).
func LeftAlternativity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("left alternativity", symbol), d, func(a, b T) string {
		return leftAlternative(d, symbol, op, a, b)
	})
}

// RightAlternativity checks (a · b) · b = a · (b · b).
func RightAlternativity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("right alternativity", symbol), d, func(a, b T) string {
		return rightAlternative(d, symbol, op, a, b)
	})
}

// Alternativity checks both LeftAlternativity and RightAlternativity.
func Alternativity[T any](symbol string, op algebra.Binary[T], d laws.Domain[T]) laws.Law {
	return laws.ForAll2(named("alternativity", symbol), d, func(a, b T) string {
		return first(leftAlternative(d, symbol, op, a, b), rightAlternative(d, symbol, op, a, b))
	})
}

func leftAlternative[T any](d laws.Domain[T], symbol string, op algebra.Binary[T], a, b T) string {
	return differ(d, expr("(a · a) · b", symbol), op(op(a, a), b), expr("a · (a · b)", symbol), op(a, op(a, b)))
}

func rightAlternative[T any](d laws.Domain[T], symbol string, op algebra.Binary[T], a, b T) string {
	return differ(d, expr("(a · b) · b", symbol), op(op(a, b), b), expr("a · (b · b)", symbol), op(a, op(b, b)))
}
