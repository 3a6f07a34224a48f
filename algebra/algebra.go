package algebra

// Binary is a closed binary operation.
type Binary[T any] func(a, b T) T

// Unary is a closed unary operation.
type Unary[T any] func(a T) T

// Relation is a homogeneous binary relation.
type Relation[T any] func(a, b T) bool

// Semigroup claims an associative operation. Symbol names it in reports.
type Semigroup[T any] struct {
	Op     Binary[T]
	Symbol string
}

// Monoid claims a semigroup with a two-sided identity.
type Monoid[T any] struct {
	Semigroup[T]
	Identity T
}

// Group claims a monoid with inverses.
type Group[T any] struct {
	Monoid[T]
	Inverse Unary[T]
}

// Ring claims an abelian group under Add and a monoid under Mul, with Mul
// distributing over Add.
type Ring[T any] struct {
	Add Group[T]
	Mul Monoid[T]
}

// Zero is the additive identity.
func (r Ring[T]) Zero() T { return r.Add.Identity }

// One is the multiplicative identity.
func (r Ring[T]) One() T { return r.Mul.Identity }

// Field claims a commutative ring whose non-zero elements have
// reciprocals. Reciprocal is only consulted on non-zero elements.
type Field[T any] struct {
	Ring[T]
	Reciprocal Unary[T]
}

// Order is a relation with a symbol for reports.
type Order[T any] struct {
	Rel    Relation[T]
	Symbol string
}

// Power returns a op a op ... op a, n >= 1 times, folded from the left.
func Power[T any](op Binary[T], a T, n int) T {
	acc := a
	for i := 1; i < n; i++ {
		acc = op(acc, a)
	}
	return acc
}
