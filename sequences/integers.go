package sequences

import (
	"math/big"

	"github.com/on-the-ground/kosmos/recurrence"
)

// Integers is a memoized sequence of big integers.
type Integers struct {
	seq *recurrence.Sequence[*big.Int]
}

func newIntegers(base []int64, step recurrence.Step[*big.Int], opts []recurrence.Option[*big.Int]) *Integers {
	values := make([]*big.Int, len(base))
	for i, b := range base {
		values[i] = big.NewInt(b)
	}
	return &Integers{seq: recurrence.NewSequence(values, step, opts...)}
}

// Value returns a copy of the n-th term.
func (s *Integers) Value(n int) (*big.Int, error) {
	v, err := s.seq.Value(n)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

// Terms returns the terms from..to inclusive.
func (s *Integers) Terms(from, to int) ([]*big.Int, error) {
	out := make([]*big.Int, 0, max(to-from+1, 0))
	for n := from; n <= to; n++ {
		v, err := s.Value(n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Clear drops the cache.
func (s *Integers) Clear() { s.seq.Clear() }

// Len reports the number of cached terms.
func (s *Integers) Len() int { return s.seq.Len() }

// Name returns the sequence name.
func (s *Integers) Name() string { return s.seq.Name() }

// IntegerLattice is a memoized bivariate table of big integers.
type IntegerLattice struct {
	lat *recurrence.Lattice[*big.Int]
}

// Value returns a copy of the entry at (n, k).
func (l *IntegerLattice) Value(n, k int) (*big.Int, error) {
	v, err := l.lat.Value(n, k)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v), nil
}

// Row returns the entries (n, 0) .. (n, n).
func (l *IntegerLattice) Row(n int) ([]*big.Int, error) {
	if n < 0 {
		_, err := l.Value(n, 0)
		return nil, err
	}
	out := make([]*big.Int, 0, n+1)
	for k := 0; k <= n; k++ {
		v, err := l.Value(n, k)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Clear drops the cache.
func (l *IntegerLattice) Clear() { l.lat.Clear() }

// Len reports the number of cached entries.
func (l *IntegerLattice) Len() int { return l.lat.Len() }

// Name returns the lattice name.
func (l *IntegerLattice) Name() string { return l.lat.Name() }

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

func named(name string, opts []recurrence.Option[*big.Int]) []recurrence.Option[*big.Int] {
	return append([]recurrence.Option[*big.Int]{recurrence.WithName[*big.Int](name)}, opts...)
}

// binomial returns C(n, k) for 0 <= k <= n.
func binomial(n, k int) *big.Int {
	return new(big.Int).Binomial(int64(n), int64(k))
}

// sign returns (-1)^k.
func sign(k int) *big.Int {
	if k%2 == 0 {
		return big.NewInt(1)
	}
	return big.NewInt(-1)
}
