package recurrence_test

import (
	"testing"

	"github.com/on-the-ground/kosmos/memo"
	"github.com/on-the-ground/kosmos/recurrence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBinomial(opts ...recurrence.Option[int]) (*recurrence.Lattice[int], *int) {
	calls := 0
	opts = append([]recurrence.Option[int]{
		recurrence.WithDomain(func(n, k int) (int, bool) {
			if n >= 0 && (k < 0 || k > n) {
				return 0, true
			}
			return 0, false
		}),
	}, opts...)
	l := recurrence.NewLattice(
		func(n, k int) (int, bool) {
			if k == 0 || k == n {
				return 1, true
			}
			return 0, false
		},
		func(n, k int, self func(n, k int) int) int {
			calls++
			return self(n-1, k-1) + self(n-1, k)
		},
		opts...,
	)
	return l, &calls
}

func TestLattice_PascalRow(t *testing.T) {
	binom, _ := newBinomial()
	want := []int{1, 6, 15, 20, 15, 6, 1}
	for k, w := range want {
		v, err := binom.Value(6, k)
		require.NoError(t, err)
		assert.Equal(t, w, v, "C(6,%d)", k)
	}

	v, err := binom.Value(6, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestLattice_CachesAndClears(t *testing.T) {
	binom, calls := newBinomial()

	v, err := binom.Value(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 252, v)
	first := *calls
	assert.NotZero(t, first)

	_, err = binom.Value(10, 5)
	require.NoError(t, err)
	assert.Equal(t, first, *calls)
	assert.Equal(t, first, binom.Len())

	binom.Clear()
	again, err := binom.Value(10, 5)
	require.NoError(t, err)
	assert.Equal(t, v, again)
	assert.Equal(t, 2*first, *calls)
}

func TestLattice_NegativeRowRejected(t *testing.T) {
	binom, _ := newBinomial(recurrence.WithName[int]("binomial"))
	_, err := binom.Value(-1, 0)
	assert.ErrorIs(t, err, recurrence.ErrNegativeIndex)
}

func TestLattice_RejectsLargerPair(t *testing.T) {
	l := recurrence.NewLattice(
		func(n, k int) (int, bool) { return 1, n == 0 },
		func(n, k int, self func(n, k int) int) int {
			return self(n, k+1)
		},
	)
	_, err := l.Value(2, 2)
	assert.ErrorIs(t, err, recurrence.ErrNotSmaller)
}

func TestLattice_DeepRows(t *testing.T) {
	const mod = 1_000_003
	table, err := memo.NewRistrettoTable[memo.Pair, int](1<<16, memo.HashPair)
	require.NoError(t, err)
	defer table.Close()

	// Delannoy numbers modulo a prime along a thin strip.
	l := recurrence.NewLattice(
		func(m, n int) (int, bool) { return 1, m == 0 || n == 0 },
		func(m, n int, self func(m, n int) int) int {
			return (self(m-1, n) + self(m, n-1) + self(m-1, n-1)) % mod
		},
		recurrence.WithDepthBudget[int](16),
		recurrence.WithLatticeTable[int](table),
	)

	v, err := l.Value(3000, 2)
	require.NoError(t, err)
	// D(m, 2) = 2m^2 + 2m + 1
	m := 3000
	assert.Equal(t, (2*m*m+2*m+1)%mod, v)
}

func TestNewLattice_NilArgumentsPanic(t *testing.T) {
	assert.Panics(t, func() {
		recurrence.NewLattice[int](nil, func(n, k int, self func(n, k int) int) int { return 0 })
	})
}
