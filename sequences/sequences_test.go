package sequences_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/kosmos/recurrence"
	"github.com/on-the-ground/kosmos/sequences"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func assertTerms(t *testing.T, s *sequences.Integers, from int, want []*big.Int) {
	t.Helper()
	got, err := s.Terms(from, from+len(want)-1)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Zero(t, want[i].Cmp(got[i]), "%s(%d) = %s, want %s", s.Name(), from+i, got[i], want[i])
	}
}

func TestPublishedPrefixes(t *testing.T) {
	tests := []struct {
		name string
		seq  *sequences.Integers
		from int
		want []*big.Int
	}{
		{"partition", sequences.Partition(), 0, ints(1, 1, 2, 3, 5, 7, 11, 15, 22, 30, 42)},
		{"fibonacci", sequences.Fibonacci(), 1, ints(1, 1, 2, 3, 5, 8, 13, 21, 34, 55)},
		{"lucas", sequences.Lucas(), 0, ints(2, 1, 3, 4, 7, 11, 18, 29, 47, 76)},
		{"factorial", sequences.Factorial(), 0, ints(1, 1, 2, 6, 24, 120, 720, 5040)},
		{"double_factorial", sequences.DoubleFactorial(), 0, ints(1, 1, 2, 3, 8, 15, 48, 105, 384, 945)},
		{"catalan", sequences.Catalan(), 0, ints(1, 1, 2, 5, 14, 42, 132, 429, 1430, 4862)},
		{"motzkin", sequences.Motzkin(), 0, ints(1, 1, 2, 4, 9, 21, 51, 127, 323, 835)},
		{"bell", sequences.Bell(), 0, ints(1, 1, 2, 5, 15, 52, 203, 877, 4140)},
		{"derangements", sequences.Derangements(), 0, ints(1, 0, 1, 2, 9, 44, 265, 1854)},
		{"labeled_dags", sequences.LabeledDAGs(), 0, ints(1, 1, 3, 25, 543, 29281, 3781503)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTerms(t, tt.seq, tt.from, tt.want)
		})
	}
}

func TestPartition_LargeTerms(t *testing.T) {
	p := sequences.Partition()

	v, err := p.Value(100)
	require.NoError(t, err)
	assert.Equal(t, "190569292", v.String())

	v, err = p.Value(1000)
	require.NoError(t, err)
	assert.Equal(t, "24061467864032622473692149727991", v.String())
}

func TestPartition_DeepFirstQuery(t *testing.T) {
	// a cold query far beyond the depth budget
	p := sequences.Partition(recurrence.WithDepthBudget[*big.Int](32))
	v, err := p.Value(3000)
	require.NoError(t, err)
	assert.Positive(t, v.Sign())
	assert.Equal(t, 3000, p.Len())
}

func TestPartition_Monotone(t *testing.T) {
	p := sequences.Partition()
	prev, err := p.Value(0)
	require.NoError(t, err)
	for n := 1; n <= 300; n++ {
		cur, err := p.Value(n)
		require.NoError(t, err)
		assert.LessOrEqual(t, prev.Cmp(cur), 0, "p(%d) > p(%d)", n-1, n)
		prev = cur
	}
}

func TestNegativeIndexConventions(t *testing.T) {
	rejecting := map[string]*sequences.Integers{
		"fibonacci":    sequences.Fibonacci(),
		"lucas":        sequences.Lucas(),
		"factorial":    sequences.Factorial(),
		"catalan":      sequences.Catalan(),
		"motzkin":      sequences.Motzkin(),
		"bell":         sequences.Bell(),
		"derangements": sequences.Derangements(),
		"labeled_dags": sequences.LabeledDAGs(),
	}
	for name, s := range rejecting {
		_, err := s.Value(-1)
		assert.ErrorIs(t, err, recurrence.ErrNegativeIndex, name)
	}

	p := sequences.Partition()
	for _, n := range []int{-1, -5, -100} {
		v, err := p.Value(n)
		require.NoError(t, err)
		assert.Zero(t, v.Sign())
	}

	df := sequences.DoubleFactorial()
	v, err := df.Value(-1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
	_, err = df.Value(-2)
	assert.ErrorIs(t, err, recurrence.ErrNegativeIndex)
}

func TestValuesAreCopies(t *testing.T) {
	fib := sequences.Fibonacci()
	v, err := fib.Value(10)
	require.NoError(t, err)
	v.SetInt64(-1)

	again, err := fib.Value(10)
	require.NoError(t, err)
	assert.Equal(t, int64(55), again.Int64())
}

func TestClear_ReproducesValue(t *testing.T) {
	dags := sequences.LabeledDAGs()
	before, err := dags.Value(40)
	require.NoError(t, err)
	assert.NotZero(t, dags.Len())

	dags.Clear()
	assert.Zero(t, dags.Len())

	after, err := dags.Value(40)
	require.NoError(t, err)
	assert.Zero(t, before.Cmp(after))
}

func TestTerms_PropagatesError(t *testing.T) {
	_, err := sequences.Catalan().Terms(-2, 3)
	assert.ErrorIs(t, err, recurrence.ErrNegativeIndex)

	empty, err := sequences.Catalan().Terms(3, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNames(t *testing.T) {
	uni, bi := sequences.Names()
	assert.Contains(t, uni, "partition")
	assert.Contains(t, bi, "stirling_second")
	assert.IsIncreasing(t, uni)
	assert.Len(t, uni, len(sequences.Named()))
	assert.Len(t, bi, len(sequences.NamedLattices()))

	for name, ctor := range sequences.Named() {
		assert.Equal(t, name, ctor().Name())
	}
	for name, ctor := range sequences.NamedLattices() {
		assert.Equal(t, name, ctor().Name())
	}
}
