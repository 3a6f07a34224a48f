package gens_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/on-the-ground/kosmos/laws/gens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T, g gopter.Gen, n int) []any {
	t.Helper()
	params := gopter.DefaultGenParameters()
	var out []any
	for len(out) < n {
		v, ok := g(params).Retrieve()
		if ok {
			out = append(out, v)
		}
	}
	return out
}

func TestBigInt_StaysInRange(t *testing.T) {
	for _, raw := range sample(t, gens.BigInt(-5, 7), 200) {
		v := raw.(*big.Int)
		assert.True(t, v.Cmp(big.NewInt(-5)) >= 0 && v.Cmp(big.NewInt(7)) <= 0, v.String())
	}
}

func TestBigInt_ShrinksTowardZeroWithinRange(t *testing.T) {
	res := gens.BigInt(3, 100)(gopter.DefaultGenParameters())
	shrinks := res.Shrinker(big.NewInt(40)).All()
	require.NotEmpty(t, shrinks)
	for _, raw := range shrinks {
		v := raw.(*big.Int)
		assert.True(t, v.Cmp(big.NewInt(3)) >= 0 && v.Cmp(big.NewInt(40)) < 0, v.String())
	}
}

func TestBigRat_PositiveDenominator(t *testing.T) {
	for _, raw := range sample(t, gens.BigRat(9), 200) {
		r := raw.(*big.Rat)
		assert.Positive(t, r.Denom().Sign())
		assert.LessOrEqual(t, r.Denom().Int64(), int64(9))
	}

	res := gens.BigRat(9)(gopter.DefaultGenParameters())
	for _, raw := range res.Shrinker(big.NewRat(-7, 4)).All() {
		assert.Positive(t, raw.(*big.Rat).Denom().Sign())
	}
}

func TestResidue(t *testing.T) {
	for _, raw := range sample(t, gens.Residue(4), 100) {
		v := raw.(int64)
		assert.True(t, v >= 0 && v < 4)
	}
}

func TestNonZero(t *testing.T) {
	nonZero := gens.NonZero(gens.Residue(3), func(v int64) bool { return v == 0 })
	for _, raw := range sample(t, nonZero, 100) {
		assert.NotEqual(t, int64(0), raw.(int64))
	}
}

func TestDomains(t *testing.T) {
	d := gens.IntegerDomain(0, 1)
	assert.True(t, d.Eq(big.NewInt(1), big.NewInt(1)))
	assert.Equal(t, "12", d.Render(big.NewInt(12)))

	assert.Equal(t, `"x"`, gens.StringDomain().Render("x"))
	assert.Equal(t, "1/3", gens.RationalDomain(3).Render(big.NewRat(2, 6)))
	assert.Equal(t, "true", gens.BoolDomain().Render(true))
	assert.Equal(t, "-4", gens.Int64Domain(-5, 5).Render(-4))
	assert.Equal(t, "2", gens.ResidueDomain(5).Render(2))
}
