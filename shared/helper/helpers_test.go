package helper_test

import (
	"math/big"
	"testing"

	"github.com/on-the-ground/kosmos/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAs(t *testing.T) {
	v, err := helper.ValueAs[int](3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.ValueAs[string](3)
	assert.ErrorContains(t, err, "unexpected type: int")
}

func TestValuesAs(t *testing.T) {
	vs, err := helper.ValuesAs[*big.Int]([]any{big.NewInt(1), big.NewInt(2)})
	require.NoError(t, err)
	assert.Len(t, vs, 2)

	_, err = helper.ValuesAs[*big.Int]([]any{big.NewInt(1), "x"})
	assert.ErrorContains(t, err, "value 1")
}
