package fraction

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NormalizesSign(t *testing.T) {
	f, err := New(3, -4)
	require.NoError(t, err)
	assert.Equal(t, Fraction{Num: -3, Den: 4}, f)

	_, err = New(1, 0)
	assert.True(t, errors.Is(err, ErrZeroDenominator))

	_, err = New(1, math.MinInt)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = New(math.MinInt, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	f, err = New(math.MinInt, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Den)
}

func TestF_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { F(1, 0) })
}

func TestReduce(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Fraction
	}{
		{F(6, 8), F(3, 4)},
		{F(4, 6), F(2, 3)},
		{F(3, 4), F(3, 4)},
		{F(12, 4), F(3, 1)},
		{F(-10, 15), F(-2, 3)},
		{F(0, 5), F(0, 1)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.in.Reduce(), "Reduce(%v)", tc.in)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, F(3, 4).IsReduced())
	assert.False(t, F(6, 8).IsReduced())
	assert.True(t, F(8, 4).IsWhole())
	assert.False(t, F(5, 4).IsWhole())
	assert.True(t, F(7, 7).IsUnit())
	assert.False(t, F(2, 4).IsUnit())
}

func TestDiv(t *testing.T) {
	q, err := F(3, 4).Div(F(3, 8))
	require.NoError(t, err)
	assert.Equal(t, F(2, 1), q)

	q, err = F(3, 4).Div(F(6, 5))
	require.NoError(t, err)
	assert.Equal(t, F(5, 8), q)

	_, err = F(3, 4).Div(F(0, 1))
	assert.ErrorIs(t, err, ErrZeroDenominator)
}

func TestMulAndReciprocal(t *testing.T) {
	assert.Equal(t, F(1, 2), F(2, 3).Mul(F(3, 4)))
	assert.Equal(t, F(8, 3), F(3, 8).Reciprocal())
	assert.Equal(t, F(-4, 3), F(-3, 4).Reciprocal())

	// -1/MinInt has no int representation, so the flip is refused.
	assert.Equal(t, F(math.MinInt, 1), F(math.MinInt, 1).Reciprocal())
}

func TestEqual(t *testing.T) {
	assert.True(t, F(2, 4).Equal(F(1, 2)))
	assert.True(t, F(6, 10).Equal(F(3, 5)))
	assert.False(t, F(2, 3).Equal(F(3, 5)))
	assert.False(t, Fraction{Num: 1}.Equal(F(1, 2)))
	assert.False(t, F(2, 4).Identical(F(1, 2)))
}

func TestEqual_LargeTerms(t *testing.T) {
	// 6148914691236517206 × 3 wraps to 2 in 64-bit arithmetic.
	huge := Fraction{Num: 6148914691236517206, Den: 2}
	assert.False(t, huge.Equal(F(1, 3)))
	assert.False(t, F(1, 3).Equal(huge))

	assert.True(t, F(math.MaxInt, math.MaxInt).Equal(F(1, 1)))
	assert.True(t, F(math.MaxInt-1, 2).Equal(F((math.MaxInt-1)/2, 1)))
	assert.False(t, F(math.MaxInt, math.MaxInt-1).Equal(F(math.MaxInt-1, math.MaxInt-2)))
}

func TestValue(t *testing.T) {
	assert.Equal(t, "3/4", F(6, 8).Value().String())
}

func TestStringAndMixed(t *testing.T) {
	assert.Equal(t, "3/4", F(3, 4).String())
	assert.Equal(t, "2", F(2, 1).String())
	assert.Equal(t, "1 1/2", F(3, 2).Mixed())
	assert.Equal(t, "-2 1/3", F(-7, 3).Mixed())
	assert.Equal(t, "5/8", F(5, 8).Mixed())
	assert.Equal(t, "3", F(6, 2).Mixed())
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 4, GCD(8, 12))
	assert.Equal(t, 1, GCD(3, 4))
	assert.Equal(t, 5, GCD(-5, 0))
	assert.Equal(t, 0, GCD(0, 0))
}
