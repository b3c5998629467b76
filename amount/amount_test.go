package amount_test

import (
	"testing"

	"github.com/routekit/vrpkit/amount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := amount.Amount{10, 20}
	b := amount.Amount{3, 5}

	sum, err := amount.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, amount.Amount{13, 25}, sum)

	diff, err := amount.Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, amount.Amount{7, 15}, diff)
}

func TestSubNegativeResult(t *testing.T) {
	a := amount.Amount{1, 1}
	b := amount.Amount{2, 0}

	_, err := amount.Sub(a, b)
	assert.ErrorIs(t, err, amount.ErrNegativeResult)
}

func TestDimensionMismatch(t *testing.T) {
	a := amount.Amount{1, 2, 3}
	b := amount.Amount{1, 2}

	_, err := amount.Add(a, b)
	assert.ErrorIs(t, err, amount.ErrDimensionMismatch)

	_, err = amount.Sub(a, b)
	assert.ErrorIs(t, err, amount.ErrDimensionMismatch)

	_, err = amount.LessOrEqual(a, b)
	assert.ErrorIs(t, err, amount.ErrDimensionMismatch)
}

func TestLessOrEqual(t *testing.T) {
	a := amount.Amount{1, 2}
	b := amount.Amount{2, 2}
	c := amount.Amount{2, 1}

	ok, err := amount.LessOrEqual(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = amount.LessOrEqual(b, c)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMax(t *testing.T) {
	a := amount.Amount{1, 5}
	b := amount.Amount{3, 2}

	m, err := amount.Max(a, b)
	require.NoError(t, err)
	assert.Equal(t, amount.Amount{3, 5}, m)
}

func TestCloneIsIndependent(t *testing.T) {
	a := amount.Amount{1, 2}
	b := a.Clone()
	b[0] = 99
	assert.Equal(t, int64(1), a[0])
}

func TestIsZero(t *testing.T) {
	assert.True(t, amount.New(3).IsZero())
	assert.False(t, amount.Amount{0, 1}.IsZero())
}
