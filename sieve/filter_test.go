package sieve

import (
	"errors"
	"testing"

	"github.com/hupe1980/primeasn/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPrimes(t *testing.T) {
	s, err := New(13)
	require.NoError(t, err)

	got, err := FilterPrimes([]int{4, 5, 9, 11, 13}, s)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 11, 13}, got)
}

func TestFilterPrimes_PreservesOrderAndDuplicates(t *testing.T) {
	s, err := New(50)
	require.NoError(t, err)

	got, err := FilterPrimes([]int{47, 4, 2, 47, 0, 1, 3, 2}, s)
	require.NoError(t, err)
	assert.Equal(t, []int{47, 2, 47, 3, 2}, got)
}

func TestFilterPrimes_Empty(t *testing.T) {
	s, err := New(5)
	require.NoError(t, err)

	got, err := FilterPrimes(nil, s)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterPrimes_OutOfRange(t *testing.T) {
	s, err := New(13)
	require.NoError(t, err)

	got, err := FilterPrimes([]int{5, 14, 11}, s)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 14, ie.Index)

	_, err = FilterPrimes([]int{-3}, s)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFilterPrimes_Random(t *testing.T) {
	rng := testutil.NewRNG(42)
	candidates := rng.Candidates(2000, 65535)

	n, err := MaxCandidate(candidates)
	require.NoError(t, err)

	s, err := New(n)
	require.NoError(t, err)

	got, err := FilterPrimes(candidates, s)
	require.NoError(t, err)

	var want []int
	for _, c := range candidates {
		if testutil.IsPrime(c) {
			want = append(want, c)
		}
	}
	assert.Equal(t, want, got)
}

func TestMaxCandidate(t *testing.T) {
	n, err := MaxCandidate([]int{4, 5, 9, 11, 13, 2})
	require.NoError(t, err)
	assert.Equal(t, 13, n)

	_, err = MaxCandidate(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
