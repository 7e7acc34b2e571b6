package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/market"
)

// TestNewMatching_Inverse verifies both directions stay consistent.
func TestNewMatching_Inverse(t *testing.T) {
	mt, err := market.NewMatching([]int{2, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, 3, mt.Size())
	for p := 0; p < 3; p++ {
		r := mt.Partner(market.Proposers, p)
		assert.Equal(t, p, mt.Partner(market.Receivers, r))
	}
	assert.Equal(t, []market.Pair{
		{Proposer: 0, Receiver: 2},
		{Proposer: 1, Receiver: 0},
		{Proposer: 2, Receiver: 1},
	}, mt.Pairs())
	assert.Equal(t, "[2 0 1]", mt.String())
}

// TestNewMatching_Errors rejects empty, out-of-range and non-injective input.
func TestNewMatching_Errors(t *testing.T) {
	_, err := market.NewMatching(nil)
	assert.ErrorIs(t, err, market.ErrEmptyGroup)

	_, err = market.NewMatching([]int{0, 3, 1})
	assert.ErrorIs(t, err, market.ErrNotBijective)

	_, err = market.NewMatching([]int{1, 1, 0})
	assert.ErrorIs(t, err, market.ErrNotBijective)
}

// TestNewMatching_CopiesInput guards immutability.
func TestNewMatching_CopiesInput(t *testing.T) {
	in := []int{1, 0}
	mt, err := market.NewMatching(in)
	require.NoError(t, err)
	in[0] = 0
	assert.Equal(t, 1, mt.Partner(market.Proposers, 0))
}

// TestMatching_TransposeAndEqual checks orientation swapping.
func TestMatching_TransposeAndEqual(t *testing.T) {
	mt, err := market.NewMatching([]int{1, 2, 0})
	require.NoError(t, err)

	tr := mt.Transpose()
	assert.Equal(t, []int{2, 0, 1}, []int{
		tr.Partner(market.Proposers, 0),
		tr.Partner(market.Proposers, 1),
		tr.Partner(market.Proposers, 2),
	})
	assert.True(t, tr.Transpose().Equal(mt))
	assert.False(t, tr.Equal(mt))

	var nilMatching *market.Matching
	assert.False(t, mt.Equal(nilMatching))
}

// TestMarket_MatchingIDs round-trips identifier maps.
func TestMarket_MatchingIDs(t *testing.T) {
	ps, rs, pp, rp := scenario()
	m, err := market.New(ps, rs, pp, rp)
	require.NoError(t, err)

	want := map[string]string{"A": "Y", "B": "X", "C": "Z"}
	mt, err := m.MatchingFromIDs(want)
	require.NoError(t, err)
	assert.Equal(t, 1, mt.Partner(market.Proposers, 0))

	got, err := m.MatchingIDs(mt)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = m.MatchingFromIDs(map[string]string{"A": "Y", "B": "Y", "C": "Z"})
	assert.ErrorIs(t, err, market.ErrNotBijective)

	_, err = m.MatchingFromIDs(map[string]string{"A": "Y", "B": "X"})
	assert.ErrorIs(t, err, market.ErrNotBijective)

	_, err = m.MatchingFromIDs(map[string]string{"A": "Y", "B": "X", "Q": "Z"})
	assert.ErrorIs(t, err, market.ErrInvalidAgent)

	_, err = m.MatchingFromIDs(map[string]string{"A": "Y", "B": "X", "C": "W"})
	assert.ErrorIs(t, err, market.ErrInvalidAgent)

	small, err := market.NewMatching([]int{0})
	require.NoError(t, err)
	_, err = m.MatchingIDs(small)
	assert.ErrorIs(t, err, market.ErrGroupSizeMismatch)
}
