package prefgen_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/prefgen"
)

// TestMarket_Complete checks that every generated list is a permutation of
// the other group.
func TestMarket_Complete(t *testing.T) {
	m, err := prefgen.New(prefgen.WithSeed(3)).Market(12)
	require.NoError(t, err)
	require.Equal(t, 12, m.Size())
	assert.Equal(t, "S_1", m.ID(market.Proposers, 0))
	assert.Equal(t, "E_12", m.ID(market.Receivers, 11))

	for _, side := range []market.Side{market.Proposers, market.Receivers} {
		want := m.Agents(side.Other())
		slices.Sort(want)
		for id, list := range m.Profile(side) {
			got := slices.Clone(list)
			slices.Sort(got)
			assert.Equal(t, want, got, "%s %s", side, id)
		}
	}
}

func TestMarket_Deterministic(t *testing.T) {
	a, err := prefgen.New(prefgen.WithSeed(99)).Market(20)
	require.NoError(t, err)
	b, err := prefgen.New(prefgen.WithSeed(99)).Market(20)
	require.NoError(t, err)
	c, err := prefgen.New(prefgen.WithSeed(100)).Market(20)
	require.NoError(t, err)

	assert.Equal(t, a.Profile(market.Proposers), b.Profile(market.Proposers))
	assert.Equal(t, a.Profile(market.Receivers), b.Profile(market.Receivers))
	assert.NotEqual(t, a.Profile(market.Proposers), c.Profile(market.Proposers))
}

func TestWithSeed_ZeroIsDefault(t *testing.T) {
	zero, err := prefgen.New(prefgen.WithSeed(0)).Market(8)
	require.NoError(t, err)
	def, err := prefgen.New().Market(8)
	require.NoError(t, err)
	one, err := prefgen.New(prefgen.WithSeed(1)).Market(8)
	require.NoError(t, err)

	assert.Equal(t, def.Profile(market.Proposers), zero.Profile(market.Proposers))
	assert.Equal(t, one.Profile(market.Receivers), zero.Profile(market.Receivers))
}

func TestWithRand(t *testing.T) {
	a := prefgen.New(prefgen.WithRand(rand.New(rand.NewSource(5))))
	b := prefgen.New(prefgen.WithSeed(5))
	agents := []string{"a", "b", "c"}
	counterparts := []string{"x", "y", "z", "w"}

	assert.Equal(t, b.Profile(agents, counterparts), a.Profile(agents, counterparts))
}

func TestProfile_DoesNotMutateInput(t *testing.T) {
	counterparts := []string{"x", "y", "z", "w", "v"}
	before := slices.Clone(counterparts)
	prof := prefgen.New(prefgen.WithSeed(11)).Profile([]string{"a", "b"}, counterparts)

	assert.Equal(t, before, counterparts)
	assert.Len(t, prof, 2)
}

func TestMarket_CustomIDs(t *testing.T) {
	m, err := prefgen.New(
		prefgen.WithProposerIDs(prefgen.LetterIDFn),
		prefgen.WithReceiverIDs(prefgen.DecimalIDFn),
	).Market(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, m.Agents(market.Proposers))
	assert.Equal(t, []string{"0", "1", "2"}, m.Agents(market.Receivers))

	// A constant scheme repeats identifiers and must be rejected by the market.
	_, err = prefgen.New(prefgen.WithProposerIDs(func(int) string { return "dup" })).Market(2)
	assert.ErrorIs(t, err, market.ErrInvalidAgent)
}

func TestMarket_BadSize(t *testing.T) {
	for _, n := range []int{0, -4} {
		_, err := prefgen.New().Market(n)
		assert.ErrorIs(t, err, prefgen.ErrBadSize, "n=%d", n)
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { prefgen.WithRand(nil) })
	assert.Panics(t, func() { prefgen.WithProposerIDs(nil) })
	assert.Panics(t, func() { prefgen.WithReceiverIDs(nil) })
}

func TestDeriveSeed(t *testing.T) {
	seen := make(map[int64]uint64)
	for s := uint64(0); s < 1000; s++ {
		d := prefgen.DeriveSeed(42, s)
		assert.NotZero(t, d)
		if prev, dup := seen[d]; dup {
			t.Fatalf("streams %d and %d collide on %d", prev, s, d)
		}
		seen[d] = s
	}

	assert.Equal(t, prefgen.DeriveSeed(42, 7), prefgen.DeriveSeed(42, 7))
	assert.NotEqual(t, prefgen.DeriveSeed(42, 7), prefgen.DeriveSeed(43, 7))
	assert.Equal(t, prefgen.DeriveSeed(1, 3), prefgen.DeriveSeed(0, 3), "parent 0 is the default seed")
}
