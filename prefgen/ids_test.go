package prefgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stablematch/prefgen"
)

func TestPrefixedIDFn(t *testing.T) {
	fn := prefgen.PrefixedIDFn(prefgen.DefaultProposerPrefix)
	assert.Equal(t, "S_1", fn(0))
	assert.Equal(t, "S_10", fn(9))
	assert.Panics(t, func() { fn(-1) })
}

func TestLetterIDFn(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, prefgen.LetterIDFn(idx), "idx=%d", idx)
	}
	assert.Panics(t, func() { prefgen.LetterIDFn(-1) })
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, prefgen.IDs(prefgen.DecimalIDFn, 3))
	assert.Equal(t, []string{"E_1", "E_2"}, prefgen.IDs(prefgen.PrefixedIDFn(prefgen.DefaultReceiverPrefix), 2))
	assert.Empty(t, prefgen.IDs(prefgen.DecimalIDFn, 0))

	seen := make(map[string]bool)
	for _, id := range prefgen.IDs(prefgen.LetterIDFn, 2000) {
		assert.False(t, seen[id], "duplicate %q", id)
		seen[id] = true
	}
}
