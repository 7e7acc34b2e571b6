package dataset_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/dataset"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/prefgen"
)

const scenarioYAML = `
proposers: [A, B, C]
receivers: [X, Y, Z]
preferences:
  proposers: {A: [Y, X, Z], B: [X, Y, Z], C: [X, Z, Y]}
  receivers: {X: [B, A, C], Y: [A, C, B], Z: [C, B, A]}
matching: {A: Y, B: X, C: Z}
`

func TestDecode_Scenario(t *testing.T) {
	doc, err := dataset.Decode(strings.NewReader(scenarioYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, doc.Proposers)
	assert.Equal(t, []string{"Y", "X", "Z"}, doc.Preferences.Proposers["A"])
	assert.Equal(t, map[string]string{"A": "Y", "B": "X", "C": "Z"}, doc.Pairs)

	m, err := doc.Market()
	require.NoError(t, err)
	mt, err := doc.Matching(m)
	require.NoError(t, err)

	res, err := galeshapley.ProposerOptimal(m)
	require.NoError(t, err)
	assert.True(t, res.Matching.Equal(mt))
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"syntax":        "proposers: [A, B",
		"unknown field": scenarioYAML + "extra: 1\n",
		"wrong type":    "proposers: {A: 1}\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Decode(strings.NewReader(in))
			assert.ErrorIs(t, err, dataset.ErrMalformed)
		})
	}
}

func TestDocument_MarketValidation(t *testing.T) {
	doc, err := dataset.Decode(strings.NewReader(`
proposers: [A, B]
receivers: [X, Y]
preferences:
  proposers: {A: [X, Y], B: [X]}
  receivers: {X: [A, B], Y: [B, A]}
`))
	require.NoError(t, err)

	_, err = doc.Market()
	assert.ErrorIs(t, err, market.ErrInvalidPreferenceList)
}

func TestDocument_Matching(t *testing.T) {
	doc, err := dataset.Decode(strings.NewReader(scenarioYAML))
	require.NoError(t, err)
	m, err := doc.Market()
	require.NoError(t, err)

	doc.Pairs = nil
	_, err = doc.Matching(m)
	assert.ErrorIs(t, err, dataset.ErrNoMatching)

	doc.Pairs = map[string]string{"A": "Y", "B": "X", "Q": "Z"}
	_, err = doc.Matching(m)
	assert.ErrorIs(t, err, market.ErrInvalidAgent)

	doc.Pairs = map[string]string{"A": "Y", "B": "Y", "C": "Z"}
	_, err = doc.Matching(m)
	assert.ErrorIs(t, err, market.ErrNotBijective)
}

func TestEncode_GroupOrder(t *testing.T) {
	doc, err := dataset.Decode(strings.NewReader(scenarioYAML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "proposers: [A, B, C]\n")
	assert.Contains(t, out, "    A: [Y, X, Z]\n")
	assert.Contains(t, out, "    Z: [C, B, A]\n")
	assert.Contains(t, out, "matching: {A: Y, B: X, C: Z}\n")
	assert.Less(t, strings.Index(out, "    A: "), strings.Index(out, "    B: "))
}

func TestEncode_ProfileKeysOutsideGroup(t *testing.T) {
	doc := &dataset.Document{
		Proposers: []string{"B", "A"},
		Receivers: []string{"X"},
		Preferences: dataset.Preferences{
			Proposers: map[string][]string{"A": {"X"}, "B": {"X"}, "D": {"X"}, "C": {"X"}},
			Receivers: map[string][]string{"X": {"B", "A"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, doc))
	out := buf.String()

	order := []string{"    B: [X]", "    A: [X]", "    C: [X]", "    D: [X]"}
	for i := 1; i < len(order); i++ {
		assert.Less(t, strings.Index(out, order[i-1]), strings.Index(out, order[i]), order[i])
	}
	assert.NotContains(t, out, "matching")
}

// TestEncode_RoundTrip writes a generated market with its matching and
// reads it back.
func TestEncode_RoundTrip(t *testing.T) {
	m, err := prefgen.New(prefgen.WithSeed(5)).Market(11)
	require.NoError(t, err)
	res, err := galeshapley.ReceiverOptimal(m)
	require.NoError(t, err)

	doc, err := dataset.FromMarket(m, res.Matching)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "market.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, dataset.Encode(f, doc))
	require.NoError(t, f.Close())

	back, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, back)

	m2, err := back.Market()
	require.NoError(t, err)
	assert.Equal(t, m.Agents(market.Proposers), m2.Agents(market.Proposers))
	assert.Equal(t, m.Profile(market.Receivers), m2.Profile(market.Receivers))
	mt, err := back.Matching(m2)
	require.NoError(t, err)
	assert.True(t, res.Matching.Equal(mt))
}

func TestFromMarket_WithoutMatching(t *testing.T) {
	m, err := prefgen.New().Market(2)
	require.NoError(t, err)
	doc, err := dataset.FromMarket(m, nil)
	require.NoError(t, err)
	assert.Nil(t, doc.Pairs)

	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, doc))
	assert.NotContains(t, buf.String(), "matching")
}

func TestLoad_Missing(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
