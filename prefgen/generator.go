// SPDX-License-Identifier: MIT
// Package: stablematch/prefgen
//
// generator.go: uniformly random complete preference profiles.
//
// Determinism:
//   • Agents are visited in slice order; each list is an independent
//     Fisher–Yates shuffle drawn from the Generator's single RNG.
//   • Proposer profiles are drawn before receiver profiles.

package prefgen

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/stablematch/market"
)

// Generator draws random preference profiles. Not safe for concurrent use.
type Generator struct {
	rng        *rand.Rand
	proposerID IDFn
	receiverID IDFn
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	cfg := newConfig(opts...)

	return &Generator{rng: cfg.rng, proposerID: cfg.proposerID, receiverID: cfg.receiverID}
}

// Profile returns, for every agent, a uniformly random permutation of
// counterparts. Agents are processed in slice order.
//
// Complexity: O(|agents|·|counterparts|).
func (g *Generator) Profile(agents, counterparts []string) map[string][]string {
	out := make(map[string][]string, len(agents))
	for _, a := range agents {
		list := slices.Clone(counterparts)
		shuffleStrings(list, g.rng)
		out[a] = list
	}

	return out
}

// Market builds an n×n market with generated identifiers and random
// complete preferences on both sides.
//
// Errors: ErrBadSize for n < 1; market validation errors if a custom ID
// scheme produces empty or repeated identifiers.
func (g *Generator) Market(n int) (*market.Market, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	proposers := IDs(g.proposerID, n)
	receivers := IDs(g.receiverID, n)
	proposerPrefs := g.Profile(proposers, receivers)
	receiverPrefs := g.Profile(receivers, proposers)

	m, err := market.New(proposers, receivers, proposerPrefs, receiverPrefs)
	if err != nil {
		return nil, fmt.Errorf("prefgen: %w", err)
	}

	return m, nil
}
