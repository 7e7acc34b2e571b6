// SPDX-License-Identifier: MIT
// Package: stablematch/prefgen
//
// options.go: functional options for Generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on nil inputs; generation never panics.
//   • Later options override earlier ones.

package prefgen

import "math/rand"

// Option customizes a Generator.
type Option func(*config)

// config is the single source of truth for Generator knobs.
type config struct {
	rng        *rand.Rand
	proposerID IDFn
	receiverID IDFn
}

// newConfig applies opts over deterministic defaults:
// seed 0 (defaultSeed), S_1..S_n proposers, E_1..E_n receivers.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        rngFromSeed(0),
		proposerID: PrefixedIDFn(DefaultProposerPrefix),
		receiverID: PrefixedIDFn(DefaultReceiverPrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a fresh deterministic source seeded with seed (0 ⇒ default seed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r directly. The Generator takes ownership of r.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("prefgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithProposerIDs sets the proposer identifier scheme. Panics on nil.
func WithProposerIDs(fn IDFn) Option {
	if fn == nil {
		panic("prefgen: WithProposerIDs(nil)")
	}
	return func(c *config) {
		c.proposerID = fn
	}
}

// WithReceiverIDs sets the receiver identifier scheme. Panics on nil.
func WithReceiverIDs(fn IDFn) Option {
	if fn == nil {
		panic("prefgen: WithReceiverIDs(nil)")
	}
	return func(c *config) {
		c.receiverID = fn
	}
}
