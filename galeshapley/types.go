package galeshapley

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/market"
)

// Sentinel errors for deferred acceptance.
var (
	// ErrExhaustedPreferences is returned when a proposer runs out of
	// receivers while still unmatched. Validated markets never trigger it;
	// it signals malformed raw input passed to Propose.
	ErrExhaustedPreferences = errors.New("galeshapley: proposer exhausted its preferences while unmatched")

	// ErrNilMarket is returned when Solve receives a nil market.
	ErrNilMarket = errors.New("galeshapley: market is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("galeshapley: invalid option supplied")
)

// Proposal describes one step of the procedure, as seen by an OnPropose hook.
// Positions are relative to the proposing side of the run.
type Proposal struct {
	// Proposer made the offer to Receiver.
	Proposer int
	Receiver int

	// Accepted is true when Receiver now holds Proposer.
	Accepted bool

	// Displaced is the proposer Receiver released to accept this offer,
	// or -1 when Receiver was free or the offer was rejected.
	Displaced int
}

// Option configures a run via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the run parameters.
type Options struct {
	// InitialOrder, if non-nil, is the order in which proposers enter the
	// pending queue. It must be a permutation of the proposer positions.
	InitialOrder []int

	// OnPropose is called after every proposal has been resolved.
	OnPropose func(Proposal)

	err error
}

// DefaultOptions returns Options with group order and a no-op hook.
func DefaultOptions() Options {
	return Options{
		InitialOrder: nil,
		OnPropose:    func(Proposal) {},
	}
}

// WithInitialOrder seeds the pending queue in the given proposer order.
// The slice is copied; it is checked against the group size when the run starts.
func WithInitialOrder(order []int) Option {
	return func(o *Options) {
		if order == nil {
			o.err = fmt.Errorf("%w: initial order is nil", ErrOptionViolation)
			return
		}
		o.InitialOrder = append([]int(nil), order...)
	}
}

// WithOnPropose registers a hook observing every proposal.
func WithOnPropose(fn func(Proposal)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPropose = fn
		}
	}
}

// Result is the outcome of one deferred-acceptance run.
type Result struct {
	// Matching is oriented proposer→receiver of the market passed to Solve,
	// whichever side drove the run.
	Matching *market.Matching

	// Proposing is the side that made the offers.
	Proposing market.Side

	// Proposals is the number of offers made, at most n².
	Proposals int
}
