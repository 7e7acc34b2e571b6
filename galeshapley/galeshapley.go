package galeshapley

import (
	"fmt"

	"github.com/katalvlaran/stablematch/market"
)

// free marks a receiver that holds no offer.
const free = -1

// Solve runs deferred acceptance on m with side proposing.
//
// For side == market.Receivers the market is transposed, the same procedure
// runs, and the matching is transposed back, so Result.Matching is always
// oriented proposer→receiver of m.
//
// Errors: ErrNilMarket, market.ErrUnknownSide, ErrOptionViolation, and,
// only for inconsistent markets, ErrExhaustedPreferences.
func Solve(m *market.Market, side market.Side, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilMarket
	}
	if !side.Valid() {
		return nil, fmt.Errorf("galeshapley: %w: %d", market.ErrUnknownSide, int(side))
	}

	view := m
	if side == market.Receivers {
		view = m.Transpose()
	}

	partners, proposals, err := Propose(view.Preferences(market.Proposers), view.Index(market.Receivers), opts...)
	if err != nil {
		return nil, fmt.Errorf("galeshapley: %s proposing: %w", side, err)
	}
	mt, err := market.NewMatching(partners)
	if err != nil {
		return nil, fmt.Errorf("galeshapley: %s proposing: %w", side, err)
	}
	if side == market.Receivers {
		mt = mt.Transpose()
	}

	return &Result{Matching: mt, Proposing: side, Proposals: proposals}, nil
}

// ProposerOptimal runs Solve with proposers driving.
func ProposerOptimal(m *market.Market, opts ...Option) (*Result, error) {
	return Solve(m, market.Proposers, opts...)
}

// ReceiverOptimal runs Solve with receivers driving.
func ReceiverOptimal(m *market.Market, opts ...Option) (*Result, error) {
	return Solve(m, market.Receivers, opts...)
}

// engine holds the working state of one run. It is owned by a single call
// and discarded on return.
type engine struct {
	prefs     [][]int           // proposer → receivers, best first
	receivers *market.RankIndex // receiver → rank of each proposer
	next      []int             // cursor: next untried position per proposer
	held      []int             // receiver → proposer currently held, or free
	queue     []int             // pending proposers, FIFO
	proposals int
	onPropose func(Proposal)
}

// Propose is the deferred-acceptance procedure itself. prefs[p] lists the
// receiver positions proposer p ranks, best first; receivers is the rank
// index of the receiving group over the proposers.
//
// prefs is NOT assumed to be validated: a list that runs out while its
// proposer is still free yields ErrExhaustedPreferences, and an entry
// outside the receiver range yields market.ErrInvalidPreferenceList. In
// both cases no partial matching is returned.
//
// On success it returns proposer→receiver positions and the number of
// proposals made.
//
// Complexity: O(n²) time, O(n) extra space.
func Propose(prefs [][]int, receivers *market.RankIndex, opts ...Option) ([]int, int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	n := len(prefs)
	if n == 0 {
		return nil, 0, market.ErrEmptyGroup
	}
	if receivers == nil || receivers.Len() != n || receivers.Counterparts() != n {
		return nil, 0, fmt.Errorf("%w: %d proposers against receiver index of %v", market.ErrGroupSizeMismatch, n, indexShape(receivers))
	}

	queue, err := initialQueue(n, o.InitialOrder)
	if err != nil {
		return nil, 0, err
	}

	e := &engine{
		prefs:     prefs,
		receivers: receivers,
		next:      make([]int, n),
		held:      make([]int, n),
		queue:     queue,
		onPropose: o.OnPropose,
	}
	for r := range e.held {
		e.held[r] = free
	}

	if err = e.run(); err != nil {
		return nil, e.proposals, err
	}

	return e.invert(), e.proposals, nil
}

// run drains the pending queue. Each iteration makes exactly one proposal
// and advances exactly one cursor, so it stops after at most n² iterations.
func (e *engine) run() error {
	n := len(e.prefs)
	for len(e.queue) > 0 {
		p := e.queue[0]
		e.queue = e.queue[1:]

		list := e.prefs[p]
		if e.next[p] >= len(list) {
			return fmt.Errorf("%w: proposer %d after %d proposals", ErrExhaustedPreferences, p, e.next[p])
		}
		r := list[e.next[p]]
		e.next[p]++
		e.proposals++
		if r < 0 || r >= n {
			return fmt.Errorf("%w: proposer %d lists receiver %d outside [0,%d)", market.ErrInvalidPreferenceList, p, r, n)
		}

		current := e.held[r]
		switch {
		case current == free:
			e.held[r] = p
			e.onPropose(Proposal{Proposer: p, Receiver: r, Accepted: true, Displaced: free})
		case e.receivers.Prefers(r, p, current):
			e.held[r] = p
			e.queue = append(e.queue, current)
			e.onPropose(Proposal{Proposer: p, Receiver: r, Accepted: true, Displaced: current})
		default:
			e.queue = append(e.queue, p)
			e.onPropose(Proposal{Proposer: p, Receiver: r, Accepted: false, Displaced: free})
		}
	}

	return nil
}

// invert turns receiver→proposer engagements into proposer→receiver.
func (e *engine) invert() []int {
	out := make([]int, len(e.held))
	for r, p := range e.held {
		out[p] = r
	}

	return out
}

// initialQueue returns 0..n-1, or a validated copy of order.
func initialQueue(n int, order []int) ([]int, error) {
	queue := make([]int, n)
	if order == nil {
		for i := range queue {
			queue[i] = i
		}
		return queue, nil
	}
	if len(order) != n {
		return nil, fmt.Errorf("%w: initial order has %d entries, want %d", ErrOptionViolation, len(order), n)
	}
	seen := make([]bool, n)
	for i, p := range order {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: initial order is not a permutation (entry %d at %d)", ErrOptionViolation, p, i)
		}
		seen[p] = true
		queue[i] = p
	}

	return queue, nil
}

func indexShape(x *market.RankIndex) string {
	if x == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", x.Len(), x.Counterparts())
}
