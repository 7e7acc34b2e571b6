package stability

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stablematch/market"
)

var (
	// ErrNilInput is returned when the market or the matching is nil.
	ErrNilInput = errors.New("stability: market and matching must be non-nil")

	// ErrTooLarge is returned by Enumerate for markets above MaxEnumerateSize.
	ErrTooLarge = errors.New("stability: market too large to enumerate")
)

// BlockingPair is a proposer and a receiver, by position, who both strictly
// prefer each other to their current partners.
type BlockingPair struct {
	Proposer int
	Receiver int
}

// Report is the outcome of Verify.
type Report struct {
	// Stable is true iff BlockingPairs is empty.
	Stable bool

	// BlockingPairs in proposer order, then in the proposer's preference order.
	BlockingPairs []BlockingPair
}

// Verify reports every blocking pair of mt in m.
//
// The order of BlockingPairs is deterministic: proposers ascending, and for
// each proposer the receivers it prefers to its partner, best first.
//
// Errors: ErrNilInput; market.ErrGroupSizeMismatch when mt and m differ in size.
//
// Complexity: O(n²) time, O(b) extra space for b blocking pairs.
func Verify(m *market.Market, mt *market.Matching) (*Report, error) {
	if m == nil || mt == nil {
		return nil, ErrNilInput
	}
	if mt.Size() != m.Size() {
		return nil, fmt.Errorf("stability: %w: matching of size %d, market of size %d",
			market.ErrGroupSizeMismatch, mt.Size(), m.Size())
	}

	var (
		proposerRanks = m.Index(market.Proposers)
		receiverRanks = m.Index(market.Receivers)
		pairs         []BlockingPair
	)
	for p := 0; p < m.Size(); p++ {
		k := proposerRanks.Rank(p, mt.Partner(market.Proposers, p))
		for i := 0; i < k; i++ {
			q := m.Choice(market.Proposers, p, i)
			holder := mt.Partner(market.Receivers, q)
			if receiverRanks.Prefers(q, p, holder) {
				pairs = append(pairs, BlockingPair{Proposer: p, Receiver: q})
			}
		}
	}

	return &Report{Stable: len(pairs) == 0, BlockingPairs: pairs}, nil
}

// IsStable is Verify reduced to its flag.
func IsStable(m *market.Market, mt *market.Matching) (bool, error) {
	rep, err := Verify(m, mt)
	if err != nil {
		return false, err
	}

	return rep.Stable, nil
}

// IDs renders the blocking pairs as (proposer, receiver) identifiers of m.
func (r *Report) IDs(m *market.Market) [][2]string {
	out := make([][2]string, len(r.BlockingPairs))
	for i, bp := range r.BlockingPairs {
		out[i] = [2]string{m.ID(market.Proposers, bp.Proposer), m.ID(market.Receivers, bp.Receiver)}
	}

	return out
}
