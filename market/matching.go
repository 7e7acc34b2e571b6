package market

import (
	"fmt"
	"slices"
)

// Pair is one proposer/receiver couple of a Matching, by position.
type Pair struct {
	Proposer int
	Receiver int
}

// Matching is a perfect one-to-one pairing of proposers and receivers.
//
// Both directions are stored: partner[Proposers][p] is p's receiver and
// partner[Receivers][r] is r's proposer. The two slices are inverse
// permutations by construction, so partner lookups in either direction are
// O(1) and no caller ever rebuilds an inverse.
type Matching struct {
	partner [2][]int
}

// NewMatching builds a Matching from proposerToReceiver, where entry p is
// the receiver position assigned to proposer p. The slice is copied.
// It returns ErrEmptyGroup for an empty slice and ErrNotBijective when the
// entries are not a permutation of 0..n-1.
//
// Complexity: O(n).
func NewMatching(proposerToReceiver []int) (*Matching, error) {
	n := len(proposerToReceiver)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	inverse := make([]int, n)
	for i := range inverse {
		inverse[i] = unmatched
	}
	for p, r := range proposerToReceiver {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: proposer %d paired with receiver %d outside [0,%d)", ErrNotBijective, p, r, n)
		}
		if inverse[r] != unmatched {
			return nil, fmt.Errorf("%w: receiver %d paired with proposers %d and %d", ErrNotBijective, r, inverse[r], p)
		}
		inverse[r] = p
	}

	return &Matching{partner: [2][]int{slices.Clone(proposerToReceiver), inverse}}, nil
}

// Size returns the number of pairs.
func (mt *Matching) Size() int { return len(mt.partner[Proposers]) }

// Partner returns the position of the partner of agent i of side.
func (mt *Matching) Partner(side Side, i int) int {
	return mt.partner[side][i]
}

// Pairs lists all couples in proposer order.
func (mt *Matching) Pairs() []Pair {
	out := make([]Pair, len(mt.partner[Proposers]))
	for p, r := range mt.partner[Proposers] {
		out[p] = Pair{Proposer: p, Receiver: r}
	}

	return out
}

// Transpose returns the same pairing seen from the receivers' side, matching
// the orientation of Market.Transpose. The storage is shared.
func (mt *Matching) Transpose() *Matching {
	return &Matching{partner: [2][]int{mt.partner[Receivers], mt.partner[Proposers]}}
}

// Equal reports whether both matchings pair the same agents.
func (mt *Matching) Equal(other *Matching) bool {
	if mt == nil || other == nil {
		return mt == other
	}

	return slices.Equal(mt.partner[Proposers], other.partner[Proposers])
}

// String renders the matching as a list of proposer→receiver positions.
func (mt *Matching) String() string {
	return fmt.Sprint(mt.partner[Proposers])
}
