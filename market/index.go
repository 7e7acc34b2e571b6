package market

import "fmt"

// RankIndex is the PreferenceIndex of one group: for every agent it maps each
// counterpart to the position that counterpart occupies in the agent's
// preference list (0 = most preferred).
//
// Invariant: Rank(a, list[a][i]) == i for every agent a and position i.
// A RankIndex is only ever returned fully validated and is never mutated.
type RankIndex struct {
	side         Side
	counterparts int
	ranks        [][]int
}

// BuildIndex validates dense preference lists for one group and derives its
// rank table. prefs[a] is agent a's list of counterpart positions, best first;
// counterparts is the size of the opposite group.
//
// Every list must be a permutation of 0..counterparts-1. Any violation
// returns ErrInvalidPreferenceList wrapped with the offending agent; no
// index is returned in that case.
//
// Complexity: O(n·m) time and space for n agents and m counterparts.
func BuildIndex(side Side, prefs [][]int, counterparts int) (*RankIndex, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSide, int(side))
	}
	if len(prefs) == 0 || counterparts <= 0 {
		return nil, ErrEmptyGroup
	}

	ranks := make([][]int, len(prefs))
	for a, list := range prefs {
		row, err := rankRow(list, counterparts)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", side, a, err)
		}
		ranks[a] = row
	}

	return &RankIndex{side: side, counterparts: counterparts, ranks: ranks}, nil
}

// rankRow inverts one preference list. Length equal to counterparts plus
// no duplicates plus every entry in range implies a permutation.
func rankRow(list []int, counterparts int) ([]int, error) {
	if len(list) != counterparts {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidPreferenceList, len(list), counterparts)
	}
	row := make([]int, counterparts)
	for i := range row {
		row[i] = unmatched
	}
	for pos, c := range list {
		if c < 0 || c >= counterparts {
			return nil, fmt.Errorf("%w: entry %d at position %d outside [0,%d)",
				ErrInvalidPreferenceList, c, pos, counterparts)
		}
		if row[c] != unmatched {
			return nil, fmt.Errorf("%w: entry %d repeated at positions %d and %d",
				ErrInvalidPreferenceList, c, row[c], pos)
		}
		row[c] = pos
	}

	return row, nil
}

// Side returns the group whose preferences this index describes.
func (x *RankIndex) Side() Side { return x.side }

// Len returns the number of agents in the indexed group.
func (x *RankIndex) Len() int { return len(x.ranks) }

// Counterparts returns the size of the opposite group.
func (x *RankIndex) Counterparts() int { return x.counterparts }

// Rank returns the position of counterpart in agent's preference list.
// Both arguments must be valid positions; out-of-range values panic like
// any slice access.
func (x *RankIndex) Rank(agent, counterpart int) int {
	return x.ranks[agent][counterpart]
}

// Prefers reports whether agent strictly prefers a over b.
func (x *RankIndex) Prefers(agent, a, b int) bool {
	row := x.ranks[agent]

	return row[a] < row[b]
}

// flipped returns a view of the same rank table labelled with the other side.
func (x *RankIndex) flipped() *RankIndex {
	return &RankIndex{side: x.side.Other(), counterparts: x.counterparts, ranks: x.ranks}
}
