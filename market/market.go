package market

import (
	"fmt"
	"slices"
	"sort"
)

// Market is a validated two-sided matching instance: two groups of equal
// size n and, for every agent, a complete strict preference list over the
// opposite group. Both rank indices are built once by New.
//
// Arrays indexed by Side keep the two groups symmetric so that every
// algorithm can be written once and run with either side proposing.
type Market struct {
	groups [2][]string
	pos    [2]map[string]int
	prefs  [2][][]int
	index  [2]*RankIndex
}

// New validates both groups and both preference profiles and returns an
// immutable Market.
//
// Validation order (first failure wins):
//  1. either group empty                          → ErrEmptyGroup
//  2. groups of different size                    → ErrGroupSizeMismatch
//  3. empty or duplicate identifier in a group    → ErrInvalidAgent
//  4. profile with a missing or unknown agent key → ErrInvalidPreferenceList
//  5. list that is not a permutation of the other group → ErrInvalidPreferenceList
//
// The input slices and maps are copied; later changes by the caller do not
// affect the Market.
//
// Complexity: O(n²) time and space.
func New(proposers, receivers []string, proposerPrefs, receiverPrefs map[string][]string) (*Market, error) {
	if len(proposers) == 0 || len(receivers) == 0 {
		return nil, fmt.Errorf("%w: %d proposers, %d receivers", ErrEmptyGroup, len(proposers), len(receivers))
	}
	if len(proposers) != len(receivers) {
		return nil, fmt.Errorf("%w: %d proposers, %d receivers", ErrGroupSizeMismatch, len(proposers), len(receivers))
	}

	m := &Market{}
	m.groups[Proposers] = slices.Clone(proposers)
	m.groups[Receivers] = slices.Clone(receivers)

	var err error
	for _, side := range [2]Side{Proposers, Receivers} {
		if m.pos[side], err = positions(side, m.groups[side]); err != nil {
			return nil, err
		}
	}

	profiles := [2]map[string][]string{proposerPrefs, receiverPrefs}
	for _, side := range [2]Side{Proposers, Receivers} {
		if err = m.resolve(side, profiles[side]); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// positions maps identifiers to their index, rejecting empty and repeated IDs.
func positions(side Side, group []string) (map[string]int, error) {
	pos := make(map[string]int, len(group))
	for i, id := range group {
		if id == "" {
			return nil, fmt.Errorf("%w: empty identifier at %s[%d]", ErrInvalidAgent, side, i)
		}
		if j, dup := pos[id]; dup {
			return nil, fmt.Errorf("%w: %s %q appears at %d and %d", ErrInvalidAgent, side, id, j, i)
		}
		pos[id] = i
	}

	return pos, nil
}

// resolve converts one string-keyed profile into dense lists and builds the
// side's RankIndex. Nothing is stored unless the whole profile is valid.
func (m *Market) resolve(side Side, profile map[string][]string) error {
	n := len(m.groups[side])
	other := m.pos[side.Other()]

	// Unknown keys are reported in sorted order so errors are reproducible.
	if len(profile) != n {
		var unknown []string
		for id := range profile {
			if _, ok := m.pos[side][id]; !ok {
				unknown = append(unknown, id)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return fmt.Errorf("%w: %s profile names unknown agent %q", ErrInvalidPreferenceList, side, unknown[0])
		}
	}

	prefs := make([][]int, n)
	ranks := make([][]int, n)
	for i, id := range m.groups[side] {
		list, ok := profile[id]
		if !ok {
			return fmt.Errorf("%w: %s %q has no preference list", ErrInvalidPreferenceList, side, id)
		}
		dense := make([]int, len(list))
		for k, cid := range list {
			c, known := other[cid]
			if !known {
				return fmt.Errorf("%w: %s %q lists unknown %s %q",
					ErrInvalidPreferenceList, side, id, side.Other(), cid)
			}
			dense[k] = c
		}
		row, err := rankRow(dense, n)
		if err != nil {
			return fmt.Errorf("%s %q: %w", side, id, err)
		}
		prefs[i], ranks[i] = dense, row
	}

	m.prefs[side] = prefs
	m.index[side] = &RankIndex{side: side, counterparts: n, ranks: ranks}

	return nil
}

// Size returns n, the number of agents in each group.
func (m *Market) Size() int { return len(m.groups[Proposers]) }

// Agents returns a copy of the identifiers of one group, in position order.
func (m *Market) Agents(side Side) []string {
	return slices.Clone(m.groups[side])
}

// ID returns the identifier of the agent at position i of side.
func (m *Market) ID(side Side, i int) string {
	return m.groups[side][i]
}

// Lookup returns the position of identifier id within side.
func (m *Market) Lookup(side Side, id string) (int, bool) {
	i, ok := m.pos[side][id]

	return i, ok
}

// Preferences returns a copy of the dense preference lists of one group:
// Preferences(side)[a][k] is the position of a's k-th choice.
//
// Complexity: O(n²).
func (m *Market) Preferences(side Side) [][]int {
	src := m.prefs[side]
	out := make([][]int, len(src))
	for a, list := range src {
		out[a] = slices.Clone(list)
	}

	return out
}

// Choice returns the position of agent a's k-th choice (k = 0 is the
// favourite) without copying the list.
func (m *Market) Choice(side Side, a, k int) int {
	return m.prefs[side][a][k]
}

// PreferenceIDs returns a copy of the preference list of agent id, as identifiers.
func (m *Market) PreferenceIDs(side Side, id string) ([]string, error) {
	a, ok := m.pos[side][id]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidAgent, side, id)
	}
	others := m.groups[side.Other()]
	out := make([]string, len(m.prefs[side][a]))
	for k, c := range m.prefs[side][a] {
		out[k] = others[c]
	}

	return out, nil
}

// Index returns the RankIndex of one group.
func (m *Market) Index(side Side) *RankIndex {
	return m.index[side]
}

// Profile returns a fresh string-keyed copy of one group's preferences,
// in the shape accepted by New.
func (m *Market) Profile(side Side) map[string][]string {
	out := make(map[string][]string, m.Size())
	for _, id := range m.groups[side] {
		out[id], _ = m.PreferenceIDs(side, id)
	}

	return out
}

// Transpose returns the role-swapped market: receivers become proposers and
// vice versa. The result shares the immutable storage of m.
//
// Complexity: O(1).
func (m *Market) Transpose() *Market {
	return &Market{
		groups: [2][]string{m.groups[Receivers], m.groups[Proposers]},
		pos:    [2]map[string]int{m.pos[Receivers], m.pos[Proposers]},
		prefs:  [2][][]int{m.prefs[Receivers], m.prefs[Proposers]},
		index:  [2]*RankIndex{m.index[Receivers].flipped(), m.index[Proposers].flipped()},
	}
}

// MatchingFromIDs builds a Matching from a proposer→receiver identifier map,
// for example one produced outside this module and loaded for verification.
func (m *Market) MatchingFromIDs(pairs map[string]string) (*Matching, error) {
	n := m.Size()
	if len(pairs) != n {
		return nil, fmt.Errorf("%w: %d pairs for %d agents per side", ErrNotBijective, len(pairs), n)
	}
	partner := make([]int, n)
	for i := range partner {
		partner[i] = unmatched
	}
	for pid, rid := range pairs {
		p, ok := m.pos[Proposers][pid]
		if !ok {
			return nil, fmt.Errorf("%w: unknown proposer %q", ErrInvalidAgent, pid)
		}
		r, ok := m.pos[Receivers][rid]
		if !ok {
			return nil, fmt.Errorf("%w: unknown receiver %q", ErrInvalidAgent, rid)
		}
		partner[p] = r
	}

	return NewMatching(partner)
}

// MatchingIDs renders mt as a proposer→receiver identifier map.
func (m *Market) MatchingIDs(mt *Matching) (map[string]string, error) {
	if mt.Size() != m.Size() {
		return nil, fmt.Errorf("%w: matching of size %d, market of size %d", ErrGroupSizeMismatch, mt.Size(), m.Size())
	}
	out := make(map[string]string, mt.Size())
	for p, r := range mt.partner[Proposers] {
		out[m.groups[Proposers][p]] = m.groups[Receivers][r]
	}

	return out, nil
}
