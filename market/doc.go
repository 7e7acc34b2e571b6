// Package market defines the data model of a two-sided matching market:
// two equally-sized groups of agents, their complete strict preference
// lists over each other, the O(1) rank indices derived from those lists,
// and the bijective Matching produced by a solver.
//
// 🚀 What lives here?
//
//	• Side      : which group an agent belongs to (Proposers / Receivers).
//	• RankIndex : validated rank table: rank[agent][counterpart] == position
//	              of counterpart in agent's preference list.
//	• Market    : both groups, both preference profiles, both RankIndex values.
//	• Matching  : proposer ↔ receiver bijection kept as two inverse slices.
//
// ✨ Guarantees:
//   - Validation runs to completion before a Market or RankIndex is returned;
//     a partially-validated index is never exposed.
//   - Market, RankIndex and Matching are immutable after construction and may
//     be shared by concurrent readers without synchronization.
//   - Agents are addressed by dense positions 0..n-1 (the order of the group
//     slices passed to New); string identifiers are kept for presentation.
//
// ⚙️ Usage:
//
//	m, err := market.New(
//	    []string{"A", "B"}, []string{"X", "Y"},
//	    map[string][]string{"A": {"X", "Y"}, "B": {"Y", "X"}},
//	    map[string][]string{"X": {"B", "A"}, "Y": {"A", "B"}},
//	)
//	if errors.Is(err, market.ErrInvalidPreferenceList) { ... }
//
//	a, _ := m.Lookup(market.Proposers, "A")
//	x, _ := m.Lookup(market.Receivers, "X")
//	rank := m.Index(market.Proposers).Rank(a, x) // 0
//
// Errors:
//   - ErrEmptyGroup           : either group has no agents.
//   - ErrGroupSizeMismatch    : the groups differ in size.
//   - ErrInvalidAgent         : empty, duplicate or unknown identifier.
//   - ErrInvalidPreferenceList: wrong length, duplicate, or foreign entry.
//   - ErrNotBijective         : a matching does not pair every agent once.
package market
