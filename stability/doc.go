// Package stability checks matchings for blocking pairs and, for small
// markets, enumerates every stable matching by brute force.
//
// A blocking pair is a proposer p and a receiver q, not matched together,
// such that p prefers q to its partner and q prefers p to its partner.
// A matching is stable iff it has no blocking pair.
//
// Verify walks, for every proposer, only the receivers it ranks above its
// partner, and finds each receiver's partner through the matching's inverse
// table in O(1). Total cost is O(n²).
package stability
