// Package stablematch pairs two equally sized groups, each agent ranking
// every member of the other group, so that no two agents would both rather
// be with each other than with their assigned partners.
//
// 🚀 What is stablematch?
//
//	A small, deterministic toolkit around the Gale–Shapley algorithm:
//		• Markets: validated preference profiles with O(1) rank lookup
//		• Deferred acceptance: proposer- or receiver-optimal stable matchings
//		• Stability: blocking-pair verification, brute-force enumeration
//		• Satisfaction: per-group welfare metrics and multi-run summaries
//		• Experiments: seeded random markets on a bounded worker pool
//
// ✨ Why choose stablematch?
//
//   - Deterministic: same input, same seed, same matching, on every run
//   - Side-symmetric: either group can propose, with one algorithm
//   - Observable: OnPropose hooks, zerolog logging at the edges
//   - Verifiable: every result can be re-checked for blocking pairs
//
// Packages:
//
//	market           agents, preference profiles, rank indexes, matchings
//	galeshapley      deferred acceptance
//	stability        blocking pairs and enumeration of stable matchings
//	satisfaction     welfare metrics and summaries
//	prefgen          random preference generation
//	experiment       end-to-end runs over many random markets
//	dataset          YAML market documents
//	report           terminal tables and charts
//	config           viper settings and zerolog logger
//	cmd/stablematch  the command-line tool
//
// Quick example:
//
//	m, _ := market.New(proposers, receivers, proposerPrefs, receiverPrefs)
//	res, _ := galeshapley.Solve(m, market.Proposers)
//	ok, _ := stability.IsStable(m, res.Matching) // always true
//
//	go install github.com/katalvlaran/stablematch/cmd/stablematch@latest
package stablematch
