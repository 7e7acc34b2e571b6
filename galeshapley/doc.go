// Package galeshapley implements the Gale–Shapley deferred-acceptance
// procedure over a validated market.Market.
//
// 🚀 What is deferred acceptance?
//
//	Free proposers propose, in their own preference order, to receivers.
//	A receiver holds the best offer seen so far and may later trade up;
//	nothing is final until every proposer is held. With complete, strict
//	preferences on both sides and equal group sizes the result is a perfect
//	matching with no blocking pair.
//
// ✨ Key properties:
//   - One generic procedure (Propose); Solve only chooses which side drives.
//   - Proposer-optimal when proposers drive, receiver-optimal when receivers
//     drive. The asymmetry is the point of comparing both runs.
//   - At most n² proposals: every proposal strictly advances one cursor and
//     no cursor ever resets.
//   - The outcome does not depend on the order of the pending queue
//     (see WithInitialOrder).
//   - No logging, no goroutines, no shared state: every call owns its queue,
//     cursors and engagements, so concurrent calls on a shared Market are safe.
//
// ⚙️ Usage:
//
//	res, err := galeshapley.Solve(m, market.Proposers)
//	if err != nil {
//	    // ErrExhaustedPreferences, ErrOptionViolation, market.Err*
//	}
//	fmt.Println(res.Matching, res.Proposals)
//
// Performance:
//
//   - Time:   O(n²) worst case
//   - Memory: O(n) beyond the market itself
package galeshapley
