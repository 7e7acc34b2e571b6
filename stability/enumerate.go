package stability

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/stablematch/market"
)

// MaxEnumerateSize bounds Enumerate: 8! = 40320 candidate bijections.
const MaxEnumerateSize = 8

// Enumerate returns every stable matching of m, found by checking all n!
// bijections in lexicographic order of the proposer→receiver assignment.
//
// It exists to cross-check solvers on small instances: the proposer-driven
// Gale–Shapley result must be the matching every proposer weakly prefers
// among the returned ones.
//
// Errors: ErrNilInput; ErrTooLarge when m.Size() > MaxEnumerateSize.
//
// Complexity: O(n!·n²) time.
func Enumerate(m *market.Market) ([]*market.Matching, error) {
	if m == nil {
		return nil, ErrNilInput
	}
	n := m.Size()
	if n > MaxEnumerateSize {
		return nil, fmt.Errorf("%w: n=%d exceeds %d", ErrTooLarge, n, MaxEnumerateSize)
	}

	var stable []*market.Matching
	gen := combin.NewPermutationGenerator(n, n)
	perm := make([]int, n)
	for gen.Next() {
		mt, err := market.NewMatching(gen.Permutation(perm))
		if err != nil {
			return nil, err
		}
		rep, err := Verify(m, mt)
		if err != nil {
			return nil, err
		}
		if rep.Stable {
			stable = append(stable, mt)
		}
	}
	slices.SortFunc(stable, compareAssignments)

	return stable, nil
}

// compareAssignments orders matchings lexicographically by the receiver
// assigned to proposer 0, 1, ...
func compareAssignments(a, b *market.Matching) int {
	for p := 0; p < a.Size(); p++ {
		if c := cmp.Compare(a.Partner(market.Proposers, p), b.Partner(market.Proposers, p)); c != 0 {
			return c
		}
	}

	return 0
}
