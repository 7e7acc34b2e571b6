// SPDX-License-Identifier: MIT
// Package: stablematch/prefgen
//
// ids.go: agent identifier schemes.

package prefgen

import (
	"fmt"
	"strconv"
)

// IDFn generates an agent identifier from its zero-based position.
// It must be pure and injective: distinct positions yield distinct IDs.
type IDFn func(idx int) string

// Default identifier prefixes: students propose to establishments.
const (
	DefaultProposerPrefix = "S_"
	DefaultReceiverPrefix = "E_"
)

// PrefixedIDFn returns prefix + (idx+1), e.g. PrefixedIDFn("S_")(0) == "S_1".
// Panics if idx < 0.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns spreadsheet-column letters: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
//
// Complexity: O(log₂₆ idx).
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
		runes[l], runes[r] = runes[r], runes[l]
	}

	return string(runes)
}

// IDs applies fn to 0..n-1.
func IDs(fn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
