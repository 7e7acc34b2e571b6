// SPDX-License-Identifier: MIT
// Package: stablematch/prefgen
//
// rng.go: deterministic random sources.
//
// Goals:
//   - Determinism: same seed ⇒ identical profiles across platforms.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//   - Independence: DeriveSeed splits one base seed into per-trial streams.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines.

package prefgen

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
// A parent of 0 is first replaced by the default seed, matching WithSeed.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		// 0 would be remapped to defaultSeed by rngFromSeed.
		x = 0x9e3779b97f4a7c15
	}

	return int64(x)
}

// shuffleStrings performs an in-place Fisher–Yates shuffle of a.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleStrings(a []string, r *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
