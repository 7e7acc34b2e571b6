// Package prefgen generates random, complete, strict preference profiles and
// the markets built from them. It is a collaborator of the matching core:
// solvers never generate data themselves, callers inject a Generator.
//
// Determinism:
//   - Every Generator owns one *rand.Rand; the same seed yields the same
//     identifiers and preference lists on every platform.
//   - Seed 0 maps to a fixed default seed, never to the clock.
//   - DeriveSeed gives independent per-trial streams from one base seed, so
//     parallel experiments do not depend on goroutine scheduling.
//
// Concurrency:
//   - A Generator is NOT safe for concurrent use. Create one per goroutine.
//
// Usage:
//
//	gen := prefgen.New(prefgen.WithSeed(42))
//	m, err := gen.Market(10) // S_1..S_10 vs E_1..E_10
package prefgen
