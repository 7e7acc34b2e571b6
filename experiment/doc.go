// Package experiment runs the matching pipeline end to end: generate or
// accept a market, solve it with each side proposing, verify stability and
// analyze satisfaction.
//
// 🚀 What it does
//
//   - RunMarket: one market, both proposing scenarios, stability checked.
//   - Run: many independent random markets on a bounded worker pool, with a
//     per-scenario statistical Summary.
//
// ⚙️ Determinism
//
// Trial i draws its market from prefgen.DeriveSeed(Config.Seed, i), so the
// result does not depend on Workers or on goroutine scheduling. Trials are
// returned in index order.
//
// Logging goes through an injected zerolog.Logger (silent by default); every
// Run is tagged with a fresh run_id.
package experiment
