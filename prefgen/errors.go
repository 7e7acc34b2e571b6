// SPDX-License-Identifier: MIT
// Package: stablematch/prefgen
//
// errors.go: sentinel errors for the prefgen package.
//
// Callers branch with errors.Is; context is attached with %w at the call
// site. Option constructors panic on nil arguments (programmer error);
// generation itself never panics.

package prefgen

import "errors"

// ErrBadSize indicates a market size below 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("prefgen: market size must be at least 1")
