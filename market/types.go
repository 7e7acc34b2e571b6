package market

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for market construction and matching validation.
var (
	// ErrEmptyGroup is returned when either group has zero agents.
	ErrEmptyGroup = errors.New("market: group must contain at least one agent")

	// ErrGroupSizeMismatch is returned when the two groups differ in size,
	// or when a matching and a market disagree on the group size.
	ErrGroupSizeMismatch = errors.New("market: groups must have the same size")

	// ErrInvalidAgent is returned for empty, duplicate or unknown agent identifiers.
	ErrInvalidAgent = errors.New("market: invalid agent identifier")

	// ErrInvalidPreferenceList is returned when a preference list is not a
	// permutation of the opposite group.
	ErrInvalidPreferenceList = errors.New("market: invalid preference list")

	// ErrNotBijective is returned when a matching does not pair every
	// proposer with exactly one receiver and vice versa.
	ErrNotBijective = errors.New("market: matching is not a bijection")

	// ErrUnknownSide is returned when a Side value or name is not recognized.
	ErrUnknownSide = errors.New("market: unknown side")
)

// Side names one of the two groups of a market.
type Side int

const (
	// Proposers is the group that conventionally drives deferred acceptance.
	Proposers Side = iota

	// Receivers is the group that holds offers.
	Receivers
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Proposers {
		return Receivers
	}

	return Proposers
}

// Valid reports whether s is Proposers or Receivers.
func (s Side) Valid() bool {
	return s == Proposers || s == Receivers
}

func (s Side) String() string {
	switch s {
	case Proposers:
		return "proposers"
	case Receivers:
		return "receivers"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "proposers"/"receivers" (case-insensitive) and the
// one-letter forms "p"/"r".
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "proposers", "proposer", "p":
		return Proposers, nil
	case "receivers", "receiver", "r":
		return Receivers, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, name)
	}
}

// unmatched marks a free slot in partner and engagement tables.
const unmatched = -1
