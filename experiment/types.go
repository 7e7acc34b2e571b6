package experiment

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/satisfaction"
	"github.com/katalvlaran/stablematch/stability"
)

var (
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("experiment: invalid config")

	// ErrUnstableResult means the engine returned a matching with a
	// blocking pair. It indicates a bug, never bad input.
	ErrUnstableResult = errors.New("experiment: engine produced an unstable matching")
)

var validate = validator.New()

// Config controls Run.
type Config struct {
	// Size is n, the number of agents per side.
	Size int `validate:"min=1"`

	// Runs is the number of independent random markets.
	Runs int `validate:"min=1"`

	// Seed is the base seed; 0 selects the generator's default seed.
	Seed int64

	// Workers bounds concurrent trials; 0 means runtime.GOMAXPROCS(0).
	Workers int `validate:"min=0"`
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Outcome is one proposing scenario on one market.
type Outcome struct {
	Proposing market.Side
	Matching  *market.Matching
	Proposals int
	Stability *stability.Report
	Analysis  *satisfaction.Report
}

// Trial holds both scenarios of one market. Outcomes is indexed by the
// proposing side.
type Trial struct {
	Index    int
	Seed     int64
	Market   *market.Market
	Outcomes [2]Outcome
}

// Result is the outcome of Run. Summaries is indexed by the proposing side.
type Result struct {
	ID        uuid.UUID
	Config    Config
	Trials    []*Trial
	Summaries [2]*satisfaction.Summary
}
