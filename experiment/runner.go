package experiment

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/prefgen"
	"github.com/katalvlaran/stablematch/satisfaction"
	"github.com/katalvlaran/stablematch/stability"
)

// sides lists the proposing scenarios in Outcomes order.
var sides = [2]market.Side{market.Proposers, market.Receivers}

// Runner executes experiments. It is safe for concurrent use as long as the
// generator factory returns a fresh Generator per call.
type Runner struct {
	cfg    Config
	log    zerolog.Logger
	newGen func(seed int64) *prefgen.Generator
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithGenerator sets the per-trial generator factory. Panics on nil.
func WithGenerator(fn func(seed int64) *prefgen.Generator) Option {
	if fn == nil {
		panic("experiment: WithGenerator(nil)")
	}
	return func(r *Runner) {
		r.newGen = fn
	}
}

// NewRunner validates cfg and returns a Runner.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	r := &Runner{
		cfg: cfg,
		log: zerolog.Nop(),
		newGen: func(seed int64) *prefgen.Generator {
			return prefgen.New(prefgen.WithSeed(seed))
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Config returns the effective configuration, with Workers resolved.
func (r *Runner) Config() Config { return r.cfg }

// RunMarket solves m with each side proposing, verifies both matchings and
// analyzes them. Index and Seed of the returned Trial are zero.
func (r *Runner) RunMarket(ctx context.Context, m *market.Market) (*Trial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := &Trial{Market: m}
	for _, side := range sides {
		res, err := galeshapley.Solve(m, side)
		if err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}
		rep, err := stability.Verify(m, res.Matching)
		if err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}
		if !rep.Stable {
			return nil, fmt.Errorf("%w: %s proposing, %d blocking pairs", ErrUnstableResult, side, len(rep.BlockingPairs))
		}
		an, err := satisfaction.Analyze(m, res.Matching)
		if err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}
		t.Outcomes[side] = Outcome{
			Proposing: side,
			Matching:  res.Matching,
			Proposals: res.Proposals,
			Stability: rep,
			Analysis:  an,
		}
	}

	return t, nil
}

// Run executes Config.Runs trials on random markets of Config.Size agents
// per side and summarizes each proposing scenario across trials.
//
// The first failing trial cancels the others; a cancelled ctx is reported
// as ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	id := uuid.New()
	log := r.log.With().
		Str("run_id", id.String()).
		Int("size", r.cfg.Size).
		Int("runs", r.cfg.Runs).
		Logger()
	start := time.Now()
	log.Debug().Int("workers", r.cfg.Workers).Int64("seed", r.cfg.Seed).Msg("experiment started")

	trials := make([]*Trial, r.cfg.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i := 0; i < r.cfg.Runs; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := prefgen.DeriveSeed(r.cfg.Seed, uint64(i))
			m, err := r.newGen(seed).Market(r.cfg.Size)
			if err != nil {
				return fmt.Errorf("experiment: trial %d: %w", i, err)
			}
			t, err := r.RunMarket(gctx, m)
			if err != nil {
				return fmt.Errorf("experiment: trial %d: %w", i, err)
			}
			t.Index, t.Seed = i, seed
			trials[i] = t
			log.Debug().
				Int("trial", i).
				Int("proposals", t.Outcomes[market.Proposers].Proposals).
				Float64("fairness_gap", t.Outcomes[market.Proposers].Analysis.FairnessGap).
				Msg("trial done")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("experiment failed")
		return nil, err
	}

	res := &Result{ID: id, Config: r.cfg, Trials: trials}
	for _, side := range sides {
		reports := make([]*satisfaction.Report, len(trials))
		for i, t := range trials {
			reports[i] = t.Outcomes[side].Analysis
		}
		sum, err := satisfaction.Summarize(reports)
		if err != nil {
			return nil, fmt.Errorf("experiment: %w", err)
		}
		res.Summaries[side] = sum
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Float64("proposers_score_when_proposing", res.Summaries[market.Proposers].Proposers.Score.Mean).
		Float64("receivers_score_when_proposing", res.Summaries[market.Receivers].Receivers.Score.Mean).
		Msg("experiment finished")

	return res, nil
}
