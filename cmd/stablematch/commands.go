package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/config"
	"github.com/katalvlaran/stablematch/dataset"
	"github.com/katalvlaran/stablematch/experiment"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/prefgen"
	"github.com/katalvlaran/stablematch/report"
	"github.com/katalvlaran/stablematch/satisfaction"
	"github.com/katalvlaran/stablematch/stability"
)

// errUnstable makes verify exit non-zero.
var errUnstable = errors.New("matching is unstable")

func (a *app) loadMarket(path string) (*dataset.Document, *market.Market, error) {
	doc, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := doc.Market()
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug().Str("file", path).Int("size", m.Size()).Msg("market loaded")

	return doc, m, nil
}

func (a *app) solveCmd() *cobra.Command {
	var sideName string
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Compute the stable matching of a market file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := market.ParseSide(sideName)
			if err != nil {
				return err
			}
			_, m, err := a.loadMarket(args[0])
			if err != nil {
				return err
			}

			trace := galeshapley.WithOnPropose(func(p galeshapley.Proposal) {
				a.log.Trace().
					Int("proposer", p.Proposer).
					Int("receiver", p.Receiver).
					Bool("accepted", p.Accepted).
					Int("displaced", p.Displaced).
					Msg("proposal")
			})
			res, err := galeshapley.Solve(m, side, trace)
			if err != nil {
				return err
			}
			rep, err := stability.Verify(m, res.Matching)
			if err != nil {
				return err
			}
			an, err := satisfaction.Analyze(m, res.Matching)
			if err != nil {
				return err
			}
			a.log.Info().Stringer("proposing", side).Int("proposals", res.Proposals).Msg("solved")

			p := report.NewPrinter(cmd.OutOrStdout())
			if err = p.Title(fmt.Sprintf("Matching, %s proposing (%d proposals)", side, res.Proposals)); err != nil {
				return err
			}
			if err = p.Matching(m, res.Matching); err != nil {
				return err
			}
			if err = p.Stability(m, rep); err != nil {
				return err
			}

			return p.Analysis(an)
		},
	}
	cmd.Flags().StringVar(&sideName, "side", market.Proposers.String(), "proposing side: proposers or receivers")

	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check the matching stored in a market file for blocking pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, m, err := a.loadMarket(args[0])
			if err != nil {
				return err
			}
			mt, err := doc.Matching(m)
			if err != nil {
				return err
			}
			rep, err := stability.Verify(m, mt)
			if err != nil {
				return err
			}
			if err = report.NewPrinter(cmd.OutOrStdout()).Stability(m, rep); err != nil {
				return err
			}
			if !rep.Stable {
				return fmt.Errorf("%w: %d blocking pairs", errUnstable, len(rep.BlockingPairs))
			}

			return nil
		},
	}
}

func (a *app) generateCmd() *cobra.Command {
	var withMatching bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random market document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd, map[string]string{"size": config.KeySize, "seed": config.KeySeed}); err != nil {
				return err
			}
			m, err := prefgen.New(prefgen.WithSeed(a.cfg.Seed())).Market(a.cfg.Size())
			if err != nil {
				return err
			}
			var mt *market.Matching
			if withMatching {
				res, err := galeshapley.ProposerOptimal(m)
				if err != nil {
					return err
				}
				mt = res.Matching
			}
			doc, err := dataset.FromMarket(m, mt)
			if err != nil {
				return err
			}

			return dataset.Encode(cmd.OutOrStdout(), doc)
		},
	}
	f := cmd.Flags()
	f.Int("size", 100, "agents per side")
	f.Int64("seed", 0, "random seed (0 = default seed)")
	f.BoolVar(&withMatching, "matching", false, "include the proposer-optimal matching")

	return cmd
}

func (a *app) experimentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Compare both proposing sides on random markets",
		Long: `experiment draws random markets, solves each with proposers and then
receivers proposing, and compares how satisfied each group is.

A single run prints both scenarios and a score chart; several runs print the
mean and standard deviation of every metric.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.bind(cmd, map[string]string{
				"size":    config.KeySize,
				"runs":    config.KeyRuns,
				"seed":    config.KeySeed,
				"workers": config.KeyWorkers,
			}); err != nil {
				return err
			}
			r, err := experiment.NewRunner(a.cfg.Experiment(), experiment.WithLogger(a.log))
			if err != nil {
				return err
			}
			res, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			p := report.NewPrinter(cmd.OutOrStdout())
			if len(res.Trials) == 1 {
				return p.Trial(res.Trials[0])
			}

			return p.Summary(res)
		},
	}
	f := cmd.Flags()
	f.Int("size", 100, "agents per side")
	f.Int("runs", 1, "number of random markets")
	f.Int64("seed", 0, "base random seed (0 = default seed)")
	f.Int("workers", 0, "parallel trials (0 = GOMAXPROCS)")

	return cmd
}

func (a *app) enumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate FILE",
		Short: fmt.Sprintf("List every stable matching of a small market (n ≤ %d)", stability.MaxEnumerateSize),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := a.loadMarket(args[0])
			if err != nil {
				return err
			}
			all, err := stability.Enumerate(m)
			if err != nil {
				return err
			}

			return report.NewPrinter(cmd.OutOrStdout()).Matchings(m, all)
		},
	}
}
