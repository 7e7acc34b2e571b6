package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stablematch/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg     *config.Config
	cfgFile string
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "stablematch",
		Short: "Stable matching of two groups with the Gale–Shapley algorithm",
		Long: `stablematch pairs every member of one group with a member of another,
such that no two agents would both rather be with each other than with
their assigned partners.

Markets are YAML documents (see "stablematch generate"). Settings come from
flags, STABLEMATCH_* environment variables and an optional --config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfgFile != "" {
				if err := a.cfg.LoadFile(a.cfgFile); err != nil {
					return err
				}
			}
			a.log = a.cfg.Logger(cmd.ErrOrStderr())

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", config.FormatConsole, "log format: console or json")
	// Both flags exist, so binding cannot fail.
	_ = a.cfg.BindFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.cfg.BindFlag(config.KeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(
		a.solveCmd(),
		a.verifyCmd(),
		a.generateCmd(),
		a.experimentCmd(),
		a.enumerateCmd(),
	)

	return root
}

// bind ties command flags to config keys; called from RunE so that only the
// running command's flags take part.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		if err := a.cfg.BindFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}
