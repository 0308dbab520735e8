package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/carousel/deck"
	"github.com/comalice/carousel/internal/config"
	"github.com/comalice/carousel/internal/logging"
)

type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
	deck       deck.Deck
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "carousel",
		Short: "Slide carousel controller",
		Long: `carousel cycles a deck of slides with arrow, dot and keyboard navigation,
auto-advances on a timer and pauses while a slide's details are open.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(a),
		newDotCmd(a),
		newValidateCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	a.log = log

	if cfg.Deck == "" {
		a.deck = deck.Sample()
		return nil
	}
	d, err := deck.Load(cfg.Deck)
	if err != nil {
		return err
	}
	a.deck = d
	a.log.Debug("deck loaded", zap.String("name", d.Name), zap.Int("slides", d.Len()))
	return nil
}
