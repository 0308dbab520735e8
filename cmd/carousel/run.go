package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/comalice/carousel"
	"github.com/comalice/carousel/internal/tui"
	"github.com/comalice/carousel/publish"
)

func newRunCmd(a *app) *cobra.Command {
	var altScreen bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the carousel in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), altScreen)
		},
	}
	cmd.Flags().BoolVar(&altScreen, "alt-screen", true, "use the terminal's alternate screen")
	return cmd
}

func (a *app) run(ctx context.Context, altScreen bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan carousel.Event, 64)
	ch := publish.NewChannelPublisher(events)

	bridge := tui.NewBridge(a.deck.Len(), nil)
	opts := append(a.cfg.Options(),
		carousel.WithPresenter(bridge),
		carousel.WithIndicator(bridge),
		carousel.WithLogger(a.log),
		carousel.WithPublisher(publish.Multi{ch, publish.LogPublisher{Log: a.log}}),
	)
	ctrl := carousel.New(opts...)

	model := tui.NewModel(ctx, a.deck, ctrl, a.cfg.TransitionDuration)
	var progOpts []tea.ProgramOption
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, append(progOpts, tea.WithContext(ctx))...)
	bridge.Attach(p)

	a.log.Info("starting carousel",
		zap.String("deck", a.deck.Name),
		zap.Int("slides", a.deck.Len()),
		zap.Duration("interval", a.cfg.Interval),
	)

	var g errgroup.Group
	counts := make(map[carousel.EventKind]int)
	g.Go(func() error {
		for evt := range events {
			counts[evt.Kind]++
		}
		return nil
	})
	g.Go(func() error {
		defer ch.Close()
		defer ctrl.Teardown()
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			return fmt.Errorf("terminal ui: %w", err)
		}
		return nil
	})

	err := g.Wait()
	a.log.Info("carousel stopped",
		zap.Int("completed", counts[carousel.EventTransitionCompleted]),
		zap.Int("dropped", counts[carousel.EventNavigationDropped]),
		zap.Int("aborted", counts[carousel.EventTransitionAborted]),
	)
	return err
}
