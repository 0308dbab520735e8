package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/carousel"
	"github.com/comalice/carousel/visualize"
)

func newDotCmd(a *app) *cobra.Command {
	var (
		index  int
		paused bool
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the deck's navigation ring as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.snapshotAt(cmd.Context(), index, paused)
			if err != nil {
				return err
			}
			labels := make([]string, a.deck.Len())
			for i, s := range a.deck.Slides {
				labels[i] = s.Title
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), visualize.DOT(a.deck.Name, st, labels))
			return err
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "highlight this slide as active")
	cmd.Flags().BoolVar(&paused, "paused", false, "render the carousel as paused")
	return cmd
}

// snapshotAt drives a headless controller to index and returns its state.
func (a *app) snapshotAt(ctx context.Context, index int, paused bool) (carousel.State, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctrl := carousel.New(
		carousel.WithLogger(a.log),
		carousel.WithTransitionDuration(0),
		carousel.WithAutoAdvance(false),
	)
	defer ctrl.Teardown()

	ctrl.Initialize(ctx, a.deck.Len())
	if index != 0 {
		if index < 0 || index >= a.deck.Len() {
			return carousel.State{}, fmt.Errorf("index %d out of range [0, %d)", index, a.deck.Len())
		}
		t := ctrl.GoTo(ctx, index)
		switch t.Wait() {
		case carousel.OutcomeDropped:
			return carousel.State{}, fmt.Errorf("moving to slide %d: dropped: %s", index, t.DropReason())
		case carousel.OutcomeAborted:
			return carousel.State{}, fmt.Errorf("moving to slide %d: %w", index, t.Err())
		}
	}
	if paused {
		ctrl.Pause("dot")
	}
	return ctrl.Snapshot(), nil
}
