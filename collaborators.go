package carousel

import (
	"context"
	"errors"
	"time"

	"k8s.io/utils/clock"
)

// ErrUnresolved reports that a collaborator could not locate the slide or
// dot it was asked to act on. Transitions that hit it abort without
// changing the active index.
var ErrUnresolved = errors.New("slide reference unresolved")

// Presenter is the presentation effect provider.
//
// PlayExit starts the exit effect for slide and returns a channel that is
// closed once the effect has finished. A nil channel counts as already
// finished. The controller never interrupts an exit effect once started.
type Presenter interface {
	PlayExit(ctx context.Context, slide, direction int) (<-chan struct{}, error)
	PlayEnter(slide, direction int)
	PlayReveal(slide int)
}

// Indicator renders the dot row and the slide counter.
type Indicator interface {
	SetActiveDot(index int) error
	SetDisplayedNumber(oneBased int)
}

// Publisher receives controller lifecycle events.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// finalStatePresenter stands in when no Presenter is configured. It skips
// the intermediate effect but still completes after the usual duration.
type finalStatePresenter struct {
	clock    clock.WithDelayedExecution
	duration time.Duration
}

func (p finalStatePresenter) PlayExit(_ context.Context, _, _ int) (<-chan struct{}, error) {
	done := make(chan struct{})
	if p.duration <= 0 {
		close(done)
		return done, nil
	}
	p.clock.AfterFunc(p.duration, func() { close(done) })
	return done, nil
}

func (finalStatePresenter) PlayEnter(int, int) {}
func (finalStatePresenter) PlayReveal(int)     {}

type nopIndicator struct{}

func (nopIndicator) SetActiveDot(int) error  { return nil }
func (nopIndicator) SetDisplayedNumber(int) {}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) error { return nil }
