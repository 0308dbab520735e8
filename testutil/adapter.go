// Package testutil provides recording fakes for the carousel collaborators
// so controller, input and view tests can share one set of doubles.
package testutil

import (
	"context"
	"sync"

	"github.com/comalice/carousel"
)

// Call records one presenter invocation.
type Call struct {
	Slide     int
	Direction int
}

// Presenter records effect calls. Exit effects complete immediately unless
// Hold is in force, in which case they wait for Release.
type Presenter struct {
	mu      sync.Mutex
	exits   []Call
	enters  []Call
	reveals []int
	hold    bool
	pending []chan struct{}
	exitErr error
}

var _ carousel.Presenter = (*Presenter)(nil)

func (p *Presenter) PlayExit(_ context.Context, slide, direction int) (<-chan struct{}, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.exitErr != nil {
		return nil, p.exitErr
	}
	p.exits = append(p.exits, Call{Slide: slide, Direction: direction})
	done := make(chan struct{})
	if p.hold {
		p.pending = append(p.pending, done)
	} else {
		close(done)
	}
	return done, nil
}

func (p *Presenter) PlayEnter(slide, direction int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enters = append(p.enters, Call{Slide: slide, Direction: direction})
}

func (p *Presenter) PlayReveal(slide int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reveals = append(p.reveals, slide)
}

// Hold makes subsequent exit effects wait for Release.
func (p *Presenter) Hold() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hold = true
}

// Release completes every held exit effect and stops holding.
func (p *Presenter) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.pending {
		close(ch)
	}
	p.pending = nil
	p.hold = false
}

// Pending returns the number of held exit effects.
func (p *Presenter) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pending)
}

// FailExit makes PlayExit return err; nil restores normal behavior.
func (p *Presenter) FailExit(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exitErr = err
}

func (p *Presenter) Exits() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.exits...)
}

func (p *Presenter) Enters() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.enters...)
}

func (p *Presenter) Reveals() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int(nil), p.reveals...)
}

// Indicator records dot and counter updates.
type Indicator struct {
	mu      sync.Mutex
	dots    []int
	numbers []int
	dotErr  error
}

var _ carousel.Indicator = (*Indicator)(nil)

func (i *Indicator) SetActiveDot(index int) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.dotErr != nil {
		return i.dotErr
	}
	i.dots = append(i.dots, index)
	return nil
}

func (i *Indicator) SetDisplayedNumber(oneBased int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.numbers = append(i.numbers, oneBased)
}

// FailDot makes SetActiveDot return err; nil restores normal behavior.
func (i *Indicator) FailDot(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.dotErr = err
}

func (i *Indicator) Dots() []int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]int(nil), i.dots...)
}

func (i *Indicator) Numbers() []int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]int(nil), i.numbers...)
}

// Publisher records lifecycle events.
type Publisher struct {
	mu     sync.Mutex
	events []carousel.Event
}

var _ carousel.Publisher = (*Publisher)(nil)

func (p *Publisher) Publish(_ context.Context, evt carousel.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *Publisher) Events() []carousel.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]carousel.Event(nil), p.events...)
}

// Count returns how many events of kind were published.
func (p *Publisher) Count(kind carousel.EventKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
