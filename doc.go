// Package carousel implements the slide transition controller of a
// marketing-page carousel.
//
// A Controller owns the active slide index, serializes transitions so at
// most one is in flight, runs the auto-advance timer, and coordinates that
// timer with pause requests coming from expanded detail panels. Visual
// work is delegated to two collaborators:
//
//   - a Presenter plays the exit/enter effects and signals when the exit
//     effect has finished;
//   - an Indicator moves the active dot and updates the numeric counter.
//
// # Transitions
//
// GoTo never queues. A request arriving while a transition is in flight,
// while paused, or before the controller has slides is dropped and its
// handle completes immediately with OutcomeDropped. Accepted transitions
// wait for the exit effect before touching any indicator or index state:
//
//	c := carousel.New(carousel.WithPresenter(p), carousel.WithIndicator(ind))
//	c.Initialize(ctx, 5)
//	if c.GoTo(ctx, -1).Wait() == carousel.OutcomeMoved {
//		// active index is now 4
//	}
//
// # Auto-advance
//
// The timer is always cancel-then-reschedule, so at most one callback is
// ever pending. It is armed only while the controller has more than one
// slide and no pause reason is held.
package carousel
