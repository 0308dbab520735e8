package carousel

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/comalice/carousel/internal/fsm"
)

const (
	stateIdle fsm.StateID = fsm.StateID(PhaseIdle)
	stateBusy fsm.StateID = fsm.StateID(PhaseTransitioning)
)

const (
	evtBegin fsm.EventID = iota + 1
	evtFinish
	evtAbort
)

// Drop reasons reported on dropped transitions.
const (
	DropUninitialized = "uninitialized"
	DropTornDown      = "torn-down"
	DropEmpty         = "empty"
	DropNoMovement    = "no-movement"
	DropTransitioning = "transitioning"
	DropPaused        = "paused"
	DropOutOfRange    = "out-of-range"
)

// Controller owns the carousel state. It is safe for concurrent use.
type Controller struct {
	id                 string
	log                *zap.Logger
	clock              clock.WithDelayedExecution
	presenter          Presenter
	indicator          Indicator
	publisher          Publisher
	interval           time.Duration
	transitionDuration time.Duration
	autoAdvance        bool

	mu          sync.Mutex
	phase       *fsm.Machine
	total       int
	active      int
	initialized bool
	tornDown    bool
	reasons     map[string]struct{}
	timer       clock.Timer
	timerGen    uint64
}

// New constructs a controller. It does nothing until Initialize is called.
func New(opts ...Option) *Controller {
	c := &Controller{
		clock:              clock.RealClock{},
		indicator:          nopIndicator{},
		publisher:          nopPublisher{},
		interval:           DefaultInterval,
		transitionDuration: DefaultTransitionDuration,
		autoAdvance:        true,
		reasons:            make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.log = c.log.With(zap.String("controller", c.id))
	if c.presenter == nil {
		c.log.Info("no presenter configured, applying final visual state directly")
		c.presenter = finalStatePresenter{clock: c.clock, duration: c.transitionDuration}
	}
	c.phase = c.newPhaseMachine()
	return c
}

// newPhaseMachine builds Idle -> Transitioning -> Idle. Transitioning has
// no begin transition, so requests made while busy fall through unmatched.
func (c *Controller) newPhaseMachine() *fsm.Machine {
	idle := &fsm.State{ID: stateIdle, Name: PhaseIdle.String(), Initial: true}
	busy := &fsm.State{ID: stateBusy, Name: PhaseTransitioning.String()}

	idle.On(evtBegin, busy, func(context.Context, *fsm.Event, fsm.StateID, fsm.StateID) (bool, error) {
		return !c.pausedLocked(), nil
	})
	busy.On(evtFinish, idle, nil)
	busy.On(evtAbort, idle, nil)

	m, err := fsm.NewMachine(idle, busy)
	if err != nil {
		panic(fmt.Sprintf("carousel: phase machine: %v", err))
	}
	m.Start()
	return m
}

// ID returns the controller identifier.
func (c *Controller) ID() string { return c.id }

// Initialize sets the slide count and shows the first slide. With zero
// slides the controller stays permanently inert. Later calls are ignored.
func (c *Controller) Initialize(ctx context.Context, total int) {
	c.mu.Lock()
	if c.initialized || c.tornDown {
		tornDown := c.tornDown
		c.mu.Unlock()
		c.log.Warn("initialize ignored", zap.Bool("torn_down", tornDown))
		return
	}
	if total < 0 {
		total = 0
	}
	c.initialized = true
	c.total = total
	c.active = 0
	armed := false
	if total > 0 && c.autoAdvance {
		armed = c.resetTimerLocked()
	}
	c.mu.Unlock()

	if total > 0 {
		if err := c.indicator.SetActiveDot(0); err != nil {
			c.log.Warn("initial dot unresolved", zap.Error(err))
		}
		c.indicator.SetDisplayedNumber(1)
	}

	c.log.Info("carousel initialized",
		zap.Int("total", total),
		zap.Bool("auto_advance", c.autoAdvance),
	)
	c.emit(ctx, Event{Kind: EventInitialized, Total: total})
	if armed {
		c.emit(ctx, Event{Kind: EventTimerArmed, Total: total})
	}
}

// GoTo requests a move by delta slides; negative moves backwards. The
// gate is evaluated synchronously and the returned handle reports the
// result. Rejected requests are dropped, never queued.
func (c *Controller) GoTo(ctx context.Context, delta int) *Transition {
	c.mu.Lock()
	return c.beginLocked(ctx, delta)
}

// GoToIndex requests a move to slide target in a single transition. The
// offset from the active slide is taken under the lock, so a transition
// committing concurrently cannot skew it.
func (c *Controller) GoToIndex(ctx context.Context, target int) *Transition {
	c.mu.Lock()
	if c.total > 0 && (target < 0 || target >= c.total) {
		from := c.active
		c.mu.Unlock()
		return c.drop(ctx, from, target-from, DropOutOfRange)
	}
	return c.beginLocked(ctx, target-c.active)
}

// beginLocked gates and starts a transition by delta. Called with c.mu
// held; releases it.
func (c *Controller) beginLocked(ctx context.Context, delta int) *Transition {
	from := c.active
	reason := c.gateLocked(delta)
	if reason != "" {
		c.mu.Unlock()
		return c.drop(ctx, from, delta, reason)
	}

	fired, err := c.phase.Send(ctx, fsm.Event{ID: evtBegin, Payload: delta})
	if err != nil || !fired {
		reason = DropPaused
		if c.phase.Is(stateBusy) {
			reason = DropTransitioning
		}
		c.mu.Unlock()
		if err != nil {
			c.log.Error("phase machine rejected begin", zap.Error(err))
		}
		return c.drop(ctx, from, delta, reason)
	}

	t := newTransition(from, Wrap(from, delta, c.total), delta)
	t.accepted = true
	total := c.total
	c.mu.Unlock()

	c.log.Debug("transition started", zap.Int("from", t.from), zap.Int("to", t.to), zap.Int("delta", delta))
	c.emit(ctx, Event{Kind: EventTransitionStarted, From: t.from, To: t.to, Delta: delta, Total: total})

	go c.run(ctx, t)
	return t
}

// gateLocked returns the reason a request must be dropped before the phase
// machine is consulted, or "".
func (c *Controller) gateLocked(delta int) string {
	switch {
	case !c.initialized:
		return DropUninitialized
	case c.tornDown:
		return DropTornDown
	case c.total == 0:
		return DropEmpty
	case Wrap(c.active, delta, c.total) == c.active:
		return DropNoMovement
	}
	return ""
}

func (c *Controller) drop(ctx context.Context, from, delta int, reason string) *Transition {
	c.log.Debug("navigation dropped", zap.Int("delta", delta), zap.String("reason", reason))
	c.emit(ctx, Event{Kind: EventNavigationDropped, From: from, To: from, Delta: delta, Reason: reason})
	return droppedTransition(from, delta, reason)
}

// run carries an accepted transition to completion. Nothing visible
// changes until the exit effect has signalled.
func (c *Controller) run(ctx context.Context, t *Transition) {
	defer close(t.done)
	dir := t.direction()

	exited, err := c.presenter.PlayExit(ctx, t.from, dir)
	if err != nil {
		c.abort(ctx, t, fmt.Errorf("exit slide %d: %w", t.from, err))
		return
	}
	if exited != nil {
		<-exited
	}

	if err := c.indicator.SetActiveDot(t.to); err != nil {
		// The old slide has already played its exit; bring it back.
		c.presenter.PlayEnter(t.from, -dir)
		c.presenter.PlayReveal(t.from)
		c.abort(ctx, t, fmt.Errorf("dot %d: %w", t.to, err))
		return
	}
	c.presenter.PlayEnter(t.to, dir)
	c.presenter.PlayReveal(t.to)

	c.mu.Lock()
	c.active = t.to
	total := c.total
	c.mu.Unlock()

	c.indicator.SetDisplayedNumber(t.to + 1)

	c.mu.Lock()
	if _, err := c.phase.Send(ctx, fsm.Event{ID: evtFinish}); err != nil {
		c.log.Error("phase machine rejected finish", zap.Error(err))
	}
	c.mu.Unlock()

	t.outcome = OutcomeMoved
	c.log.Debug("transition completed", zap.Int("from", t.from), zap.Int("to", t.to))
	c.emit(ctx, Event{Kind: EventTransitionCompleted, From: t.from, To: t.to, Delta: t.delta, Total: total})
}

func (c *Controller) abort(ctx context.Context, t *Transition, cause error) {
	c.mu.Lock()
	if _, err := c.phase.Send(ctx, fsm.Event{ID: evtAbort}); err != nil {
		c.log.Error("phase machine rejected abort", zap.Error(err))
	}
	c.mu.Unlock()

	t.outcome = OutcomeAborted
	t.err = cause
	c.log.Warn("transition aborted", zap.Int("from", t.from), zap.Error(cause))
	c.emit(ctx, Event{Kind: EventTransitionAborted, From: t.from, To: t.from, Delta: t.delta, Err: cause})
}

// Teardown cancels the pending timer and makes the controller inert. An
// in-flight transition still runs to completion. Safe to call repeatedly.
func (c *Controller) Teardown() {
	c.mu.Lock()
	if c.tornDown {
		c.mu.Unlock()
		return
	}
	c.tornDown = true
	c.cancelTimerLocked()
	c.mu.Unlock()

	c.log.Info("carousel torn down")
	c.emit(context.Background(), Event{Kind: EventTornDown})
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	reasons := make([]string, 0, len(c.reasons))
	for r := range c.reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)

	phase := Phase(c.phase.Current())
	return State{
		Total:         c.total,
		ActiveIndex:   c.active,
		Phase:         phase,
		Transitioning: phase == PhaseTransitioning,
		Paused:        len(reasons) > 0,
		PauseReasons:  reasons,
		TimerArmed:    c.timer != nil,
		Initialized:   c.initialized,
		TornDown:      c.tornDown,
	}
}

// ActiveIndex returns the active slide position.
func (c *Controller) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Total returns the slide count.
func (c *Controller) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// emit publishes evt. Must be called without c.mu held.
func (c *Controller) emit(ctx context.Context, evt Event) {
	evt.ControllerID = c.id
	evt.Time = c.clock.Now()
	if err := c.publisher.Publish(ctx, evt); err != nil {
		c.log.Debug("publish failed", zap.String("kind", string(evt.Kind)), zap.Error(err))
	}
}
