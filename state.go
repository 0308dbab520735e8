package carousel

// Phase is the controller's transition phase.
type Phase int

const (
	PhaseIdle Phase = iota + 1
	PhaseTransitioning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// State is a point-in-time copy of the controller's state.
type State struct {
	Total         int
	ActiveIndex   int
	Phase         Phase
	Transitioning bool
	Paused        bool
	PauseReasons  []string
	TimerArmed    bool
	Initialized   bool
	TornDown      bool
}

// Inert reports whether navigation and auto-advance can never happen,
// which is the case once initialized with no slides.
func (s State) Inert() bool {
	return s.Initialized && s.Total == 0
}

// Wrap returns (index+delta) reduced into [0, total). It is defined for
// any signed delta, including jumps of more than one lap. total must be
// positive.
func Wrap(index, delta, total int) int {
	return ((index+delta)%total + total) % total
}

// Outcome is the result of a GoTo request.
type Outcome int

const (
	OutcomeMoved Outcome = iota + 1
	OutcomeDropped
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeDropped:
		return "dropped"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Transition is the handle returned by GoTo.
type Transition struct {
	from     int
	to       int
	delta    int
	accepted bool
	reason   string

	done    chan struct{}
	outcome Outcome
	err     error
}

func newTransition(from, to, delta int) *Transition {
	return &Transition{from: from, to: to, delta: delta, done: make(chan struct{})}
}

func droppedTransition(from, delta int, reason string) *Transition {
	t := newTransition(from, from, delta)
	t.reason = reason
	t.outcome = OutcomeDropped
	close(t.done)
	return t
}

// Accepted reports whether the request passed the gate and started.
func (t *Transition) Accepted() bool { return t.accepted }

// From is the active index when the request was made.
func (t *Transition) From() int { return t.from }

// To is the target index. Equal to From when dropped; an aborted
// transition leaves the active index at From.
func (t *Transition) To() int { return t.to }

// Delta is the requested signed offset.
func (t *Transition) Delta() int { return t.delta }

// DropReason names why a request was dropped; empty otherwise.
func (t *Transition) DropReason() string { return t.reason }

// Done is closed when the transition has finished.
func (t *Transition) Done() <-chan struct{} { return t.done }

// Wait blocks until the transition finishes and returns its outcome.
func (t *Transition) Wait() Outcome {
	<-t.done
	return t.outcome
}

// Err returns the abort cause. Only meaningful after Done is closed.
func (t *Transition) Err() error {
	<-t.done
	return t.err
}

func (t *Transition) direction() int {
	if t.delta < 0 {
		return -1
	}
	return 1
}
