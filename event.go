package carousel

import "time"

// EventKind names a controller lifecycle event.
type EventKind string

const (
	EventInitialized         EventKind = "initialized"
	EventTransitionStarted   EventKind = "transition-started"
	EventTransitionCompleted EventKind = "transition-completed"
	EventTransitionAborted   EventKind = "transition-aborted"
	EventNavigationDropped   EventKind = "navigation-dropped"
	EventPaused              EventKind = "paused"
	EventResumed             EventKind = "resumed"
	EventTimerArmed          EventKind = "timer-armed"
	EventTimerFired          EventKind = "timer-fired"
	EventTornDown            EventKind = "torn-down"
)

// Event is a lifecycle notification. Fields that do not apply to a kind
// are left zero.
type Event struct {
	Kind         EventKind
	ControllerID string
	From         int
	To           int
	Delta        int
	Total        int
	Reason       string
	Err          error
	Time         time.Time
}
