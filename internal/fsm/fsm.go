// Package fsm is a minimal flat state machine: states joined by
// event-keyed transitions with optional guards.
//
// The carousel controller uses it to hold its Idle/Transitioning phase.
// Machine is not safe for concurrent use; callers serialize access.
package fsm

import (
	"context"
	"errors"
)

type StateID int
type EventID int

type Event struct {
	ID      EventID
	Payload any
}

type Guard func(ctx context.Context, evt *Event, from StateID, to StateID) (bool, error)

type State struct {
	ID          StateID
	Name        string
	Transitions []*Transition
	Initial     bool
}

type Transition struct {
	Event  EventID
	Source *State
	Target *State
	Guard  Guard // nil --> always passes
}

type Machine struct {
	states  map[StateID]*State
	initial *State
	current *State
	started bool
}

var (
	ErrNoStates       = errors.New("no states provided")
	ErrNilState       = errors.New("nil state")
	ErrNilTarget      = errors.New("transition without target")
	ErrDuplicateState = errors.New("duplicate state ID")
	ErrUnknownTarget  = errors.New("transition target not registered")
	ErrMultipleInit   = errors.New("more than one initial state")
	ErrNotStarted     = errors.New("machine not started")
)

// On registers a transition from s to target on event e.
func (s *State) On(e EventID, target *State, guard Guard) {
	s.Transitions = append(s.Transitions, &Transition{
		Event:  e,
		Source: s,
		Target: target,
		Guard:  guard,
	})
}

func NewMachine(states ...*State) (*Machine, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	m := &Machine{states: map[StateID]*State{}}

	for _, s := range states {
		if s == nil {
			return nil, ErrNilState
		}
		if _, exists := m.states[s.ID]; exists {
			return nil, ErrDuplicateState
		}
		m.states[s.ID] = s
		if s.Initial {
			if m.initial != nil {
				return nil, ErrMultipleInit
			}
			m.initial = s
		}
	}

	if m.initial == nil {
		m.initial = states[0] // First state is assigned as initial.
	}
	m.current = m.initial

	for _, s := range states {
		for _, t := range s.Transitions {
			if t == nil {
				continue
			}
			if t.Target == nil {
				return nil, ErrNilTarget
			}
			if m.states[t.Target.ID] != t.Target {
				return nil, ErrUnknownTarget
			}
			if t.Source == nil {
				t.Source = s
			}
		}
	}

	return m, nil
}

// Start puts the machine in its initial state.
func (m *Machine) Start() {
	m.current = m.initial
	m.started = true
}

// Current returns the active state's ID.
func (m *Machine) Current() StateID {
	return m.current.ID
}

// Is reports whether id is the active state.
func (m *Machine) Is(id StateID) bool {
	return m.current.ID == id
}

// Send dispatches evt and reports whether a transition fired. An event
// with no matching transition, or whose guard rejects it, is ignored.
func (m *Machine) Send(ctx context.Context, evt Event) (bool, error) {
	if !m.started {
		return false, ErrNotStarted
	}

	t := m.pickTransition(m.current, &evt)
	if t == nil {
		return false, nil
	}

	if t.Guard != nil {
		pass, err := t.Guard(ctx, &evt, t.Source.ID, t.Target.ID)
		if err != nil || !pass {
			return false, err
		}
	}
	m.current = t.Target
	return true, nil
}

// pickTransition grabs the first matching transition in registration order.
func (m *Machine) pickTransition(s *State, evt *Event) *Transition {
	for _, t := range s.Transitions {
		if t != nil && t.Event == evt.ID {
			return t
		}
	}
	return nil
}
