package fsm_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/comalice/carousel/internal/fsm"
)

const (
	evtGo EventID = iota + 1
	evtBack
)

func twoStates() (*State, *State) {
	a := &State{ID: 1, Name: "a"}
	b := &State{ID: 2, Name: "b"}
	a.On(evtGo, b, nil)
	b.On(evtBack, a, nil)
	return a, b
}

func TestNewMachineValidation(t *testing.T) {
	if _, err := NewMachine(); !errors.Is(err, ErrNoStates) {
		t.Errorf("expected ErrNoStates, got %v", err)
	}
	if _, err := NewMachine(&State{ID: 1}, nil); !errors.Is(err, ErrNilState) {
		t.Errorf("expected ErrNilState, got %v", err)
	}
	if _, err := NewMachine(&State{ID: 1}, &State{ID: 1}); !errors.Is(err, ErrDuplicateState) {
		t.Errorf("expected ErrDuplicateState, got %v", err)
	}
	if _, err := NewMachine(&State{ID: 1, Initial: true}, &State{ID: 2, Initial: true}); !errors.Is(err, ErrMultipleInit) {
		t.Errorf("expected ErrMultipleInit, got %v", err)
	}

	a := &State{ID: 1}
	a.On(evtGo, nil, nil)
	if _, err := NewMachine(a); !errors.Is(err, ErrNilTarget) {
		t.Errorf("expected ErrNilTarget, got %v", err)
	}

	b := &State{ID: 1}
	b.On(evtGo, &State{ID: 9}, nil)
	if _, err := NewMachine(b); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestSendBeforeStart(t *testing.T) {
	a, b := twoStates()
	m, err := NewMachine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Send(context.Background(), Event{ID: evtGo}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("expected ErrNotStarted, got %v", err)
	}
}

func TestInitialStateSelection(t *testing.T) {
	a, b := twoStates()
	b.Initial = true
	m, err := NewMachine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	if !m.Is(2) {
		t.Errorf("expected initial state 2, got %d", m.Current())
	}
}

func TestRoundTrip(t *testing.T) {
	a, b := twoStates()
	m, _ := NewMachine(a, b)
	m.Start()
	ctx := context.Background()

	if fired, err := m.Send(ctx, Event{ID: evtGo}); err != nil || !fired || !m.Is(2) {
		t.Fatalf("go: fired=%v err=%v current=%d", fired, err, m.Current())
	}
	if fired, err := m.Send(ctx, Event{ID: evtBack}); err != nil || !fired || !m.Is(1) {
		t.Fatalf("back: fired=%v err=%v current=%d", fired, err, m.Current())
	}
}

func TestGuardRejects(t *testing.T) {
	a := &State{ID: 1}
	b := &State{ID: 2}
	allow := false
	a.On(evtGo, b, func(ctx context.Context, evt *Event, from, to StateID) (bool, error) {
		if from != 1 || to != 2 {
			t.Errorf("guard saw %d -> %d", from, to)
		}
		return allow, nil
	})

	m, _ := NewMachine(a, b)
	ctx := context.Background()
	m.Start()

	fired, err := m.Send(ctx, Event{ID: evtGo})
	if err != nil || fired {
		t.Errorf("guarded transition fired: fired=%v err=%v", fired, err)
	}
	if !m.Is(1) {
		t.Errorf("expected to remain in state 1, got %d", m.Current())
	}

	allow = true
	if fired, _ := m.Send(ctx, Event{ID: evtGo}); !fired || !m.Is(2) {
		t.Errorf("expected transition to state 2, fired=%v current=%d", fired, m.Current())
	}
}

func TestGuardErrorKeepsState(t *testing.T) {
	boom := errors.New("boom")
	a := &State{ID: 1}
	b := &State{ID: 2}
	a.On(evtGo, b, func(context.Context, *Event, StateID, StateID) (bool, error) {
		return true, boom
	})

	m, _ := NewMachine(a, b)
	m.Start()
	fired, err := m.Send(context.Background(), Event{ID: evtGo})
	if !errors.Is(err, boom) || fired {
		t.Errorf("expected boom and no fire, got fired=%v err=%v", fired, err)
	}
	if !m.Is(1) {
		t.Errorf("expected to remain in state 1, got %d", m.Current())
	}
}

func TestUnmatchedEventIgnored(t *testing.T) {
	a, b := twoStates()
	m, _ := NewMachine(a, b)
	m.Start()

	fired, err := m.Send(context.Background(), Event{ID: evtBack})
	if err != nil || fired {
		t.Errorf("unmatched event fired: fired=%v err=%v", fired, err)
	}
}
