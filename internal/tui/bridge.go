package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/comalice/carousel"
)

// Messages the bridge posts into the program.
type (
	exitMsg struct {
		slide, dir int
		done       chan struct{}
	}
	enterMsg struct {
		slide, dir int
	}
	revealMsg struct {
		slide int
	}
	dotMsg struct {
		index int
	}
	numberMsg struct {
		n int
	}
)

// Bridge is the controller's presenter and indicator. It turns collaborator
// calls into messages for the running program, which owns all view state.
type Bridge struct {
	total int

	mu   sync.RWMutex
	send func(tea.Msg)
}

var (
	_ carousel.Presenter = (*Bridge)(nil)
	_ carousel.Indicator = (*Bridge)(nil)
)

// NewBridge creates a bridge for a deck of total slides. send may be nil
// until Attach is called.
func NewBridge(total int, send func(tea.Msg)) *Bridge {
	return &Bridge{total: total, send: send}
}

// Attach routes messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = p.Send
}

func (b *Bridge) post(msg tea.Msg) bool {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send == nil {
		return false
	}
	send(msg)
	return true
}

func (b *Bridge) resolve(slide int) error {
	if slide < 0 || slide >= b.total {
		return fmt.Errorf("slide %d of %d: %w", slide, b.total, carousel.ErrUnresolved)
	}
	return nil
}

// PlayExit starts the fade-out. Without an attached program there is
// nothing to animate and the effect completes at once.
func (b *Bridge) PlayExit(_ context.Context, slide, direction int) (<-chan struct{}, error) {
	if err := b.resolve(slide); err != nil {
		return nil, err
	}
	done := make(chan struct{})
	if !b.post(exitMsg{slide: slide, dir: direction, done: done}) {
		close(done)
	}
	return done, nil
}

func (b *Bridge) PlayEnter(slide, direction int) {
	b.post(enterMsg{slide: slide, dir: direction})
}

func (b *Bridge) PlayReveal(slide int) {
	b.post(revealMsg{slide: slide})
}

func (b *Bridge) SetActiveDot(index int) error {
	if err := b.resolve(index); err != nil {
		return err
	}
	b.post(dotMsg{index: index})
	return nil
}

func (b *Bridge) SetDisplayedNumber(n int) {
	b.post(numberMsg{n: n})
}
