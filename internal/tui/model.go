// Package tui is the interactive terminal view of a carousel. The model
// renders slides, dots and the counter; the Bridge feeds it the
// controller's presentation and indicator calls.
package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comalice/carousel"
	"github.com/comalice/carousel/deck"
	"github.com/comalice/carousel/input"
)

// FrameInterval is the animation frame period.
const FrameInterval = 40 * time.Millisecond

type frameMsg time.Time

type effectKind int

const (
	effectExit effectKind = iota + 1
	effectEnter
)

// effect is one running fade. Exit effects own the completion channel the
// controller is waiting on.
type effect struct {
	kind   effectKind
	slide  int
	dir    int
	frame  int
	frames int
	done   chan struct{}
}

func (e *effect) progress() float64 {
	if e.frames == 0 {
		return 1
	}
	return float64(e.frame) / float64(e.frames)
}

// Model is the bubbletea model.
type Model struct {
	ctx     context.Context
	deck    deck.Deck
	ctrl    *carousel.Controller
	arrows  input.Arrows
	dots    input.Dots
	details *input.DetailToggle
	keys    KeyMap
	help    help.Model
	frames  int

	shown    int // slide currently drawn
	dot      int
	number   int
	opacity  float64
	offset   int // signed horizontal shift while fading
	revealed int // headline words revealed on the shown slide
	fx       *effect
	reveal   bool
	ticking  bool
	width    int
	quitting bool
}

// NewModel wires a model to ctrl. duration is the length of the exit and
// enter fades.
func NewModel(ctx context.Context, d deck.Deck, ctrl *carousel.Controller, duration time.Duration) Model {
	frames := int(duration / FrameInterval)
	if frames < 1 {
		frames = 1
	}
	m := Model{
		ctx:     ctx,
		deck:    d,
		ctrl:    ctrl,
		arrows:  input.Arrows{Nav: ctrl},
		dots:    input.Dots{Nav: ctrl},
		details: input.NewDetailToggle(ctrl),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frames:  frames,
		opacity: 1,
	}
	m.revealed = len(m.headline())
	return m
}

func (m Model) Init() tea.Cmd {
	ctx, ctrl, total := m.ctx, m.ctrl, m.deck.Len()
	return func() tea.Msg {
		ctrl.Initialize(ctx, total)
		return nil
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// animate starts the frame loop unless it is already running.
func (m *Model) animate() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exitMsg:
		m.finishEffect()
		m.shown = msg.slide
		m.fx = &effect{kind: effectExit, slide: msg.slide, dir: msg.dir, frames: m.frames, done: msg.done}
		cmd := m.animate()
		return m, cmd

	case enterMsg:
		m.finishEffect()
		m.shown = msg.slide
		m.opacity = 0
		m.revealed = 0
		m.fx = &effect{kind: effectEnter, slide: msg.slide, dir: msg.dir, frames: m.frames}
		cmd := m.animate()
		return m, cmd

	case revealMsg:
		if msg.slide == m.shown {
			m.reveal = true
			m.revealed = 0
			cmd := m.animate()
			return m, cmd
		}
		return m, nil

	case dotMsg:
		m.dot = msg.index
		return m, nil

	case numberMsg:
		m.number = msg.n
		return m, nil

	case frameMsg:
		return m.step()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.finishEffect()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		arrows, ctx := m.arrows, m.ctx
		return m, func() tea.Msg {
			arrows.Prev(ctx)
			return nil
		}

	case key.Matches(msg, m.keys.Next):
		arrows, ctx := m.arrows, m.ctx
		return m, func() tea.Msg {
			arrows.Next(ctx)
			return nil
		}

	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		dots, ctx := m.dots, m.ctx
		return m, func() tea.Msg {
			dots.Click(ctx, n-1)
			return nil
		}

	case key.Matches(msg, m.keys.Detail):
		if m.deck.Len() > 0 {
			m.details.Toggle(m.dot)
		}
		return m, nil
	}
	return m, nil
}

// step advances running animations by one frame.
func (m Model) step() (tea.Model, tea.Cmd) {
	if fx := m.fx; fx != nil {
		fx.frame++
		p := fx.progress()
		shift := int(float64(maxShift) * (1 - p))
		switch fx.kind {
		case effectExit:
			m.opacity = 1 - p
			m.offset = -fx.dir * (maxShift - shift)
		case effectEnter:
			m.opacity = p
			m.offset = fx.dir * shift
		}
		if fx.frame >= fx.frames {
			m.finishEffect()
		}
	}

	if m.reveal {
		words := len(m.headline())
		if m.revealed < words {
			m.revealed++
		}
		if m.revealed >= words {
			m.reveal = false
		}
	}

	if m.fx == nil && !m.reveal {
		m.ticking = false
		return m, nil
	}
	return m, frameTick()
}

// finishEffect jumps the running effect to its final frame and releases
// anyone waiting on it.
func (m *Model) finishEffect() {
	fx := m.fx
	if fx == nil {
		return
	}
	m.fx = nil
	m.offset = 0
	switch fx.kind {
	case effectExit:
		m.opacity = 0
		close(fx.done)
	case effectEnter:
		m.opacity = 1
	}
}

func (m Model) headline() []string {
	if m.shown < 0 || m.shown >= m.deck.Len() {
		return nil
	}
	return m.deck.Slides[m.shown].Headline()
}
