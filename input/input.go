// Package input maps user interactions onto carousel controller calls.
//
// Every navigation adapter issues GoTo and then ResetTimer, so a manual
// move always restarts the auto-advance countdown. The detail toggle maps
// panel expand/collapse onto pause reasons.
package input

import (
	"context"
	"fmt"
	"sync"

	"github.com/comalice/carousel"
)

// Navigator is the part of the controller the adapters drive.
type Navigator interface {
	GoTo(ctx context.Context, delta int) *carousel.Transition
	GoToIndex(ctx context.Context, target int) *carousel.Transition
	ResetTimer()
	ActiveIndex() int
	Total() int
}

// Pauser is the part of the controller the detail toggle drives.
type Pauser interface {
	Pause(reason string)
	Resume(reason string)
}

var (
	_ Navigator = (*carousel.Controller)(nil)
	_ Pauser    = (*carousel.Controller)(nil)
)

func navigate(ctx context.Context, nav Navigator, delta int) *carousel.Transition {
	t := nav.GoTo(ctx, delta)
	nav.ResetTimer()
	return t
}

// Arrows handles the previous/next controls.
type Arrows struct {
	Nav Navigator
}

func (a Arrows) Prev(ctx context.Context) *carousel.Transition {
	return navigate(ctx, a.Nav, -1)
}

func (a Arrows) Next(ctx context.Context) *carousel.Transition {
	return navigate(ctx, a.Nav, +1)
}

// Dots handles clicks on a specific dot.
type Dots struct {
	Nav Navigator
}

// Click jumps to index in a single transition. Clicking the active dot or
// an index outside the deck does nothing and returns nil.
func (d Dots) Click(ctx context.Context, index int) *carousel.Transition {
	if index == d.Nav.ActiveIndex() || index < 0 || index >= d.Nav.Total() {
		return nil
	}
	t := d.Nav.GoToIndex(ctx, index)
	d.Nav.ResetTimer()
	return t
}

// Keyboard maps directional key names to navigation.
type Keyboard struct {
	Nav Navigator
}

// Direction returns -1, +1 or 0 for key. Both browser key names and
// terminal key names are accepted.
func Direction(key string) int {
	switch key {
	case "ArrowLeft", "left", "h":
		return -1
	case "ArrowRight", "right", "l":
		return +1
	}
	return 0
}

// Press navigates for directional keys. It reports whether key was
// handled; the returned transition is nil when it was not.
func (k Keyboard) Press(ctx context.Context, key string) (*carousel.Transition, bool) {
	dir := Direction(key)
	if dir == 0 {
		return nil, false
	}
	return navigate(ctx, k.Nav, dir), true
}

// DetailToggle tracks which slide detail panels are expanded. Each
// expanded panel holds its own pause reason, so auto-advance resumes only
// once every panel is collapsed.
type DetailToggle struct {
	pauser Pauser

	mu       sync.Mutex
	expanded map[int]bool
}

func NewDetailToggle(p Pauser) *DetailToggle {
	return &DetailToggle{pauser: p, expanded: make(map[int]bool)}
}

// PanelReason is the pause reason held while slide's panel is expanded.
func PanelReason(slide int) string {
	return fmt.Sprintf("detail-%d", slide)
}

// Toggle flips slide's panel and returns whether it is now expanded.
func (d *DetailToggle) Toggle(slide int) bool {
	d.mu.Lock()
	open := !d.expanded[slide]
	if open {
		d.expanded[slide] = true
	} else {
		delete(d.expanded, slide)
	}
	d.mu.Unlock()

	if open {
		d.pauser.Pause(PanelReason(slide))
	} else {
		d.pauser.Resume(PanelReason(slide))
	}
	return open
}

// Expanded reports whether slide's panel is open.
func (d *DetailToggle) Expanded(slide int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expanded[slide]
}
