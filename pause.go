package carousel

import (
	"context"

	"go.uber.org/zap"
)

// DetailReason is the pause reason used by SetPaused.
const DetailReason = "detail"

// SetPaused is the single-source form of Pause/Resume, keyed on
// DetailReason.
func (c *Controller) SetPaused(paused bool) {
	if paused {
		c.Pause(DetailReason)
		return
	}
	c.Resume(DetailReason)
}

// Pause adds reason to the held pause reasons and cancels any pending
// auto-advance immediately. An in-flight transition is not interrupted.
// Holding the same reason twice is the same as holding it once.
func (c *Controller) Pause(reason string) {
	c.mu.Lock()
	if c.inertLocked() {
		c.mu.Unlock()
		return
	}
	wasPaused := c.pausedLocked()
	c.reasons[reason] = struct{}{}
	c.cancelTimerLocked()
	c.mu.Unlock()

	if !wasPaused {
		c.log.Debug("carousel paused", zap.String("reason", reason))
		c.emit(context.Background(), Event{Kind: EventPaused, Reason: reason})
	}
}

// Resume releases reason. Once no reasons are held, auto-advance restarts
// from a full interval.
func (c *Controller) Resume(reason string) {
	c.mu.Lock()
	if c.inertLocked() {
		c.mu.Unlock()
		return
	}
	_, held := c.reasons[reason]
	delete(c.reasons, reason)
	if c.pausedLocked() {
		c.mu.Unlock()
		return
	}
	armed := c.resetTimerLocked()
	total := c.total
	c.mu.Unlock()

	if held {
		c.log.Debug("carousel resumed", zap.String("reason", reason))
		c.emit(context.Background(), Event{Kind: EventResumed, Reason: reason})
	}
	if armed {
		c.emit(context.Background(), Event{Kind: EventTimerArmed, Total: total})
	}
}

// Paused reports whether any pause reason is held.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pausedLocked()
}

func (c *Controller) pausedLocked() bool {
	return len(c.reasons) > 0
}

func (c *Controller) inertLocked() bool {
	return c.tornDown || (c.initialized && c.total == 0)
}
