package carousel

import (
	"context"

	"go.uber.org/zap"
)

// ResetTimer cancels the pending auto-advance callback and, when the
// controller has more than one slide and is not paused, schedules a new
// one a full interval from now. Input adapters call it after every manual
// navigation.
func (c *Controller) ResetTimer() {
	c.mu.Lock()
	armed := c.resetTimerLocked()
	total := c.total
	c.mu.Unlock()

	if armed {
		c.emit(context.Background(), Event{Kind: EventTimerArmed, Total: total})
	}
}

// resetTimerLocked is cancel-then-reschedule; at most one callback is ever
// pending. Reports whether a callback was scheduled.
func (c *Controller) resetTimerLocked() bool {
	c.cancelTimerLocked()
	if !c.initialized || c.tornDown || c.total <= 1 || c.pausedLocked() {
		return false
	}
	gen := c.timerGen
	// Clocks may run callbacks inline under their own lock; fire re-arms
	// and reads the clock, so it must not run on that stack.
	c.timer = c.clock.AfterFunc(c.interval, func() { go c.fire(gen) })
	return true
}

// cancelTimerLocked stops the pending timer. Bumping the generation also
// disarms a callback whose timer already expired but has not yet taken
// the lock.
func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

// fire runs on its own goroutine. It re-arms before advancing so the
// period does not stretch by the transition time.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.timerGen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.resetTimerLocked()
	total := c.total
	c.mu.Unlock()

	ctx := context.Background()
	c.log.Debug("auto-advance fired")
	c.emit(ctx, Event{Kind: EventTimerFired, Total: total})
	if t := c.GoTo(ctx, +1); !t.Accepted() {
		c.log.Debug("auto-advance dropped", zap.String("reason", t.DropReason()))
	}
}
