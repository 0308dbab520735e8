package carousel

import (
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"
)

const (
	// DefaultInterval is the auto-advance period.
	DefaultInterval = 5000 * time.Millisecond
	// DefaultTransitionDuration is how long the fallback presenter takes to
	// finish an exit effect.
	DefaultTransitionDuration = 800 * time.Millisecond
)

// Option configures a Controller.
type Option func(c *Controller)

// WithPresenter sets the presentation effect provider.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		c.presenter = p
	}
}

// WithIndicator sets the dot/counter renderer.
func WithIndicator(ind Indicator) Option {
	return func(c *Controller) {
		c.indicator = ind
	}
}

// WithPublisher sets the lifecycle event sink.
func WithPublisher(pb Publisher) Option {
	return func(c *Controller) {
		c.publisher = pb
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithClock sets the clock used for the auto-advance timer and the
// fallback presenter.
func WithClock(clk clock.WithDelayedExecution) Option {
	return func(c *Controller) {
		c.clock = clk
	}
}

// WithInterval sets the auto-advance period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.interval = d
	}
}

// WithTransitionDuration sets the fallback presenter's exit duration.
func WithTransitionDuration(d time.Duration) Option {
	return func(c *Controller) {
		c.transitionDuration = d
	}
}

// WithAutoAdvance controls whether Initialize arms the auto-advance timer.
// Only the home view auto-advances; other views pass false.
func WithAutoAdvance(enabled bool) Option {
	return func(c *Controller) {
		c.autoAdvance = enabled
	}
}

// WithID sets the identifier attached to logs and events.
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}
