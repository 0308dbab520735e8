// Package publish provides carousel lifecycle event sinks.
package publish

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/comalice/carousel"
)

// ChannelPublisher forwards events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	mu     sync.RWMutex
	ch     chan<- carousel.Event
	closed bool
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- carousel.Event) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, evt carousel.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil
	}

	select {
	case p.ch <- evt:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

// Close closes the output channel. Later publishes are discarded.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.ch)
	}
	return nil
}

// LogPublisher writes every event to a logger at debug level.
type LogPublisher struct {
	Log *zap.Logger
}

func (p LogPublisher) Publish(_ context.Context, evt carousel.Event) error {
	fields := []zap.Field{
		zap.String("kind", string(evt.Kind)),
		zap.String("controller", evt.ControllerID),
		zap.Time("at", evt.Time),
	}
	switch evt.Kind {
	case carousel.EventTransitionStarted, carousel.EventTransitionCompleted,
		carousel.EventTransitionAborted, carousel.EventNavigationDropped:
		fields = append(fields, zap.Int("from", evt.From), zap.Int("to", evt.To), zap.Int("delta", evt.Delta))
	case carousel.EventInitialized:
		fields = append(fields, zap.Int("total", evt.Total))
	}
	if evt.Reason != "" {
		fields = append(fields, zap.String("reason", evt.Reason))
	}
	if evt.Err != nil {
		fields = append(fields, zap.Error(evt.Err))
	}
	p.Log.Debug("carousel event", fields...)
	return nil
}

// Multi fans events out to every publisher.
type Multi []carousel.Publisher

func (m Multi) Publish(ctx context.Context, evt carousel.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
