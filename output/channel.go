package output

import (
	"context"

	"github.com/parrotlabs/parley/core"
)

// Channel hands winning responses to a Go channel for downstream consumers.
// Delivery blocks until the consumer receives or the context ends, so pair it
// with a buffered channel or the engine's sink timeout.
type Channel struct {
	ch chan<- core.Response
}

var _ core.OutputSink = (*Channel)(nil)

// NewChannel creates a channel sink.
func NewChannel(ch chan<- core.Response) *Channel {
	return &Channel{ch: ch}
}

// Name implements core.OutputSink.
func (c *Channel) Name() string { return "channel" }

// Handle implements core.OutputSink.
func (c *Channel) Handle(ctx context.Context, response core.Response) error {
	select {
	case c.ch <- response:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
