// Package parley provides a high-level façade over the core Engine and its
// pipeline abstractions (pre-processors, logic adapters, output sinks &
// logging) enabling rapid construction of conversational bots. Most
// applications interact with this package by:
//  1. Creating a Bot via New() (optionally overriding engine config and logger)
//  2. Registering pre-processors, logic adapters and output sinks
//  3. Calling Ask() once per user utterance
//
// The façade delegates turn orchestration to engine.Engine while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a
// structured logger and tuned timeouts.
package parley

import (
	"context"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/engine"
	"github.com/parrotlabs/parley/logging"
)

// Options configures the Bot instance.
type Options struct {
	// EngineConfig tunes turn execution (per-call timeouts, dispatch mode).
	EngineConfig engine.Config

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// SessionID overrides the generated session identifier.
	SessionID string
}

// Bot is the high-level façade aggregating the underlying engine.
type Bot struct {
	opts   Options
	engine *engine.Engine
}

// New creates a new Bot instance with optional overrides.
func New(optFns ...func(o *Options)) *Bot {
	opts := Options{
		EngineConfig: engine.DefaultConfig,
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	e := engine.New(func(o *engine.Options) {
		o.Config = opts.EngineConfig
		o.Logger = opts.Logger
		o.SessionID = opts.SessionID
	})

	return &Bot{opts: opts, engine: e}
}

// RegisterPreProcessor adds a pre-processor to the turn pipeline.
func (b *Bot) RegisterPreProcessor(p core.PreProcessor) { b.engine.RegisterPreProcessor(p) }

// RegisterLogicAdapter adds a logic adapter. The last-registered adapter wins
// confidence ties.
func (b *Bot) RegisterLogicAdapter(a core.LogicAdapter) { b.engine.RegisterLogicAdapter(a) }

// RegisterLogicAdapters adds multiple logic adapters in order.
func (b *Bot) RegisterLogicAdapters(adapters ...core.LogicAdapter) {
	for _, a := range adapters {
		b.engine.RegisterLogicAdapter(a)
	}
}

// RegisterOutputSink adds an output sink for winning responses.
func (b *Bot) RegisterOutputSink(s core.OutputSink) { b.engine.RegisterOutputSink(s) }

// RegisterOutputSinks adds multiple output sinks in order.
func (b *Bot) RegisterOutputSinks(sinks ...core.OutputSink) {
	for _, s := range sinks {
		b.engine.RegisterOutputSink(s)
	}
}

// Ask runs one conversational turn and returns the winning response, or nil
// when no adapter produced a candidate.
func (b *Bot) Ask(ctx context.Context, utterance string) (*core.Response, error) {
	return b.engine.Ask(ctx, utterance)
}

// Session returns a snapshot of the current session state.
func (b *Bot) Session() map[string]string { return b.engine.Session() }

// SessionID returns the identifier of the current session.
func (b *Bot) SessionID() string { return b.engine.SessionID() }

// ResetSession discards remembered session state and starts a fresh session.
func (b *Bot) ResetSession() { b.engine.ResetSession() }
