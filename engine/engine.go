package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/logging"
)

// Config defines tuning parameters for the Engine's turn behavior.
type Config struct {
	// AdapterTimeout bounds each pre-processor call and each logic adapter
	// CanProcess/Process call. Set to 0 to disable the per-call deadline.
	AdapterTimeout time.Duration

	// SinkTimeout bounds each output sink delivery. Set to 0 to disable the
	// per-delivery deadline.
	SinkTimeout time.Duration

	// ConcurrentDispatch delivers the winning response to all sinks in
	// parallel instead of in registration order.
	ConcurrentDispatch bool
}

// DefaultConfig provides conservative defaults: generous per-call deadlines
// and sequential dispatch in registration order.
var DefaultConfig = Config{
	AdapterTimeout: 10 * time.Second,
	SinkTimeout:    30 * time.Second,
}

// Options configures an Engine instance.
type Options struct {
	// Config contains operational parameters for turn execution.
	// Defaults to DefaultConfig if not specified.
	Config Config

	// Logger provides structured logging for turn tracing.
	// Defaults to NoOp logger if nil.
	Logger logging.Logger

	// SessionID overrides the generated session identifier.
	SessionID string
}

// Engine orchestrates the turn pipeline over registered pre-processors,
// logic adapters and output sinks.
//
// Registries are append-only and mutex-guarded; registration order is
// semantic because the last-registered adapter wins confidence ties and
// sequential dispatch follows registration order. The Engine owns a single
// session that persists across turns until ResetSession is called.
//
// All public methods are safe for concurrent use.
type Engine struct {
	config Config
	logger logging.Logger

	mu            sync.RWMutex
	preProcessors []core.PreProcessor
	logicAdapters []core.LogicAdapter
	outputSinks   []core.OutputSink
	session       *core.Session
}

// New creates a new Engine with sensible defaults.
//
// Example:
//
//	eng := engine.New(func(o *engine.Options) {
//	    o.Logger = logging.NewDefaultSlogLogger()
//	})
func New(optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config: DefaultConfig,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return &Engine{
		config:  opts.Config,
		logger:  logging.OrNoOp(opts.Logger),
		session: core.NewSession(sessionID),
	}
}

// RegisterPreProcessor appends a pre-processor to the pipeline. Pre-processors
// run in registration order at the start of every turn.
func (e *Engine) RegisterPreProcessor(p core.PreProcessor) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.preProcessors = append(e.preProcessors, p)
}

// RegisterLogicAdapter appends a logic adapter. Registration order breaks
// confidence ties: the later adapter wins.
func (e *Engine) RegisterLogicAdapter(a core.LogicAdapter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logicAdapters = append(e.logicAdapters, a)
}

// RegisterOutputSink appends an output sink. Sequential dispatch follows
// registration order.
func (e *Engine) RegisterOutputSink(s core.OutputSink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.outputSinks = append(e.outputSinks, s)
}

// Session returns a snapshot of the current session state.
func (e *Engine) Session() map[string]string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session.Snapshot()
}

// SessionID returns the identifier of the current session.
func (e *Engine) SessionID() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session.ID
}

// ResetSession discards all remembered session state and starts a fresh
// session with a new identifier.
func (e *Engine) ResetSession() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session = core.NewSession(uuid.NewString())
	e.logger.Info("session reset", "session_id", e.session.ID)
}

// Ask runs one conversational turn for the given utterance.
//
// The returned response is the highest-confidence candidate produced by the
// registered logic adapters. When no adapter produces a candidate, Ask
// returns (nil, nil) and nothing is dispatched. A non-nil error indicates a
// pipeline failure, not a component failure; component failures are logged
// and isolated.
func (e *Engine) Ask(ctx context.Context, utterance string) (*core.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	preProcessors := e.preProcessors
	adapters := e.logicAdapters
	sinks := e.outputSinks
	session := e.session
	e.mu.RUnlock()

	turnID := uuid.NewString()
	e.logger.Debug("turn started", "turn_id", turnID, "session_id", session.ID, "utterance", utterance)

	for _, p := range preProcessors {
		if err := e.safePreProcess(ctx, p, utterance, session); err != nil {
			e.logger.Warn("pre-processor failed, skipping", "turn_id", turnID, "pre_processor", p.Name(), "error", err)
		}
	}

	candidates := make([]core.Response, 0, len(adapters))
	names := make([]string, 0, len(adapters))
	for _, a := range adapters {
		ok, err := e.safeCanProcess(ctx, a, utterance, session)
		if err != nil {
			e.logger.Warn("adapter eligibility check failed, skipping", "turn_id", turnID, "adapter", a.Name(), "error", err)
			continue
		}
		if !ok {
			continue
		}

		resp, err := e.safeProcess(ctx, a, utterance, session)
		if err != nil {
			e.logger.Error("adapter processing failed, dropping candidate", "turn_id", turnID, "adapter", a.Name(), "error", err)
			continue
		}

		e.logger.Debug("candidate produced", "turn_id", turnID, "adapter", a.Name(), "confidence", resp.Confidence)
		candidates = append(candidates, resp)
		names = append(names, a.Name())
	}

	best, ok := selectBest(candidates)
	if !ok {
		e.logger.Warn("no adapter produced a response", "turn_id", turnID, "utterance", utterance)
		return nil, nil
	}

	winner := candidates[best]
	e.logger.Info("turn resolved", "turn_id", turnID, "adapter", names[best], "confidence", winner.Confidence)

	if err := e.dispatch(ctx, turnID, winner, sinks); err != nil {
		return nil, err
	}

	return &winner, nil
}

func (e *Engine) safePreProcess(ctx context.Context, p core.PreProcessor, utterance string, session *core.Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pre-processor %s panicked: %v", p.Name(), r)
		}
	}()

	ctx, cancel := e.withAdapterTimeout(ctx)
	defer cancel()

	return p.Process(ctx, utterance, session)
}

func (e *Engine) safeCanProcess(ctx context.Context, a core.LogicAdapter, utterance string, session *core.Session) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = fmt.Errorf("adapter %s panicked: %v", a.Name(), r)
		}
	}()

	ctx, cancel := e.withAdapterTimeout(ctx)
	defer cancel()

	return a.CanProcess(ctx, utterance, session)
}

func (e *Engine) safeProcess(ctx context.Context, a core.LogicAdapter, utterance string, session *core.Session) (resp core.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = core.Response{}
			err = fmt.Errorf("adapter %s panicked: %v", a.Name(), r)
		}
	}()

	ctx, cancel := e.withAdapterTimeout(ctx)
	defer cancel()

	return a.Process(ctx, utterance, session)
}

func (e *Engine) withAdapterTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.config.AdapterTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.config.AdapterTimeout)
}

// dispatch delivers the winning response to every sink. Sink failures are
// logged and never abort delivery to the remaining sinks.
func (e *Engine) dispatch(ctx context.Context, turnID string, response core.Response, sinks []core.OutputSink) error {
	if len(sinks) == 0 {
		return nil
	}

	if !e.config.ConcurrentDispatch {
		for _, s := range sinks {
			e.deliver(ctx, turnID, s, response)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range sinks {
		s := s
		g.Go(func() error {
			e.deliver(gctx, turnID, s, response)
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) deliver(ctx context.Context, turnID string, sink core.OutputSink, response core.Response) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("sink panicked", "turn_id", turnID, "sink", sink.Name(), "panic", r)
		}
	}()

	if e.config.SinkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.SinkTimeout)
		defer cancel()
	}

	if err := sink.Handle(ctx, response); err != nil {
		e.logger.Error("sink delivery failed", "turn_id", turnID, "sink", sink.Name(), "error", err)
	}
}
