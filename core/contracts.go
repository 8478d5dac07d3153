package core

import "context"

// LogicAdapter is the strategy contract for producing candidate responses.
//
// CanProcess is a cheap, side-effect-free eligibility check; it may be called
// even when the adapter is never selected, and it must be a true predictor of
// Process succeeding: Process is only invoked after CanProcess returned true
// and should not fail for empty-match reasons CanProcess could have caught.
//
// Both methods receive the live session by reference for the duration of the
// call only; implementations must not retain it.
type LogicAdapter interface {
	Name() string
	CanProcess(ctx context.Context, utterance string, session *Session) (bool, error)
	Process(ctx context.Context, utterance string, session *Session) (Response, error)
}

// PreProcessor runs once per turn before any logic adapter and may mutate the
// session (entity extraction and similar context enrichment).
type PreProcessor interface {
	Name() string
	Process(ctx context.Context, utterance string, session *Session) error
}

// OutputSink consumes the winning response of a turn as a pure side effect.
// A sink failure is logged by the engine and never affects other sinks or the
// already-decided winner.
type OutputSink interface {
	Name() string
	Handle(ctx context.Context, response Response) error
}
