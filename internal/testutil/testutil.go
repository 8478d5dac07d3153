package testutil

import (
	"context"
	"math/rand"
	"sync"

	"github.com/parrotlabs/parley/core"
)

// StubScorer returns a fixed similarity row for every call.
type StubScorer struct {
	// Row is returned verbatim from Scores.
	Row []float64
	// Err, when set, is returned instead of Row.
	Err error
	// Calls counts Scores invocations.
	Calls int
}

// Scores implements similarity.Scorer.
func (s *StubScorer) Scores(_ context.Context, _ []string) ([]float64, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Row, nil
}

// RecordingSink captures every response it handles.
type RecordingSink struct {
	// Err, when set, is returned from Handle after recording.
	Err error

	mu      sync.Mutex
	handled []core.Response
}

var _ core.OutputSink = (*RecordingSink)(nil)

// Name implements core.OutputSink.
func (r *RecordingSink) Name() string { return "recording" }

// Handle implements core.OutputSink.
func (r *RecordingSink) Handle(_ context.Context, response core.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handled = append(r.handled, response)
	return r.Err
}

// Handled returns a copy of the responses seen so far.
func (r *RecordingSink) Handled() []core.Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Response, len(r.handled))
	copy(out, r.handled)
	return out
}

// StaticAdapter is a logic adapter with canned eligibility and response.
type StaticAdapter struct {
	AdapterName string
	Eligible    bool
	Response    core.Response
	// CanErr is returned from CanProcess.
	CanErr error
	// ProcErr is returned from Process.
	ProcErr error
	// Panic, when set, makes both phases panic with this value.
	Panic any
}

var _ core.LogicAdapter = (*StaticAdapter)(nil)

// Name implements core.LogicAdapter.
func (a *StaticAdapter) Name() string {
	if a.AdapterName == "" {
		return "static"
	}
	return a.AdapterName
}

// CanProcess implements core.LogicAdapter.
func (a *StaticAdapter) CanProcess(_ context.Context, _ string, _ *core.Session) (bool, error) {
	if a.Panic != nil {
		panic(a.Panic)
	}
	return a.Eligible, a.CanErr
}

// Process implements core.LogicAdapter.
func (a *StaticAdapter) Process(_ context.Context, _ string, _ *core.Session) (core.Response, error) {
	if a.Panic != nil {
		panic(a.Panic)
	}
	return a.Response, a.ProcErr
}

// FixedRand returns a deterministic random source for reproducible picks.
func FixedRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
