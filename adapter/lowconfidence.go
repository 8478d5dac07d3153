package adapter

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/parrotlabs/parley/core"
)

// LowConfidenceOptions configures the fallback adapter.
type LowConfidenceOptions struct {
	// Rand supplies the selection randomness. Inject a seeded source for
	// deterministic tests; defaults to a time-seeded source.
	Rand *rand.Rand
}

// LowConfidence is the always-eligible fallback: it answers with a uniformly
// random canned response at a fixed, caller-supplied confidence. Registering
// it guarantees every turn produces at least one candidate.
type LowConfidence struct {
	confidence float64
	responses  []string

	mu  sync.Mutex
	rng *rand.Rand
}

var _ core.LogicAdapter = (*LowConfidence)(nil)

// NewLowConfidence creates a fallback adapter over the canned responses.
func NewLowConfidence(confidence float64, responses []string, optFns ...func(o *LowConfidenceOptions)) *LowConfidence {
	opts := LowConfidenceOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &LowConfidence{
		confidence: confidence,
		responses:  responses,
		rng:        opts.Rand,
	}
}

// Name implements core.LogicAdapter.
func (a *LowConfidence) Name() string { return "low-confidence" }

// CanProcess implements core.LogicAdapter.
func (a *LowConfidence) CanProcess(context.Context, string, *core.Session) (bool, error) {
	return len(a.responses) > 0, nil
}

// Process implements core.LogicAdapter.
func (a *LowConfidence) Process(context.Context, string, *core.Session) (core.Response, error) {
	if len(a.responses) == 0 {
		return core.Response{}, fmt.Errorf("no canned responses configured")
	}

	a.mu.Lock()
	pick := a.responses[a.rng.Intn(len(a.responses))]
	a.mu.Unlock()

	return core.NewResponse(pick, a.confidence), nil
}
