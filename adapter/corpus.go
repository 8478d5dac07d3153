package adapter

import (
	"context"
	"fmt"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/corpus"
	"github.com/parrotlabs/parley/similarity"
)

// Corpus answers with the stored reply whose question ranks closest to the
// utterance under the configured similarity scorer. The scorer sees the
// corpus questions with the utterance appended last; the utterance's
// self-similarity entry is excluded before picking the winner, which is the
// "second from the top" of the full ranking.
type Corpus struct {
	store  *corpus.Store
	scorer similarity.Scorer
}

var _ core.LogicAdapter = (*Corpus)(nil)

// NewCorpus creates a corpus-similarity adapter reading pairs from store.
func NewCorpus(store *corpus.Store, scorer similarity.Scorer) *Corpus {
	return &Corpus{store: store, scorer: scorer}
}

// Name implements core.LogicAdapter.
func (a *Corpus) Name() string { return "corpus-similarity" }

// CanProcess implements core.LogicAdapter. The adapter is unconditionally
// eligible except for an empty corpus, which would leave Process without a
// rankable entry.
func (a *Corpus) CanProcess(context.Context, string, *core.Session) (bool, error) {
	return a.store.Len() > 0, nil
}

// Process implements core.LogicAdapter.
func (a *Corpus) Process(ctx context.Context, utterance string, _ *core.Session) (core.Response, error) {
	pairs := a.store.Pairs()
	if len(pairs) == 0 {
		return core.Response{}, fmt.Errorf("corpus is empty")
	}

	docs := make([]string, 0, len(pairs)+1)
	for _, p := range pairs {
		docs = append(docs, p.Question)
	}
	docs = append(docs, utterance)

	scores, err := a.scorer.Scores(ctx, docs)
	if err != nil {
		return core.Response{}, fmt.Errorf("similarity scoring: %w", err)
	}
	if len(scores) != len(docs) {
		return core.Response{}, fmt.Errorf("similarity scoring returned %d scores for %d documents", len(scores), len(docs))
	}

	// Best corpus question, skipping the utterance's own entry; equal scores
	// resolve to the later pair, matching the engine's tie-break.
	best := 0
	for i := 1; i < len(pairs); i++ {
		if scores[i] >= scores[best] {
			best = i
		}
	}
	return core.NewResponse(pairs[best].Answer, scores[best]), nil
}
