package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parrotlabs/parley/corpus"
	"github.com/parrotlabs/parley/internal/testutil"
	"github.com/parrotlabs/parley/similarity"
)

func TestCorpusReturnsClosestAnswer(t *testing.T) {
	store := corpus.NewStore(
		corpus.Pair{Question: "where are you from?", Answer: "A"},
		corpus.Pair{Question: "fox", Answer: "B"},
	)
	a := NewCorpus(store, similarity.NewTFIDF())
	ctx := context.Background()

	ok, err := a.CanProcess(ctx, "where are you from", nil)
	require.NoError(t, err)
	require.True(t, ok)

	resp, err := a.Process(ctx, "where are you from", nil)
	require.NoError(t, err)
	assert.Equal(t, "A", resp.Text)
	assert.Greater(t, resp.Confidence, 0.9)
}

func TestCorpusEmptyIsNotEligible(t *testing.T) {
	a := NewCorpus(corpus.NewStore(), similarity.NewTFIDF())

	ok, err := a.CanProcess(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorpusExcludesSelfSimilarity(t *testing.T) {
	store := corpus.NewStore(
		corpus.Pair{Question: "q1", Answer: "first"},
		corpus.Pair{Question: "q2", Answer: "second"},
	)
	// The utterance's own entry carries the top score and must be skipped.
	scorer := &testutil.StubScorer{Row: []float64{0.7, 0.3, 1.0}}
	a := NewCorpus(store, scorer)

	resp, err := a.Process(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)
	assert.Equal(t, 0.7, resp.Confidence)
	assert.Equal(t, 1, scorer.Calls)
}

func TestCorpusTieFavorsLaterPair(t *testing.T) {
	store := corpus.NewStore(
		corpus.Pair{Question: "q1", Answer: "first"},
		corpus.Pair{Question: "q2", Answer: "second"},
	)
	scorer := &testutil.StubScorer{Row: []float64{0.5, 0.5, 1.0}}
	a := NewCorpus(store, scorer)

	resp, err := a.Process(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text)
}

func TestCorpusScorerFailurePropagates(t *testing.T) {
	store := corpus.NewStore(corpus.Pair{Question: "q", Answer: "a"})
	scorer := &testutil.StubScorer{Err: errors.New("similarity service down")}
	a := NewCorpus(store, scorer)

	_, err := a.Process(context.Background(), "q", nil)
	assert.Error(t, err)
}
