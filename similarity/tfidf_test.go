package similarity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFSelfSimilarityIsOne(t *testing.T) {
	s := NewTFIDF()

	scores, err := s.Scores(context.Background(), []string{"the quick brown fox", "the quick brown fox"})
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.InDelta(t, 1.0, scores[1], 1e-9)
	assert.InDelta(t, 1.0, scores[0], 1e-9)
}

func TestTFIDFRanksNearIdenticalQuestionHighest(t *testing.T) {
	s := NewTFIDF()

	docs := []string{"where are you from?", "fox", "where are you from"}
	scores, err := s.Scores(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Greater(t, scores[0], scores[1], "near-identical question must outrank the unrelated one")
	assert.Greater(t, scores[0], 0.9)
	assert.InDelta(t, 0.0, scores[1], 1e-9)
	assert.InDelta(t, 1.0, scores[2], 1e-9)
}

func TestTFIDFEmptyDocumentScoresZero(t *testing.T) {
	s := NewTFIDF()

	scores, err := s.Scores(context.Background(), []string{"", "hello"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, scores[0])
}
