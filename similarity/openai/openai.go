// Package openai provides a similarity scorer backed by the OpenAI
// embeddings API. It is the remote alternative to the local TF-IDF scorer
// for deployments that want semantic rather than lexical relatedness.
package openai

import (
	"context"
	"fmt"
	"math"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/parrotlabs/parley/similarity"
)

// Options configures the embedding scorer (model id, API key).
type Options struct {
	Model  openai.EmbeddingModel
	APIKey string
}

// Scorer embeds all documents in one request and scores the query (the final
// document) against each embedding with cosine similarity.
type Scorer struct {
	client *openai.Client
	opts   Options
}

var _ similarity.Scorer = (*Scorer)(nil)

// NewScorer creates a scorer using the official OpenAI client. The API key
// falls back to the OPENAI_API_KEY environment variable when unset.
func NewScorer(optFns ...func(o *Options)) *Scorer {
	opts := Options{Model: openai.EmbeddingModelTextEmbedding3Small}
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := openai.NewClient(clientOpts...)

	return &Scorer{client: &client, opts: opts}
}

// NewScorerFromClient creates a scorer from an existing client.
func NewScorerFromClient(client *openai.Client, optFns ...func(o *Options)) *Scorer {
	opts := Options{Model: openai.EmbeddingModelTextEmbedding3Small}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Scorer{client: client, opts: opts}
}

// Scores implements similarity.Scorer.
func (s *Scorer) Scores(ctx context.Context, docs []string) ([]float64, error) {
	resp, err := s.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: s.opts.Model,
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: docs},
	})
	if err != nil {
		return nil, fmt.Errorf("openai embeddings error: %w", err)
	}
	if len(resp.Data) != len(docs) {
		return nil, fmt.Errorf("openai embeddings returned %d vectors for %d documents", len(resp.Data), len(docs))
	}

	query := resp.Data[len(resp.Data)-1].Embedding
	scores := make([]float64, len(docs))
	for i, d := range resp.Data {
		scores[i] = cosine(query, d.Embedding)
	}
	return scores, nil
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
