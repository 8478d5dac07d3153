// Package similarity defines the vector-space relatedness boundary used by
// corpus-backed logic adapters, together with a local TF-IDF implementation.
package similarity

import "context"

// Scorer computes how related a query is to a set of documents. The docs
// slice holds the corpus with the query appended as its final element; the
// returned slice has the same length and holds the query's similarity against
// every element, including the query itself (which scores 1.0 for any
// non-degenerate document).
type Scorer interface {
	Scores(ctx context.Context, docs []string) ([]float64, error)
}
