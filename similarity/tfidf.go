package similarity

import (
	"context"
	"math"
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// TFIDF scores documents with term-frequency / inverse-document-frequency
// vectors and cosine similarity. It uses the smoothed idf variant
// ln((1+n)/(1+df)) + 1 with l2-normalized vectors, so a document compared to
// itself scores 1.0 and disjoint documents score 0.
//
// The scorer is stateless: the vocabulary is rebuilt per call from the
// provided documents, matching the fit-then-score usage of the adapters.
type TFIDF struct{}

var _ Scorer = (*TFIDF)(nil)

// NewTFIDF creates a TF-IDF scorer.
func NewTFIDF() *TFIDF { return &TFIDF{} }

// Scores implements Scorer. The query is the final element of docs.
func (s *TFIDF) Scores(_ context.Context, docs []string) ([]float64, error) {
	vectors := vectorize(docs)
	query := vectors[len(vectors)-1]

	scores := make([]float64, len(docs))
	for i, v := range vectors {
		scores[i] = dot(query, v)
	}
	return scores, nil
}

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

// vectorize builds l2-normalized tf-idf vectors over the shared vocabulary
// of all documents. Vectors are sparse maps keyed by term.
func vectorize(docs []string) []map[string]float64 {
	counts := make([]map[string]float64, len(docs))
	df := map[string]float64{}
	for i, doc := range docs {
		counts[i] = map[string]float64{}
		for _, term := range tokenize(doc) {
			counts[i][term]++
		}
		for term := range counts[i] {
			df[term]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, f := range df {
		idf[term] = math.Log((1+n)/(1+f)) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i, tf := range counts {
		v := make(map[string]float64, len(tf))
		var norm float64
		for term, f := range tf {
			w := f * idf[term]
			v[term] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for term := range v {
				v[term] /= norm
			}
		}
		vectors[i] = v
	}
	return vectors
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
