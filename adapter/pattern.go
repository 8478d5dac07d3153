package adapter

import (
	"context"
	"regexp"
	"strings"

	"github.com/parrotlabs/parley/core"
)

// Confidence weighting for pattern adapters. Keyword presence intentionally
// dominates match span; both are tunables, not laws of nature.
const (
	MatchWeight   = 0.4
	KeywordWeight = 0.6
)

// Regex is the embeddable base for pattern-driven adapters. It supplies the
// eligibility check (pattern has at least one match) and the shared
// confidence formula; concrete adapters provide Name and Process.
type Regex struct {
	Pattern  *regexp.Regexp
	Keywords []string
}

// CanProcess reports whether the pattern matches the utterance.
func (r *Regex) CanProcess(_ context.Context, utterance string, _ *core.Session) (bool, error) {
	return r.Pattern.MatchString(utterance), nil
}

// FirstMatch extracts the first capture group of the first pattern match, or
// the whole match when the pattern has no groups. Empty when nothing matches.
func (r *Regex) FirstMatch(utterance string) string {
	m := r.Pattern.FindStringSubmatch(utterance)
	if m == nil {
		return ""
	}
	if len(m) > 1 {
		return m[1]
	}
	return m[0]
}

// Confidence combines the match's share of the utterance with keyword
// presence: MatchWeight * len(match)/len(utterance) + KeywordWeight * kw,
// where kw is 1 when any configured keyword appears as a whole word.
func (r *Regex) Confidence(match, utterance string) float64 {
	span := 0.0
	if len(utterance) > 0 {
		span = float64(len(match)) / float64(len(utterance))
	}
	kw := 0.0
	if r.containsKeyword(utterance) {
		kw = 1.0
	}
	return span*MatchWeight + kw*KeywordWeight
}

func (r *Regex) containsKeyword(utterance string) bool {
	words := strings.Fields(strings.ToLower(utterance))
	for _, keyword := range r.Keywords {
		keyword = strings.ToLower(keyword)
		for _, word := range words {
			if word == keyword {
				return true
			}
		}
	}
	return false
}
