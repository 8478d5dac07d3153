// Package match defines the approximate string matching boundary used by
// entity pre-processing. Implementations decide whether a short token fuzzily
// matches a vocabulary entry within an edit-distance budget.
package match

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Approx is the pluggable approximate matcher contract. Implementations must
// be safe for concurrent use and should honor ctx for remote backends.
type Approx interface {
	Match(ctx context.Context, needle, haystack string, maxDistance int) (bool, error)
}

// Levenshtein matches when the edit distance between needle and haystack is
// within the budget. Comparison is case-insensitive.
type Levenshtein struct{}

var _ Approx = (*Levenshtein)(nil)

// NewLevenshtein creates a Levenshtein matcher.
func NewLevenshtein() *Levenshtein { return &Levenshtein{} }

// Match implements Approx.
func (Levenshtein) Match(_ context.Context, needle, haystack string, maxDistance int) (bool, error) {
	if maxDistance < 0 {
		maxDistance = 0
	}
	d := levenshtein.ComputeDistance(strings.ToLower(needle), strings.ToLower(haystack))
	return d <= maxDistance, nil
}
