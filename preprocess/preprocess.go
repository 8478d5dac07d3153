// Package preprocess contains pre-processors that enrich the session before
// any logic adapter runs. The EntityExtractor scans each utterance for known
// entities and records the most recent match per category.
package preprocess

import (
	"context"
	"math"
	"regexp"

	"github.com/parrotlabs/parley/core"
	"github.com/parrotlabs/parley/logging"
	"github.com/parrotlabs/parley/match"
)

// DefaultToleranceDivisor derives the edit-distance budget for a vocabulary
// entity as round(len(entity) / divisor). Earlier revisions of the matching
// rules shipped a stricter divisor of 8; override via WithToleranceDivisor
// when fewer false positives matter more than recall.
const DefaultToleranceDivisor = 4

var wordPattern = regexp.MustCompile(`[A-Za-z0-9']+`)

// Tokenize splits an utterance into word tokens, dropping punctuation and
// whitespace. Shared by the extractor and session-aware adapters that need
// whole-word checks.
func Tokenize(utterance string) []string {
	return wordPattern.FindAllString(utterance, -1)
}

// Options configures an EntityExtractor.
type Options struct {
	// Matcher decides fuzzy token/entity matches. Defaults to Levenshtein.
	Matcher match.Approx
	// ToleranceDivisor tunes the edit-distance budget per entity length.
	ToleranceDivisor int
	// Logger receives per-match debug lines and matcher degradation warnings.
	Logger logging.Logger
}

// EntityExtractor updates the session's entity map from the raw utterance.
// For every token and every (category, entity) vocabulary pair it asks the
// approximate matcher for a fuzzy match; on success it overwrites the
// category's value. Within a category the last matching token in scan order
// wins; there is deliberately no score comparison between multiple matches.
type EntityExtractor struct {
	vocabulary map[string][]string
	matcher    match.Approx
	divisor    int
	logger     logging.Logger
}

var _ core.PreProcessor = (*EntityExtractor)(nil)

// NewEntityExtractor creates an extractor over a read-only vocabulary mapping
// category names to canonical entity values.
func NewEntityExtractor(vocabulary map[string][]string, optFns ...func(o *Options)) *EntityExtractor {
	opts := Options{
		Matcher:          match.NewLevenshtein(),
		ToleranceDivisor: DefaultToleranceDivisor,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ToleranceDivisor <= 0 {
		opts.ToleranceDivisor = DefaultToleranceDivisor
	}

	return &EntityExtractor{
		vocabulary: vocabulary,
		matcher:    opts.Matcher,
		divisor:    opts.ToleranceDivisor,
		logger:     logging.OrNoOp(opts.Logger),
	}
}

// Name implements core.PreProcessor.
func (e *EntityExtractor) Name() string { return "entity-extractor" }

// Process implements core.PreProcessor. Matcher failures degrade to "no
// match" for the affected pair and are logged, never returned as fatal.
func (e *EntityExtractor) Process(ctx context.Context, utterance string, session *core.Session) error {
	for _, token := range Tokenize(utterance) {
		for category, entities := range e.vocabulary {
			for _, entity := range entities {
				budget := int(math.Round(float64(len(entity)) / float64(e.divisor)))
				ok, err := e.matcher.Match(ctx, entity, token, budget)
				if err != nil {
					e.logger.Warn("approximate matcher unavailable",
						"pre_processor", e.Name(), "category", category, "error", err)
					continue
				}
				if ok {
					e.logger.Debug("entity matched",
						"category", category, "entity", entity, "token", token)
					session.Set(category, entity)
				}
			}
		}
	}
	return nil
}
