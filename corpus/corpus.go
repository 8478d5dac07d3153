// Package corpus holds the question/answer pairs used by similarity-based
// logic adapters, plus loaders (YAML, SQLite) and a file watcher that keeps a
// store fresh while the engine is running.
package corpus

import "sync"

// Pair is one question/answer entry. The question side is compared against
// live utterances; the answer side is returned verbatim.
type Pair struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Store is a concurrency-safe snapshot holder for an ordered pair list.
// Adapters read snapshots; loaders and watchers replace the whole list.
type Store struct {
	mu    sync.RWMutex
	pairs []Pair
}

// NewStore creates a store seeded with the given pairs.
func NewStore(pairs ...Pair) *Store {
	s := &Store{}
	s.Replace(pairs)
	return s
}

// Pairs returns a defensive copy of the current pair list.
func (s *Store) Pairs() []Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Len returns the number of pairs currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pairs)
}

// Replace swaps the full pair list atomically.
func (s *Store) Replace(pairs []Pair) {
	next := make([]Pair, len(pairs))
	copy(next, pairs)
	s.mu.Lock()
	s.pairs = next
	s.mu.Unlock()
}
