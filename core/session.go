package core

import (
	"sync"
	"time"
)

// Session is the per-conversation entity memory: a mutable mapping from an
// entity category (e.g. "colour") to the single most recently matched entity
// value. Pre-processors populate it, logic adapters read it, output sinks
// never see it.
//
// Contract:
//   - At most one value per category; a later match overwrites an earlier one
//     within or across turns.
//   - Values survive across turns of one engine instance until Reset.
//   - Safe for concurrent access, although the engine itself serializes turns.
type Session struct {
	ID      string
	Created time.Time
	Updated time.Time

	mu     sync.RWMutex
	values map[string]string
}

// NewSession creates an empty session with the given ID.
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{ID: id, Created: now, Updated: now, values: map[string]string{}}
}

// Get returns the value and existence flag for a category.
func (s *Session) Get(category string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[category]
	return v, ok
}

// Has reports whether a category currently holds a value.
func (s *Session) Has(category string) bool {
	_, ok := s.Get(category)
	return ok
}

// Set stores an entity value for a category, overwriting any prior value.
func (s *Session) Set(category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[category] = value
	s.Updated = time.Now()
}

// Snapshot returns a defensive copy of the current entity map.
func (s *Session) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Len returns the number of populated categories.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Reset clears all entity values. Never called implicitly by the engine.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
	s.Updated = time.Now()
}
