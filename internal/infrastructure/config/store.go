package config

import (
	"slices"
	"sync/atomic"
)

// Store holds the live Settings snapshot. Current never blocks and always
// sees a complete value; Replace swaps the whole snapshot at once.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore creates a store holding initial.
func NewStore(initial Settings) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Current returns the latest committed snapshot. The Modifiers slice is
// shared with the store and must not be modified.
func (s *Store) Current() Settings {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return DefaultSettings()
}

// Replace commits next as the new snapshot.
func (s *Store) Replace(next Settings) {
	next.Modifier.Modifiers = slices.Clone(next.Modifier.Modifiers)
	s.current.Store(&next)
}
