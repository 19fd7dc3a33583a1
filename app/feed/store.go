package feed

import (
	"sync"

	"pulsewave/app/models"
)

// Store owns the feed state for one client session. Events are applied
// strictly sequentially; after Close, late network completions are dropped
// instead of writing to torn-down state.
type Store struct {
	mu     sync.Mutex
	state  State
	closed bool
}

// NewStore returns a store holding the initial loading state.
func NewStore() *Store {
	return &Store{state: NewState()}
}

// Dispatch applies one event and returns the resulting state. It is a
// no-op once the store is closed.
func (s *Store) Dispatch(event Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.state
	}
	s.state = Reduce(s.state, event)
	return s.state
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close sets the cancellation flag. Every dispatch after an awaited call
// checks it, so a teardown mid-request cannot produce stale writes.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether the store has been torn down.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Visible returns the posts matching the active tag filter.
func (s *Store) Visible() []models.Post {
	return s.State().Visible()
}

// Trending derives the ranked trending panel from the full loaded set.
func (s *Store) Trending() []models.TrendingTopic {
	return TrendingTopics(s.State().Posts)
}

// Insights derives the community-vitals panel from the full loaded set.
func (s *Store) Insights() []models.Insight {
	return Insights(s.State().Posts)
}
