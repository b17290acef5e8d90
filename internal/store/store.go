// Package store holds the most recently evaluated scenario results so the
// HTTP API can serve them while the config watcher replaces them.
package store

import (
	"sync"
	"time"

	"github.com/payrollwedge/wagegrowth/internal/scenario"
)

// Store is a thread-safe holder of scenario results, keyed by name.
// Replace swaps the whole set atomically; readers never see a mix of two
// config generations.
type Store struct {
	mu        sync.RWMutex
	order     []string
	data      map[string]scenario.Result
	updatedAt time.Time
	now       func() time.Time // injectable for deterministic tests
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		data: make(map[string]scenario.Result),
		now:  time.Now,
	}
}

// Replace discards the current results and stores results in their given order.
func (s *Store) Replace(results []scenario.Result) {
	order := make([]string, 0, len(results))
	data := make(map[string]scenario.Result, len(results))
	for _, r := range results {
		if _, dup := data[r.Name]; !dup {
			order = append(order, r.Name)
		}
		data[r.Name] = r
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.data = data
	s.updatedAt = s.now()
}

// Get returns the result for name and whether it was found.
func (s *Store) Get(name string) (scenario.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.data[name]
	return r, ok
}

// List returns all results in the order they were stored.
func (s *Store) List() []scenario.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]scenario.Result, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.data[name])
	}
	return out
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// UpdatedAt returns when Replace was last called, or the zero time.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
