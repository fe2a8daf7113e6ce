package approval

import (
	"sort"
	"sync"
)

// MemoryStore is a thread-safe in-memory Store. It backs tests and any
// caller that wants gate semantics without touching the filesystem.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]struct{}
}

// NewMemoryStore creates a MemoryStore seeded with the given entries.
func NewMemoryStore(entries ...string) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]struct{}, len(entries)),
	}
	for _, e := range entries {
		s.entries[e] = struct{}{}
	}
	return s
}

// Load returns all approved pull-request numbers, sorted ascending by
// string comparison.
func (s *MemoryStore) Load() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.entries))
	for e := range s.entries {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

// Add records a pull-request number as approved and reports whether it was
// newly added.
func (s *MemoryStore) Add(pr string) (bool, error) {
	if err := validateEntry(pr); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[pr]; ok {
		return false, nil
	}
	s.entries[pr] = struct{}{}
	return true, nil
}

// Contains checks if the given pull-request number is approved.
func (s *MemoryStore) Contains(pr string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[pr]
	return ok
}
