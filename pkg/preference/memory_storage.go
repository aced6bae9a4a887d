package preference

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// Suitable for development and testing.
type MemoryStorage struct {
	byUser map[string][]Preference
	mu     sync.RWMutex
}

// NewMemoryStorage creates a new in-memory preference storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byUser: make(map[string][]Preference),
	}
}

func (s *MemoryStorage) ListByUser(ctx context.Context, userID string) ([]Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.byUser[userID]
	out := make([]Preference, len(rows))
	copy(out, rows)
	return out, nil
}

func (s *MemoryStorage) ReplaceAll(ctx context.Context, userID string, prefs []Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Single swap under the lock: readers see either the old set or the
	// new one, never the transient empty state.
	rows := make([]Preference, len(prefs))
	copy(rows, prefs)
	if len(rows) == 0 {
		delete(s.byUser, userID)
		return nil
	}
	s.byUser[userID] = rows
	return nil
}

func (s *MemoryStorage) CountByUser(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUser[userID]), nil
}
