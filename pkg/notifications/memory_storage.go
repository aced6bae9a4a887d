package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// Suitable for development and testing.
type MemoryStorage struct {
	byUser map[string][]*Notification
	byID   map[string]*Notification
	mu     sync.RWMutex
}

// NewMemoryStorage creates a new in-memory notification storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		byUser: make(map[string][]*Notification),
		byID:   make(map[string]*Notification),
	}
}

func (s *MemoryStorage) Create(ctx context.Context, notif Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if notif.ID == "" {
		return errors.New("notification ID is required")
	}
	if notif.UserID == "" {
		return errors.New("user ID is required")
	}
	if _, exists := s.byID[notif.ID]; exists {
		return fmt.Errorf("duplicate notification ID %s", notif.ID)
	}

	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}
	notif.UpdatedAt = notif.CreatedAt
	if notif.Status == "" {
		notif.Status = StatusPending
	}

	stored := notif
	s.byID[notif.ID] = &stored
	s.byUser[notif.UserID] = append(s.byUser[notif.UserID], &stored)
	return nil
}

func (s *MemoryStorage) MarkSent(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok {
		return ErrNotificationNotFound
	}
	if !n.Status.CanTransition(StatusSent) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, n.Status, StatusSent)
	}

	n.Status = StatusSent
	n.SentAt = &at
	n.UpdatedAt = at
	return nil
}

func (s *MemoryStorage) MarkFailed(ctx context.Context, id string, cause string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok {
		return ErrNotificationNotFound
	}
	if !n.Status.CanTransition(StatusFailed) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, n.Status, StatusFailed)
	}

	n.Status = StatusFailed
	n.ErrorMessage = cause
	n.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStorage) MarkRead(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.byID[id]
	if !ok || n.UserID != userID || n.Channel != ChannelWebsite {
		// Silent no-op: existence must not leak across users.
		return nil
	}
	if n.Status == StatusRead {
		// Second call is a no-op; readAt keeps its original stamp.
		return nil
	}
	if !n.Status.CanTransition(StatusRead) {
		return nil
	}

	now := time.Now()
	n.Status = StatusRead
	n.ReadAt = &now
	n.UpdatedAt = now
	return nil
}

func (s *MemoryStorage) MarkAllRead(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	count := 0
	for _, n := range s.byUser[userID] {
		if n.Channel != ChannelWebsite || n.Status != StatusSent {
			continue
		}
		at := now
		n.Status = StatusRead
		n.ReadAt = &at
		n.UpdatedAt = now
		count++
	}
	return count, nil
}

func (s *MemoryStorage) List(ctx context.Context, userID string, limit int) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Notification
	for _, n := range s.byUser[userID] {
		if n.Channel == ChannelWebsite {
			result = append(result, *n)
		}
	}

	// Newest first; insertion order already tracks creation time, so a
	// stable reverse sort is enough.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStorage) CountUnread(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.byUser[userID] {
		if n.Channel == ChannelWebsite && n.Status == StatusSent {
			count++
		}
	}
	return count, nil
}

// All returns every record for a user across all channels in insertion
// order. Debug/test helper, not part of the Storage interface.
func (s *MemoryStorage) All(ctx context.Context, userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Notification, 0, len(s.byUser[userID]))
	for _, n := range s.byUser[userID] {
		result = append(result, *n)
	}
	return result
}

func (s *MemoryStorage) Get(ctx context.Context, userID, id string) (*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byID[id]
	if !ok || n.UserID != userID {
		return nil, ErrNotificationNotFound
	}

	// Return a copy to prevent external mutation of stored data.
	notif := *n
	return &notif, nil
}
