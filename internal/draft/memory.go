package draft

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. It keeps the same single-slot,
// single-use semantics as the redis store and is used in tests and local
// development without a redis instance.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]ReservationDraft
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]ReservationDraft)}
}

func (s *MemoryStore) Stash(_ context.Context, sessionID string, d *ReservationDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = *d
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) (*ReservationDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.slots[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.slots, sessionID)
	return &d, nil
}
