package cart

import (
	"context"
	"sync"
)

// MemStore is the default process-lifetime backend. The single mutex makes
// append observably atomic under concurrent requests for the same user.
type MemStore struct {
	mu sync.Mutex
	m  map[string][]int
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]int)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Add(ctx context.Context, userID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = append(s.m[userID], productID)
	return nil
}

func (s *MemStore) RemoveAll(ctx context.Context, userID string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.m[userID]
	if !ok {
		return nil
	}

	n := 0
	for _, id := range ids {
		if id != productID {
			ids[n] = id
			n++
		}
	}
	s.m[userID] = ids[:n]
	return nil
}

func (s *MemStore) List(ctx context.Context, userID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.m[userID]...), nil
}
