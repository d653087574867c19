package cart

import (
	"context"
	"sync"

	"github.com/onu24/learnsphere-v1/internal/domain"
)

// MemoryStore is an in-process cart store for tests and local development
// without Redis.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]domain.CartItem)}
}

func (s *MemoryStore) Items(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sessionID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, item domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.carts[sessionID] {
		if existing.CourseID == item.CourseID {
			return nil
		}
	}
	s.carts[sessionID] = append(s.carts[sessionID], item)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, sessionID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sessionID]
	kept := items[:0]
	for _, item := range items {
		if item.CourseID != courseID {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = kept
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
