package storage

import (
	"context"
	"sync"
)

// MemoryStore держит рекорды в памяти процесса.
type MemoryStore struct {
	mu     sync.RWMutex
	scores []HighScore
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]HighScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	return append([]HighScore(nil), s.scores...), nil
}

func (s *MemoryStore) Save(_ context.Context, scores []HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.scores = append(s.scores[:0:0], scores...)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
