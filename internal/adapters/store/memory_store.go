// Package store provides ResultStore implementations. Every store holds
// exactly one ProcessingResult: Save replaces the previous run's output
// wholesale, never merging.
package store

import (
	"context"
	"sync"

	"github.com/mailsift/mailsift/internal/core"
)

// MemoryStore is an in-memory implementation of the ResultStore interface
type MemoryStore struct {
	mu     sync.RWMutex
	result *core.ProcessingResult
}

// NewMemoryStore creates a new in-memory result store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored result
func (s *MemoryStore) Save(ctx context.Context, result *core.ProcessingResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	return nil
}

// Load returns the stored result
func (s *MemoryStore) Load(ctx context.Context) (*core.ProcessingResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.result == nil {
		return nil, core.ErrNoResult
	}
	return s.result, nil
}
