// Package store holds the process state the resolvers share: the single
// cached game reference and the current roster.
package store

import (
	"context"
	"sync"

	"goal-announcer/internal/domain"
)

// MemoryStore keeps the game reference and roster in memory. It is the
// default backend; the single slot structurally enforces at most one
// cached reference per process.
type MemoryStore struct {
	mu     sync.RWMutex
	ref    domain.GameRef
	hasRef bool
	roster []domain.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GameRef returns the cached game reference, if one has been stored.
func (s *MemoryStore) GameRef(ctx context.Context) (domain.GameRef, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ref, s.hasRef, nil
}

// SetGameRef overwrites the cached game reference.
func (s *MemoryStore) SetGameRef(ctx context.Context, ref domain.GameRef) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ref = ref
	s.hasRef = true
	return nil
}

// Roster returns a copy of the current roster.
func (s *MemoryStore) Roster(ctx context.Context) ([]domain.Player, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Player, len(s.roster))
	copy(result, s.roster)
	return result, nil
}

// SetRoster replaces the roster wholesale.
func (s *MemoryStore) SetRoster(ctx context.Context, roster []domain.Player) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = make([]domain.Player, len(roster))
	copy(s.roster, roster)
	return nil
}

// ClearRoster empties the roster.
func (s *MemoryStore) ClearRoster(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = nil
	return nil
}
