package memory

import (
	"context"
	"sync"

	"github.com/campcrew/shiftboard-backend-go/internal/domain/snapshot"
)

// Store keeps the snapshot in process memory only. Used in tests and as
// the throwaway backend for local development.
type Store struct {
	mu   sync.Mutex
	snap snapshot.Snapshot
	// Saves counts completed Save calls so tests can assert that
	// mutations persisted fire-and-forget.
	saves int
}

func NewStore() *Store {
	return &Store{}
}

// NewSeededStore starts from an existing snapshot.
func NewSeededStore(snap snapshot.Snapshot) *Store {
	return &Store{snap: snap}
}

func (s *Store) Load(ctx context.Context) (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone(), nil
}

func (s *Store) Save(ctx context.Context, snap snapshot.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.saves++
	return nil
}

func (s *Store) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
