package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
)

type InMemorySnapshotStore struct {
	lock     sync.RWMutex
	snapshot *types.Snapshot
}

var _ SnapshotStore = &InMemorySnapshotStore{}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{
		snapshot: &types.Snapshot{},
	}
}

func (s *InMemorySnapshotStore) Get(ctx context.Context) (*types.Snapshot, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.snapshot.Copy(), nil
}

func (s *InMemorySnapshotStore) Set(ctx context.Context, snapshot *types.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}
	c := snapshot.Copy()

	s.lock.Lock()
	defer s.lock.Unlock()
	s.snapshot = c
	return nil
}

// Observe returns a subscriber that mirrors published snapshots into the store.
func (s *InMemorySnapshotStore) Observe(ctx context.Context) func(snapshot *types.Snapshot) {
	return func(snapshot *types.Snapshot) {
		if err := s.Set(ctx, snapshot); err != nil {
			log.Error("Failed to store snapshot: %v", err)
		}
	}
}
