package state

import (
	"context"

	"github.com/cbodonnell/tangram/pkg/puzzle/types"
)

// SnapshotStore provides shared read access to the latest puzzle snapshot.
// Implementations must be thread-safe.
type SnapshotStore interface {
	// Get returns a copy of the latest snapshot.
	Get(ctx context.Context) (*types.Snapshot, error)
	// Set replaces the latest snapshot with a copy of snapshot.
	Set(ctx context.Context, snapshot *types.Snapshot) error
}
