package state

import (
	"bytes"
	"context"
	"testing"

	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	empty, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Pieces)

	assert.Error(t, store.Set(ctx, nil))

	snapshot := &types.Snapshot{
		Session: types.Session{Phase: types.PhasePlaying, Score: 10},
		Pieces:  types.DefaultPieces(),
	}
	require.NoError(t, store.Set(ctx, snapshot))

	// later changes to the published snapshot are not visible
	snapshot.Pieces[0].Rotation = 90
	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Pieces[0].Rotation)
	assert.Equal(t, 10, got.Score)

	// neither are changes to a returned copy
	got.Pieces[1].Flipped = true
	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, again.Pieces[1].Flipped)
}

func TestInMemorySnapshotStore_Observe(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()
	m := puzzle.NewManager(puzzle.NewManagerOptions{})
	defer m.Close()

	m.Subscribe(store.Observe(ctx))
	m.StartGame()
	m.SetHintVisible(true)

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PhasePlaying, got.Phase)
	assert.True(t, got.HintVisible)
	assert.Len(t, got.Pieces, 7)
}

func TestInMemorySnapshotStore_Observe_nil(t *testing.T) {
	buf := &bytes.Buffer{}
	previous := log.Default()
	log.SetDefaultLogger(log.New(buf, "", 0, log.LogLevelError))
	defer log.SetDefaultLogger(previous)

	ctx := context.Background()
	store := NewInMemorySnapshotStore()
	require.NoError(t, store.Set(ctx, &types.Snapshot{Pieces: types.DefaultPieces()}))

	store.Observe(ctx)(nil)

	assert.Contains(t, buf.String(), "Failed to store snapshot: snapshot is nil")
	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Pieces, 7)
}
