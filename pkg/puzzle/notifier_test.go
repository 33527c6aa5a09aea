package puzzle

import (
	"testing"
	"time"

	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/cbodonnell/tangram/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueNotifier_deliversOncePerCompletion(t *testing.T) {
	completions := queue.NewInMemoryQueue[types.Completion](4)
	h := newTestHarness(t, NewQueueNotifier(completions))

	for i := 0; i < 2; i++ {
		h.manager.StartGame()
		target := h.solveAllBut("E")
		target.Position = types.Vector{X: 50, Y: 0}
		h.advance(20 * time.Second)

		h.manager.BeginDrag("E", types.Vector{X: 50, Y: 0})
		h.manager.UpdateDrag(types.Vector{})
		h.manager.EndDrag()
		h.manager.EndDrag()
	}

	got := completions.ReadAllMessages()
	require.Len(t, got, 2)
	assert.Equal(t, 1280, got[0].Score)
	assert.Equal(t, 2560, got[1].Score)
	assert.NotEqual(t, got[0].Round, got[1].Round)
}

func TestQueueNotifier_fullQueue(t *testing.T) {
	completions := queue.NewInMemoryQueue[types.Completion](1)
	notifier := NewQueueNotifier(completions)

	notifier.NotifyCompletion(types.Completion{Score: 1})
	notifier.NotifyCompletion(types.Completion{Score: 2})

	assert.Equal(t, []types.Completion{{Score: 1}}, completions.ReadAllMessages())
}
