package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_order(t *testing.T) {
	q := NewInMemoryQueue[string](4)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))

	assert.Equal(t, []string{"a", "b", "c"}, q.ReadAllMessages())
	assert.Nil(t, q.ReadAllMessages())
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueue[int](2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)

	assert.Equal(t, []int{1, 2}, q.ReadAllMessages())
	assert.NoError(t, q.Enqueue(3))
	assert.Equal(t, []int{3}, q.ReadAllMessages())
}

func TestInMemoryQueue_concurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue[int](100)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, q.Enqueue(i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, q.ReadAllMessages(), 100)
}

func TestNewInMemoryQueue_defaultSize(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	assert.Equal(t, DefaultQueueBufferSize, cap(q.ch))
}
