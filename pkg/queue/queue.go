package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue has no room left.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic bounded FIFO queue.
// Implementations must be thread-safe.
type Queue[T any] interface {
	Enqueue(item T) error
	ReadAllMessages() []T
}
