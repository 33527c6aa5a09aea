package puzzle

import (
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/cbodonnell/tangram/pkg/queue"
)

// Notifier presents a completed puzzle to the user.
type Notifier interface {
	NotifyCompletion(completion types.Completion)
}

type nopNotifier struct{}

func (nopNotifier) NotifyCompletion(types.Completion) {}

// QueueNotifier hands completions over to the rendering loop through a queue
// so that presenting them never blocks the state manager.
type QueueNotifier struct {
	queue queue.Queue[types.Completion]
}

var _ Notifier = &QueueNotifier{}

func NewQueueNotifier(q queue.Queue[types.Completion]) *QueueNotifier {
	return &QueueNotifier{queue: q}
}

func (n *QueueNotifier) NotifyCompletion(completion types.Completion) {
	if err := n.queue.Enqueue(completion); err != nil {
		log.Error("Failed to enqueue completion for round %s: %v", completion.Round, err)
	}
}
