package service

import (
	"sync"

	"myregistry/domain"
)

// deltaQueue is a bounded FIFO that drops its oldest entry when full.
// ready is signalled (non-blocking) whenever something is pushed.
type deltaQueue struct {
	mu    sync.Mutex
	items []domain.Delta
	head  int
	size  int
	ready chan struct{}
}

func newDeltaQueue(capacity int) *deltaQueue {
	return &deltaQueue{
		items: make([]domain.Delta, capacity),
		ready: make(chan struct{}, 1),
	}
}

// Push appends d and reports whether an older delta had to be dropped.
func (q *deltaQueue) Push(d domain.Delta) (dropped bool) {
	q.mu.Lock()
	if q.size == len(q.items) {
		q.items[q.head] = domain.Delta{}
		q.head = (q.head + 1) % len(q.items)
		q.size--
		dropped = true
	}
	q.items[(q.head+q.size)%len(q.items)] = d
	q.size++
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
	return dropped
}

// PopBatch removes up to limit deltas in FIFO order.
func (q *deltaQueue) PopBatch(limit int) []domain.Delta {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := min(limit, q.size)
	if n == 0 {
		return nil
	}
	out := make([]domain.Delta, n)
	for i := 0; i < n; i++ {
		out[i] = q.items[q.head]
		q.items[q.head] = domain.Delta{}
		q.head = (q.head + 1) % len(q.items)
	}
	q.size -= n
	return out
}

func (q *deltaQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}
